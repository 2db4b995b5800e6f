package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML (.yaml, .yml) or TOML (.toml) file into a flat map
// usable as a configuration source.
//
//	MONGO_HOST: [db1, "db2:27018"]
//	MONGO_DATABASE: orders
//	MONGO_KWARGS:
//	  replicaSet: rs0
func LoadFile(path string) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".toml" {
		return nil, ErrUnsupportedFormat
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, err)
	}

	out := make(map[string]any)
	if ext == ".toml" {
		err = toml.Unmarshal(data, &out)
	} else {
		err = yaml.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, errors.Join(ErrDecodingFile, err)
	}
	return out, nil
}
