package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/dmitrymomot/happymongo/pkg/mongoconfig"
)

// ViperOption configures NewViper.
type ViperOption func(*viperConfig)

type viperConfig struct {
	file      string
	envPrefix string
}

// WithConfigFile reads the given file (any format viper supports) before the
// environment is consulted. Environment variables win over file values.
func WithConfigFile(path string) ViperOption {
	return func(c *viperConfig) {
		c.file = path
	}
}

// WithEnvPrefix expects the variables as <PREFIX>_MONGO_URI and so on.
func WithEnvPrefix(prefix string) ViperOption {
	return func(c *viperConfig) {
		c.envPrefix = prefix
	}
}

// NewViper returns a viper instance with every recognized MONGO_* key bound
// to the environment. The instance can be passed straight to happymongo.New.
func NewViper(opts ...ViperOption) (*viper.Viper, error) {
	cfg := &viperConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	v := viper.New()
	if cfg.envPrefix != "" {
		v.SetEnvPrefix(cfg.envPrefix)
	}
	for _, key := range mongoconfig.Keys {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Join(ErrParsingConfig, err)
		}
	}

	if cfg.file != "" {
		v.SetConfigFile(cfg.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Join(ErrReadingFile, err)
		}
	}

	// Host lists coming from the environment arrive as one comma separated string.
	if s, ok := v.Get(mongoconfig.KeyHost).(string); ok && strings.Contains(s, ",") {
		hosts := strings.Split(s, ",")
		for i := range hosts {
			hosts[i] = strings.TrimSpace(hosts[i])
		}
		v.Set(mongoconfig.KeyHost, hosts)
	}
	// Same for MONGO_KWARGS, written as key:value pairs like Env expects.
	if s, ok := v.Get(mongoconfig.KeyKwargs).(string); ok && s != "" {
		kwargs := make(map[string]any)
		for _, pair := range strings.Split(s, ",") {
			k, val, _ := strings.Cut(pair, ":")
			kwargs[strings.TrimSpace(k)] = strings.TrimSpace(val)
		}
		v.Set(mongoconfig.KeyKwargs, kwargs)
	}

	return v, nil
}
