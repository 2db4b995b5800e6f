package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds the MONGO_* environment variables. Its env tags double as the
// configuration keys when the struct is passed to mongoconfig.Extract, and
// unset fields are left out.
type Env struct {
	URI      string            `env:"MONGO_URI"`
	Host     []string          `env:"MONGO_HOST" envSeparator:","`
	Port     string            `env:"MONGO_PORT"`
	Database string            `env:"MONGO_DATABASE"`
	Username string            `env:"MONGO_USERNAME"`
	Password string            `env:"MONGO_PASSWORD"`
	Kwargs   map[string]string `env:"MONGO_KWARGS"` // e.g. replicaSet:rs0,maxPoolSize:20
}

var defaultEnvLoaded sync.Once

// LoadEnv parses the MONGO_* variables from the environment.
//
// Without arguments the default .env file is loaded once per process if it
// exists. Explicit files must exist; they never override variables that are
// already set.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		defaultEnvLoaded.Do(func() {
			// Ignore errors - the .env file might not exist and that's ok
			_ = godotenv.Load()
		})
	} else if err := godotenv.Load(files...); err != nil {
		return Env{}, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
