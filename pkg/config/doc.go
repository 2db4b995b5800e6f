// Package config loads MONGO_* connection settings from the places
// applications usually keep them: environment variables, YAML or TOML files,
// and viper.
//
// Every loader returns a value that happymongo.New accepts as a
// configuration source:
//
//   - LoadEnv parses the environment (and an optional .env file through
//     github.com/joho/godotenv) into the Env struct with
//     github.com/caarlos0/env/v11.
//   - LoadFile decodes a .yaml/.yml file with gopkg.in/yaml.v3 or a .toml
//     file with github.com/BurntSushi/toml into a map.
//   - NewViper builds a *viper.Viper with the MONGO_* keys bound to the
//     environment and, optionally, a config file underneath.
//
// # Usage
//
//	cfg, err := config.LoadEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	client, db, err := happymongo.New(ctx, cfg)
//
// Environment lists use commas (MONGO_HOST=db1,db2:27018) and MONGO_KWARGS is
// written as key:value pairs (MONGO_KWARGS=replicaSet:rs0,maxPoolSize:20).
//
// # Error Handling
//
// Failures are joined with one of the package sentinels (ErrParsingConfig,
// ErrLoadingEnvFile, ErrUnsupportedFormat, ErrReadingFile, ErrDecodingFile)
// so callers can match them with errors.Is.
package config
