package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Env
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be loaded
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrUnsupportedFormat is returned for config files other than YAML or TOML
	ErrUnsupportedFormat = errors.New("unsupported config file format")

	// ErrReadingFile is returned when a config file cannot be read
	ErrReadingFile = errors.New("failed to read config file")

	// ErrDecodingFile is returned when a config file is not valid YAML or TOML
	ErrDecodingFile = errors.New("failed to decode config file")
)
