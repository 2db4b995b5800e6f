package mongoconfig

import "errors"

var (
	ErrMissingDatabaseName  = errors.New("mongo database name is not configured")
	ErrInvalidPort          = errors.New("MONGO_PORT must be an integer")
	ErrMissingAuthComponent = errors.New("must set both MONGO_USERNAME and MONGO_PASSWORD or neither")
	ErrNoHostConfigured     = errors.New("no mongo host configured")
	ErrInvalidURI           = errors.New("invalid MONGO_URI")
	ErrInvalidOptions       = errors.New("MONGO_KWARGS must be a map with string keys")
)
