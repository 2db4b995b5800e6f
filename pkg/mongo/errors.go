package mongo

import "errors"

var (
	ErrInvalidClientOptions = errors.New("invalid mongo client options")
	ErrUnsupportedOption    = errors.New("unsupported mongo driver option value")
	ErrHealthcheckFailed    = errors.New("mongo healthcheck failed")
)
