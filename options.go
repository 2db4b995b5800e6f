package happymongo

import "log/slog"

// Option configures New and NewWithDriver.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	appName string
}

// WithLogger sets the logger used to report resolved connections.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAppName overrides the name derived from the running executable, which
// is the default database for host-list configs without MONGO_DATABASE.
// Applications always use their own name.
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

func newOptions(opts ...Option) *options {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
