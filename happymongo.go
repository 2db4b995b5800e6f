package happymongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/happymongo/pkg/logger"
	mongoadapter "github.com/dmitrymomot/happymongo/pkg/mongo"
	"github.com/dmitrymomot/happymongo/pkg/mongoconfig"
)

// New resolves source into a connection plan and opens it with the official
// MongoDB driver.
//
// source may be an Application, a map, a settings store such as
// *viper.Viper, or a struct (see mongoconfig.Extract). When source is an
// Application the returned pair is also registered on it under ExtensionKey.
func New(ctx context.Context, source any, opts ...Option) (*mongo.Client, *mongo.Database, error) {
	return NewWithDriver[*mongo.Client, *mongo.Database](ctx, mongoadapter.Driver{}, source, opts...)
}

// NewWithDriver is New with a caller supplied driver.
//
// Configuration errors are returned before the driver is called. Driver
// errors are returned unchanged.
func NewWithDriver[C, D any](ctx context.Context, driver Driver[C, D], source any, opts ...Option) (C, D, error) {
	o := newOptions(opts...)

	var (
		client C
		db     D
	)

	raw, isApp, appName := mongoconfig.Extract(source)
	if !isApp && o.appName != "" {
		appName = o.appName
	}

	plan, err := mongoconfig.Resolve(raw, appName)
	if err != nil {
		o.logger.DebugContext(ctx, "mongo connection not resolved",
			logger.Source(source),
			logger.Error(err),
		)
		return client, db, err
	}

	o.logger.DebugContext(ctx, "mongo connection resolved",
		logger.Source(source),
		logger.Style(string(plan.Style)),
		logger.Database(plan.Database),
		logger.Hosts(plan.Hosts),
		logger.URI(plan.URI),
		slog.Bool("authenticate", plan.Credentials != nil),
	)

	client, db, err = Connect(ctx, driver, plan)
	if err != nil {
		o.logger.DebugContext(ctx, "mongo connection failed",
			logger.Database(plan.Database),
			logger.Error(err),
		)
		return client, db, err
	}

	if isApp {
		Register(source.(Application), client, db)
	}

	return client, db, nil
}
