// Package happymongo makes it easy and consistent to connect to MongoDB from
// any kind of Go application configuration.
//
// The configuration source can be an application object implementing
// Application, a plain map, a *viper.Viper, or a struct such as config.Env.
// Whatever the shape, the same MONGO_* keys are recognized:
//
//   - MONGO_URI: a full connection string; when set, it is the only source of
//     hosts, credentials and database
//   - MONGO_HOST: a host or a list of hosts, defaults to localhost
//   - MONGO_PORT: appended to hosts without a port, defaults to 27017
//   - MONGO_DATABASE: defaults to the application name
//   - MONGO_USERNAME, MONGO_PASSWORD: set both or neither
//   - MONGO_KWARGS: extra driver options, e.g. replicaSet or maxPoolSize
//
// # Usage
//
//	client, db, err := happymongo.New(ctx, map[string]any{
//		"MONGO_HOST":     []string{"db1", "db2:27018"},
//		"MONGO_DATABASE": "orders",
//		"MONGO_KWARGS":   map[string]any{"replicaSet": "rs0"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(ctx)
//
// When the source is an Application, the pair is also stored in its extension
// registry under ExtensionKey, so other parts of the application can fetch it
// with Registered:
//
//	client, db, ok := happymongo.Registered(app)
//
// # Drivers
//
// New uses the official driver through pkg/mongo. NewWithDriver and Connect
// accept any Driver implementation, which keeps resolution independent of the
// driver and easy to fake in tests.
//
// # Error Handling
//
// Configuration problems are reported before any network activity with the
// sentinel errors of pkg/mongoconfig, for example:
//
//	if errors.Is(err, mongoconfig.ErrMissingAuthComponent) {
//		// only one of MONGO_USERNAME and MONGO_PASSWORD is set
//	}
//
// Driver failures (unreachable servers, rejected credentials) are returned
// unchanged.
package happymongo
