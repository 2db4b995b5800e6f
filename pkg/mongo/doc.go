// Package mongo adapts resolved connection plans to the official MongoDB
// driver.
//
// Driver satisfies the driver contract used by the happymongo package:
// it builds client options from a mongoconfig.Plan, opens the client, hands
// out database handles and forces the authentication handshake for host-list
// plans that carry credentials.
//
// Plan options are rendered as connection string parameters before being
// applied with ApplyURI, so every option name the driver understands in a URI
// (replicaSet, maxPoolSize, tls, appName, readPreference, ...) can be set
// through MONGO_KWARGS.
//
// # Usage
//
//	plan, err := mongoconfig.Resolve(raw, "orders")
//	if err != nil {
//		return err
//	}
//	var d mongo.Driver
//	client, err := d.NewClient(ctx, plan)
//	if err != nil {
//		return err
//	}
//	db := d.Database(client, plan.Database)
//
// # Health checks
//
// Healthcheck wraps a database ping into a func(context.Context) error for
// readiness probes. Failures are joined with ErrHealthcheckFailed.
//
// # See Also
//
// Documentation for the official driver: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2.
package mongo
