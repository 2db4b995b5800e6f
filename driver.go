package happymongo

import (
	"context"

	"github.com/dmitrymomot/happymongo/pkg/mongoconfig"
)

// Driver is the database driver a resolved plan is handed to. C is the
// driver's client type and D its database handle type.
type Driver[C, D any] interface {
	// NewClient creates a client from the plan's options and host specification.
	NewClient(ctx context.Context, plan *mongoconfig.Plan) (C, error)
	// Database returns the named database handle of client.
	Database(client C, name string) D
	// Authenticate authenticates db with creds.
	Authenticate(ctx context.Context, db D, creds mongoconfig.Credentials) error
}

// clientCloser is implemented by drivers that can release a client which
// failed authentication.
type clientCloser[C any] interface {
	CloseClient(ctx context.Context, client C) error
}

// Connect opens a client for plan and returns it with the plan's database
// handle. Host-list plans with credentials are authenticated against that
// database. Driver errors are returned unchanged.
func Connect[C, D any](ctx context.Context, driver Driver[C, D], plan *mongoconfig.Plan) (C, D, error) {
	var (
		client C
		db     D
	)

	client, err := driver.NewClient(ctx, plan)
	if err != nil {
		return client, db, err
	}
	db = driver.Database(client, plan.Database)

	if plan.Credentials != nil {
		if err := driver.Authenticate(ctx, db, *plan.Credentials); err != nil {
			if c, ok := driver.(clientCloser[C]); ok {
				_ = c.CloseClient(ctx, client)
			}
			var (
				zeroC C
				zeroD D
			)
			return zeroC, zeroD, err
		}
	}

	return client, db, nil
}
