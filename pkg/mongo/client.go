package mongo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/happymongo/pkg/mongoconfig"
)

// Driver opens clients with the official MongoDB driver.
type Driver struct{}

// NewClient creates a client for plan. The driver connects lazily, so
// network failures surface on the first operation.
func (Driver) NewClient(_ context.Context, plan *mongoconfig.Plan) (*mongo.Client, error) {
	opts, err := ClientOptions(plan)
	if err != nil {
		return nil, err
	}
	return mongo.Connect(opts)
}

// Database returns the named database handle.
func (Driver) Database(client *mongo.Client, name string) *mongo.Database {
	return client.Database(name)
}

// Authenticate forces the authentication handshake for the credentials set on
// the client by pinging db. Driver errors are returned as is.
func (Driver) Authenticate(ctx context.Context, db *mongo.Database, _ mongoconfig.Credentials) error {
	return ping(ctx, db)
}

// ClientOptions converts plan into driver client options.
//
// Every plan option except the host becomes a connection string parameter,
// so the driver's own URI parsing validates names and values. Host-list
// credentials go into the user info with the plan's database as the path,
// which makes it the default authSource.
func ClientOptions(plan *mongoconfig.Plan) (*options.ClientOptions, error) {
	query := url.Values{}
	for name, value := range plan.Options {
		if name == mongoconfig.HostOption {
			continue
		}
		values, err := optionValues(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedOption, name, err)
		}
		query[name] = values
	}

	opts := options.Client().ApplyURI(connectionString(plan, query))
	if err := opts.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidClientOptions, err)
	}
	return opts, nil
}

func connectionString(plan *mongoconfig.Plan, query url.Values) string {
	var base string
	if plan.Style == mongoconfig.StyleURI {
		base, _, _ = strings.Cut(plan.URI, "?")
	} else {
		var userinfo string
		if plan.Credentials != nil {
			userinfo = url.UserPassword(plan.Credentials.Username, plan.Credentials.Password).String() + "@"
		}
		base = "mongodb://" + userinfo + strings.Join(plan.Hosts, ",") + "/" + url.PathEscape(plan.Database)
	}
	if len(query) == 0 {
		return base
	}
	return base + "?" + query.Encode()
}

func optionValues(value any) ([]string, error) {
	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Slice && val.Type().Elem().Kind() != reflect.Uint8 {
		out := make([]string, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			s, err := cast.ToStringE(val.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

// CloseClient disconnects a client that failed authentication.
func (Driver) CloseClient(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}
