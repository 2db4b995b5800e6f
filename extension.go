package happymongo

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/happymongo/pkg/mongoconfig"
)

// ExtensionKey is the key the client/database pair is stored under in an
// application's extension registry.
const ExtensionKey = "happymongo"

// Application is an application object that carries its configuration, a
// name and an extension registry.
type Application = mongoconfig.Application

// Handles is the client/database pair stored in the extension registry.
type Handles[C, D any] struct {
	Client   C
	Database D
}

// Register stores client and db in app's extension registry under
// ExtensionKey, creating the registry if the application has none.
// It is not safe for concurrent use on the same application.
func Register[C, D any](app Application, client C, db D) {
	ext := app.Extensions()
	created := ext == nil
	if created {
		ext = make(map[string]any)
	}
	ext[ExtensionKey] = Handles[C, D]{Client: client, Database: db}
	if created {
		app.SetExtensions(ext)
	}
}

// FromApp returns the pair registered on app by Register.
func FromApp[C, D any](app Application) (Handles[C, D], bool) {
	ext := app.Extensions()
	if ext == nil {
		return Handles[C, D]{}, false
	}
	h, ok := ext[ExtensionKey].(Handles[C, D])
	return h, ok
}

// Registered returns the MongoDB client and database registered on app by New.
func Registered(app Application) (*mongo.Client, *mongo.Database, bool) {
	h, ok := FromApp[*mongo.Client, *mongo.Database](app)
	return h.Client, h.Database, ok
}
