package mongoconfig

// Recognized configuration keys.
const (
	KeyURI      = "MONGO_URI"
	KeyHost     = "MONGO_HOST"
	KeyPort     = "MONGO_PORT"
	KeyDatabase = "MONGO_DATABASE"
	KeyUsername = "MONGO_USERNAME"
	KeyPassword = "MONGO_PASSWORD"
	KeyKwargs   = "MONGO_KWARGS"
)

// Keys lists every key the resolver reads.
var Keys = []string{KeyURI, KeyHost, KeyPort, KeyDatabase, KeyUsername, KeyPassword, KeyKwargs}

const (
	DefaultHost = "localhost"
	DefaultPort = 27017

	// HostOption is the driver option the resolved host specification is stored under.
	HostOption = "host"
)

// RawConfig is a flat option map built from a configuration source.
type RawConfig map[string]any

// Lookup returns the value stored under key. Nil values count as absent.
func (c RawConfig) Lookup(key string) (any, bool) {
	v, ok := c[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Clone returns a shallow copy of the config.
func (c RawConfig) Clone() RawConfig {
	out := make(RawConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
