package mongoconfig

// Style identifies how the connection was described.
type Style string

const (
	// StyleURI means the connection came from a single MONGO_URI.
	StyleURI Style = "uri"
	// StyleHostList means the connection came from MONGO_HOST/MONGO_PORT.
	StyleHostList Style = "host_list"
)

// Credentials is a username/password pair used to authenticate against the
// plan's database after the client is created.
type Credentials struct {
	Username string
	Password string
}

// Plan is the resolved set of connection parameters.
type Plan struct {
	Style Style
	// URI is the connection string for StyleURI plans.
	URI string
	// Hosts holds the host:port entries for StyleHostList plans.
	Hosts    []string
	Database string
	// Credentials is non-nil only for host-list plans that configured both
	// MONGO_USERNAME and MONGO_PASSWORD.
	Credentials *Credentials
	// Options are the extra driver options, always including HostOption.
	Options map[string]any
}

// HostSpec returns the value stored under HostOption: the URI string or the
// ordered host:port list.
func (p *Plan) HostSpec() any {
	return p.Options[HostOption]
}
