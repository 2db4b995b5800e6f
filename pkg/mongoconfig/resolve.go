package mongoconfig

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// Resolve turns a RawConfig into a connection Plan.
//
// MONGO_URI, when present, is authoritative and the host, port and credential
// keys are ignored. Otherwise the plan is built from MONGO_HOST, MONGO_PORT,
// MONGO_DATABASE and the optional credential pair, with appName as the
// default database. raw is never modified.
func Resolve(raw RawConfig, appName string) (*Plan, error) {
	opts, err := copyOptions(raw)
	if err != nil {
		return nil, err
	}

	if uri, ok := raw.Lookup(KeyURI); ok {
		return resolveURI(uri, opts)
	}
	return resolveHostList(raw, appName, opts)
}

func copyOptions(raw RawConfig) (map[string]any, error) {
	v, ok := raw.Lookup(KeyKwargs)
	if !ok {
		return make(map[string]any), nil
	}
	val := indirect(reflect.ValueOf(v))
	if val.Kind() != reflect.Map || val.Type().Key().Kind() != reflect.String {
		return nil, ErrInvalidOptions
	}
	opts := make(map[string]any, val.Len()+1)
	iter := val.MapRange()
	for iter.Next() {
		opts[iter.Key().String()] = iter.Value().Interface()
	}
	return opts, nil
}

func resolveURI(v any, opts map[string]any) (*Plan, error) {
	uri, err := cast.ToStringE(v)
	if err != nil {
		return nil, errors.Join(ErrInvalidURI, err)
	}
	parts, err := splitURI(uri)
	if err != nil {
		return nil, errors.Join(ErrInvalidURI, err)
	}
	// mongodb+srv URIs are validated by the driver when it expands the SRV
	// record; doing it here would mean a DNS lookup.
	if parts.scheme == schemeStandard {
		if _, err := connstring.ParseAndValidate(uri); err != nil {
			return nil, errors.Join(ErrInvalidURI, err)
		}
	}
	if parts.database == "" {
		return nil, ErrMissingDatabaseName
	}

	query, err := parseQuery(parts.query)
	if err != nil {
		return nil, errors.Join(ErrInvalidURI, err)
	}
	for name, values := range query {
		if hasOption(opts, name) {
			continue
		}
		if len(values) == 1 {
			opts[name] = values[0]
		} else {
			opts[name] = values
		}
	}
	opts[HostOption] = uri

	return &Plan{
		Style:    StyleURI,
		URI:      uri,
		Database: parts.database,
		Options:  opts,
	}, nil
}

const (
	schemeStandard = "mongodb"
	schemeSRV      = "mongodb+srv"
)

type uriParts struct {
	scheme   string
	hosts    string
	database string
	query    string
}

// splitURI breaks a connection string into its parts without any network
// access. url.Parse is not used because it rejects comma separated host lists.
func splitURI(uri string) (uriParts, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok || (scheme != schemeStandard && scheme != schemeSRV) {
		return uriParts{}, fmt.Errorf("scheme must be %q or %q", schemeStandard, schemeSRV)
	}
	parts := uriParts{scheme: scheme}

	rest, parts.query, _ = strings.Cut(rest, "?")
	authority, path, hasPath := strings.Cut(rest, "/")
	if parts.query != "" && !hasPath {
		return uriParts{}, errors.New("must have a / before the query ?")
	}
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		authority = authority[at+1:]
	}
	if authority == "" {
		return uriParts{}, errors.New("must have at least 1 host")
	}
	if scheme == schemeSRV && (strings.Contains(authority, ",") || strings.Contains(authority, ":")) {
		return uriParts{}, errors.New("mongodb+srv URIs must have exactly one host name and no port")
	}
	parts.hosts = authority

	db, err := url.PathUnescape(path)
	if err != nil {
		return uriParts{}, err
	}
	parts.database = db
	return parts, nil
}

// parseQuery parses URI options separated by "&" or ";", as the driver does.
func parseQuery(query string) (url.Values, error) {
	values := url.Values{}
	for _, pair := range strings.FieldsFunc(query, func(r rune) bool { return r == '&' || r == ';' }) {
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, err
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			return nil, err
		}
		values.Add(key, val)
	}
	return values, nil
}

// hasOption reports whether opts already holds name. URI options are case
// insensitive, so keys are compared with EqualFold.
func hasOption(opts map[string]any, name string) bool {
	for k := range opts {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

func resolveHostList(raw RawConfig, appName string, opts map[string]any) (*Plan, error) {
	host, ok := raw.Lookup(KeyHost)
	if !ok {
		host = DefaultHost
	}
	port, ok := raw.Lookup(KeyPort)
	if !ok {
		port = DefaultPort
	}
	portStr, err := portString(port)
	if err != nil {
		return nil, errors.Join(ErrInvalidPort, err)
	}

	entries, err := hostEntries(host)
	if err != nil {
		return nil, err
	}
	hosts := make([]string, 0, len(entries))
	for _, h := range entries {
		if !strings.Contains(h, ":") {
			h = h + ":" + portStr
		}
		hosts = append(hosts, h)
	}

	creds, err := credentials(raw)
	if err != nil {
		return nil, err
	}

	database := appName
	if v, ok := raw.Lookup(KeyDatabase); ok {
		database = cast.ToString(v)
	}
	if database == "" {
		return nil, ErrMissingDatabaseName
	}

	opts[HostOption] = hosts

	return &Plan{
		Style:       StyleHostList,
		Hosts:       hosts,
		Database:    database,
		Credentials: creds,
		Options:     opts,
	}, nil
}

// portString validates port and returns the form appended to hosts. Strings
// are parsed as trimmed decimals; cast would also accept hex and octal.
func portString(port any) (string, error) {
	if s, ok := port.(string); ok {
		s = strings.TrimSpace(s)
		if _, err := strconv.Atoi(s); err != nil {
			return "", err
		}
		return s, nil
	}
	if _, err := cast.ToIntE(port); err != nil {
		return "", err
	}
	return cast.ToString(port), nil
}

func hostEntries(v any) ([]string, error) {
	var entries []string
	switch h := v.(type) {
	case string:
		entries = []string{h}
	default:
		s, err := cast.ToStringSliceE(v)
		if err != nil {
			return nil, errors.Join(ErrNoHostConfigured, err)
		}
		entries = s
	}
	if len(entries) == 0 {
		return nil, ErrNoHostConfigured
	}
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			return nil, ErrNoHostConfigured
		}
	}
	return entries, nil
}

func credentials(raw RawConfig) (*Credentials, error) {
	var username, password string
	if v, ok := raw.Lookup(KeyUsername); ok {
		username = cast.ToString(v)
	}
	if v, ok := raw.Lookup(KeyPassword); ok {
		password = cast.ToString(v)
	}
	switch {
	case username == "" && password == "":
		return nil, nil
	case username == "" || password == "":
		return nil, ErrMissingAuthComponent
	}
	return &Credentials{Username: username, Password: password}, nil
}
