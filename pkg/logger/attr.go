package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Database records the database name under the key "database".
func Database(name string) slog.Attr {
	return slog.String("database", name)
}

// Hosts records a host:port list under the key "hosts".
// If the list is empty, it returns an empty Attr.
func Hosts(hosts []string) slog.Attr {
	if len(hosts) == 0 {
		return slog.Attr{}
	}
	return slog.String("hosts", strings.Join(hosts, ","))
}

// Style records the connection style under the key "style".
func Style(style string) slog.Attr {
	return slog.String("style", style)
}

// Source records the Go type of the configuration source under the key "source".
func Source(src any) slog.Attr {
	return slog.String("source", fmt.Sprintf("%T", src))
}

// URI records a connection string under the key "uri" with the password
// replaced by "xxxxx". If uri is empty, it returns an empty Attr.
func URI(uri string) slog.Attr {
	if uri == "" {
		return slog.Attr{}
	}
	return slog.String("uri", RedactURI(uri))
}

// RedactURI masks the password of the user info part of a connection string.
// url.Parse is avoided because it rejects comma separated host lists.
func RedactURI(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	end := strings.IndexAny(rest, "/?")
	if end < 0 {
		end = len(rest)
	}
	at := strings.LastIndex(rest[:end], "@")
	if at < 0 {
		return uri
	}
	user, _, hasPassword := strings.Cut(rest[:at], ":")
	if !hasPassword {
		return uri
	}
	return scheme + "://" + user + ":xxxxx" + rest[at:]
}
