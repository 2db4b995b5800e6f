package mongoconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppNameFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/usr/local/bin/billing": "billing",
		"/srv/worker.test":       "worker",
		"server":                 "server",
		"":                       DefaultAppName,
		"/":                      DefaultAppName,
		"/opt/.hidden":           DefaultAppName,
	}
	for path, want := range tests {
		assert.Equal(t, want, appNameFromPath(path), path)
	}
}
