package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/happymongo/pkg/config"
	"github.com/dmitrymomot/happymongo/pkg/mongoconfig"
)

// clearMongoEnv blanks every MONGO_* variable for the duration of the test.
func clearMongoEnv(t *testing.T) {
	t.Helper()
	for _, key := range mongoconfig.Keys {
		t.Setenv(key, "")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Run("parses variables", func(t *testing.T) {
		clearMongoEnv(t)
		t.Setenv("MONGO_HOST", "a,b:27018")
		t.Setenv("MONGO_PORT", "27019")
		t.Setenv("MONGO_DATABASE", "orders")
		t.Setenv("MONGO_KWARGS", "replicaSet:rs0,maxPoolSize:20")

		cfg, err := config.LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b:27018"}, cfg.Host)
		assert.Equal(t, "27019", cfg.Port)
		assert.Equal(t, "orders", cfg.Database)
		assert.Equal(t, map[string]string{"replicaSet": "rs0", "maxPoolSize": "20"}, cfg.Kwargs)
		assert.Empty(t, cfg.URI)
	})

	t.Run("resolves as a struct source", func(t *testing.T) {
		clearMongoEnv(t)
		t.Setenv("MONGO_HOST", "a,b:27018")
		t.Setenv("MONGO_PORT", "27019")
		t.Setenv("MONGO_DATABASE", "orders")
		t.Setenv("MONGO_KWARGS", "replicaSet:rs0")

		cfg, err := config.LoadEnv()
		require.NoError(t, err)

		raw, isApp, appName := mongoconfig.Extract(cfg)
		assert.False(t, isApp)
		assert.NotContains(t, raw, "MONGO_URI")

		plan, err := mongoconfig.Resolve(raw, appName)
		require.NoError(t, err)
		assert.Equal(t, []string{"a:27019", "b:27018"}, plan.HostSpec())
		assert.Equal(t, "orders", plan.Database)
		assert.Equal(t, "rs0", plan.Options["replicaSet"])
	})

	t.Run("explicit env file", func(t *testing.T) {
		clearMongoEnv(t)
		os.Unsetenv("MONGO_URI")
		t.Cleanup(func() { os.Unsetenv("MONGO_URI") })

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("MONGO_URI=mongodb://h:27017/fromfile\n"), 0o600))

		cfg, err := config.LoadEnv(path)
		require.NoError(t, err)
		assert.Equal(t, "mongodb://h:27017/fromfile", cfg.URI)
	})

	t.Run("missing env file", func(t *testing.T) {
		_, err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
