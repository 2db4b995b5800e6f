package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/happymongo/pkg/config"
	"github.com/dmitrymomot/happymongo/pkg/mongoconfig"
)

func TestNewViper(t *testing.T) {
	t.Run("environment over file", func(t *testing.T) {
		clearMongoEnv(t)
		t.Setenv("MONGO_HOST", "h1, h2:27018")
		t.Setenv("MONGO_KWARGS", "replicaSet:rs0")

		path := writeFile(t, "mongo.yaml", "MONGO_HOST: filehost\nMONGO_DATABASE: orders\n")
		v, err := config.NewViper(config.WithConfigFile(path))
		require.NoError(t, err)

		raw, isApp, _ := mongoconfig.Extract(v)
		assert.False(t, isApp)

		plan, err := mongoconfig.Resolve(raw, "app")
		require.NoError(t, err)
		assert.Equal(t, []string{"h1:27017", "h2:27018"}, plan.HostSpec())
		assert.Equal(t, "orders", plan.Database)
		// viper lower-cases nested keys; driver option names are case insensitive.
		assert.Equal(t, "rs0", plan.Options["replicaset"])
	})

	t.Run("env prefix", func(t *testing.T) {
		clearMongoEnv(t)
		t.Setenv("BILLING_MONGO_URI", "mongodb://h:27017/billing")

		v, err := config.NewViper(config.WithEnvPrefix("BILLING"))
		require.NoError(t, err)

		raw, _, _ := mongoconfig.Extract(v)
		plan, err := mongoconfig.Resolve(raw, "app")
		require.NoError(t, err)
		assert.Equal(t, mongoconfig.StyleURI, plan.Style)
		assert.Equal(t, "billing", plan.Database)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := config.NewViper(config.WithConfigFile("/nonexistent/mongo.yaml"))
		require.ErrorIs(t, err, config.ErrReadingFile)
	})
}
