package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: test
  port: "8080"
  base_url: localhost:8080
  allowed_cors_domains:
    - https://school.example

gin:
  mode: test

database:
  driver: postgres
  postgres:
    host: db
    password: secret

market:
  items:
    - name: Pencil
      price: 5
      icon: "✏️"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, []string{"https://school.example"}, conf.API.CORSDomains())
	assert.Equal(t, "test", conf.Gin.Mode)

	assert.Equal(t, DriverPostgres, conf.Database.Driver)
	assert.Equal(t, "db", conf.Database.Postgres.Host)
	assert.Equal(t, "secret", conf.Database.Postgres.Password)
	assert.Equal(t, "5432", conf.Database.Postgres.Port, "default")
	assert.Equal(t, "disable", conf.Database.Postgres.SSLMode, "default")

	require.Len(t, conf.Market.Items, 1)
	assert.Equal(t, MarketItemConfig{Name: "Pencil", Price: 5, Icon: "✏️"}, conf.Market.Items[0])
}

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load(writeConfig(t, "api:\n  environment: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "5000", conf.API.Port)
	assert.Equal(t, DriverSQLite, conf.Database.Driver)
	assert.Equal(t, "school.db", conf.Database.SQLitePath)
	assert.Equal(t, DefaultMarketItems, conf.Market.Items)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, DriverSQLite, conf.Database.Driver)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Load(writeConfig(t, "database:\n  driver: mysql\n"))
		assert.ErrorIs(t, err, errUnknownDBDriver)
	})

	t.Run("empty port", func(t *testing.T) {
		_, err := Load(writeConfig(t, "api:\n  port: \"\"\n"))
		assert.ErrorIs(t, err, errMissingPort)
	})
}

func TestLoad_ReloadsCORSDomains(t *testing.T) {
	path := writeConfig(t, testConfig)

	conf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"https://school.example"}, conf.API.CORSDomains())

	updated := `
api:
  port: "8080"
  allowed_cors_domains:
    - https://school.example
    - https://parents.example
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	assert.Eventually(t, func() bool {
		return len(conf.API.CORSDomains()) == 2
	}, 3*time.Second, 50*time.Millisecond)
}

func TestLoad_ShippedConfigMatchesDefaultItems(t *testing.T) {
	conf, err := Load(filepath.Join("..", "..", "cmd", "app", "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultMarketItems, conf.Market.Items)
	assert.Equal(t, "숙제 면제권", conf.Market.Items[0].Name)
	assert.Equal(t, "칭찬 스티커", conf.Market.Items[3].Name)
	assert.Equal(t, 30, conf.Market.Items[3].Price)
}
