package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenTTL, "el token dura 30 días por defecto")
	assert.Equal(t, "X-API-TOKEN", cfg.Auth.TokenHeader)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestFromViper_ValoresDeEntorno(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("AUTH_TOKEN_TTL_HOURS", "2")
	v.Set("DB_AUTO_MIGRATE", "false")
	v.Set("HTTP_PORT", "9090")

	cfg := fromViper(v)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "contacts", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/contacts?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestValidate(t *testing.T) {
	cfg := fromViper(viper.New())
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_TOKEN_SECRET")

	cfg.Auth.TokenSecret = "secreto"
	assert.NoError(t, cfg.Validate())

	cfg.Storage.Driver = "mongo"
	assert.Error(t, cfg.Validate())
}
