package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
}

// Un entero mal formado en el entorno conserva el valor por defecto en lugar
// de degradarse a 0.
func TestLoad_EnteroMalFormado_ConservaDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")
	t.Setenv("DB_PORT", "54x2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestDBConfig_DSN_EscapaCaracteresEspeciales(t *testing.T) {
	c := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "laundry",
		Password: "p@ss/word",
		DBName:   "laundry",
		SSLMode:  "disable",
	}
	dsn := c.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestDBConfig_ConnectionString_PrefiereDatabaseURL(t *testing.T) {
	c := DBConfig{DatabaseURL: "postgresql://u:p@host:5432/db?sslmode=require"}
	assert.Equal(t, "postgresql://u:p@host:5432/db?sslmode=require", c.ConnectionString())
}
