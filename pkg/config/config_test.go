package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("PRODUCT_SECRET_KEY", "product-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.S3.Enabled(), "sin bucket la subida de imágenes queda deshabilitada")
	assert.Empty(t, cfg.NATS.URL)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoad_EnvSobrescribe(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("PRODUCT_SECRET_KEY", "product-secret")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("S3_BUCKET_NAME", "homes")
	t.Setenv("S3_USE_PATH_STYLE", "true")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.JWT.Expiration)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.S3.Enabled())
	assert.True(t, cfg.S3.UsePathStyle)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_SinSecretos_RetornaError(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PRODUCT_SECRET_KEY", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "PRODUCT_SECRET_KEY")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "homes", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/homes?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
