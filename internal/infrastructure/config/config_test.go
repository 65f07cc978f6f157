package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SERVER_PORT", "NODE_ENV", "APP_ENVIRONMENT", "JWT_EXPIRES_IN", "COOKIE_NAME", "GOOGLE_CLIENT_ID"} {
		t.Setenv(key, "")
	}
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "token", cfg.Cookie.Name)
	assert.Equal(t, 7*24*time.Hour, cfg.Cookie.MaxAge)
	assert.True(t, cfg.App.IsDevelopment())
	assert.False(t, cfg.Google.Enabled())
}

func TestLoad_SpecEnvironmentNames(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("COOKIE_NAME", "session")
	t.Setenv("PORT", "8081")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("FRONTEND_URL", "https://app.taskify.dev")
	t.Setenv("BACKEND_URL", "https://api.taskify.dev/")
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/taskify?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "session", cfg.Cookie.Name)
	assert.True(t, cfg.App.IsProduction())
	assert.True(t, cfg.Google.Enabled())
	assert.Equal(t, "https://api.taskify.dev/auth/google/callback", cfg.App.GoogleCallbackURL())
	assert.Equal(t, "postgres://u:p@db:5432/taskify?sslmode=disable", cfg.Database.GetDSN())
}

func TestLoad_ProductionRejectsDefaultSecret(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("JWT_SECRET", defaultJWTSecret)

	_, err := Load()

	assert.Error(t, err)
}

func TestDatabaseConfig_GetDSN_Discrete(t *testing.T) {
	cfg := DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "pw", Name: "taskify", SSLMode: "disable"}

	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=taskify sslmode=disable", cfg.GetDSN())
}

func TestConfig_AllowedOrigins(t *testing.T) {
	cfg := &Config{
		App:      AppConfig{FrontendURL: "http://localhost:3000"},
		Security: SecurityConfig{CORSAllowedOrigins: " http://localhost:3000, https://admin.taskify.dev ,"},
	}

	assert.Equal(t, []string{"http://localhost:3000", "https://admin.taskify.dev"}, cfg.AllowedOrigins())
}
