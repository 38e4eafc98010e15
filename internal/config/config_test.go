package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, 5, cfg.Board.InviteSearchLimit)
	assert.Equal(t, "0 3 * * *", cfg.Board.RenormalizeCron)
	assert.Equal(t, "secret", cfg.JWT.Secret)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "9000"
  read_timeout: 3s
jwt:
  secret: from-file
board:
  renormalize_debounce: 2s
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://board.example.com, ,http://localhost:5173")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 2*time.Second, cfg.Board.RenormalizeDebounce)
	assert.Equal(t, []string{"https://board.example.com", "http://localhost:5173"}, cfg.Server.AllowedOrigins)
}

func TestLoad_RequiresAuthSource(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_SERVICE_URL", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable TimeZone=UTC", d.GetDSN())

	d.URL = "postgres://x"
	assert.Equal(t, "postgres://x", d.GetDSN())
}
