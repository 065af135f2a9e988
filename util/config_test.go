package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	env := `ENVIRONMENT=development
HTTP_SERVER_ADDRESS=0.0.0.0:8080
REDIS_ADDRESS=localhost:6379
ALLOWED_ORIGINS=http://localhost:3000
LINK_CACHE_TTL=15m
LINK_ATTR=rel="nofollow"
`
	err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o644)
	require.NoError(t, err)

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "development", config.Environment)
	require.Equal(t, "0.0.0.0:8080", config.HTTPServerAddress)
	require.Equal(t, "localhost:6379", config.RedisAddress)
	require.Equal(t, []string{"http://localhost:3000"}, config.AllowedOrigins)
	require.Equal(t, 15*time.Minute, config.LinkCacheTTL)
	require.Equal(t, `rel="nofollow"`, config.LinkAttr)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}
