package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeldrop/pixeldrop/internal/upload"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.HTTP.Addr)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, "/uploads", cfg.Uploads.PublicPath)
	assert.Equal(t, int64(upload.DefaultMaxFileSize), cfg.Uploads.MaxFileSize)
	assert.Equal(t, "web/index.html", cfg.Web.IndexFile)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("PIXELDROP_HTTP_ADDR", ":9090")
	t.Setenv("PIXELDROP_UPLOADS_DIR", "/tmp/pixeldrop-uploads")
	t.Setenv("PIXELDROP_UPLOADS_MAX_FILE_SIZE", "1048576")
	t.Setenv("PIXELDROP_WEB_INDEX_FILE", "custom/index.html")

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "/tmp/pixeldrop-uploads", cfg.Uploads.Dir)
	assert.Equal(t, int64(1<<20), cfg.Uploads.MaxFileSize)
	assert.Equal(t, "custom/index.html", cfg.Web.IndexFile)
}

func TestLoadConfigPortEnv(t *testing.T) {
	t.Setenv("PORT", "4000")

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.HTTP.Addr)
}
