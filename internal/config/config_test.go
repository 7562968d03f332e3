package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FOLIO_DATA_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".folio", "profiles"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, ".folio", "folio.log"), cfg.LogFile)
	assert.Equal(t, "modern", cfg.DefaultTemplate)
}

func TestLoadReadsYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FOLIO_DATA_DIR", "")

	dir := filepath.Join(home, ".folio")
	require.NoError(t, os.MkdirAll(dir, 0700))
	raw := "data_dir: /srv/profiles\ndefault_template: creative\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/profiles", cfg.DataDir)
	assert.Equal(t, "creative", cfg.DefaultTemplate)
	// Unset fields still default.
	assert.Equal(t, filepath.Join(dir, "folio.log"), cfg.LogFile)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".folio")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("data_dir: [unclosed"), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvOverridesDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FOLIO_DATA_DIR", "/tmp/elsewhere")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir)
}
