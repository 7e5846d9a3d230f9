package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "auto", cfg.Analysis.DefaultLanguage)
	assert.True(t, cfg.Analysis.Structural)
	assert.Equal(t, "console", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowRationale)
	assert.Equal(t, 256, cfg.Limits.MaxSnippetSize)
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestValidateRejectsUnknownLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.DefaultLanguage = "fortran"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fortran")
}

func TestValidateRejectsZeroSnippetSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits.MaxSnippetSize = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadConfigMissingPathFallsBackToDefault(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigocheck.yml")
	data := "analysis:\n  default_language: java\n  structural: false\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "java", cfg.Analysis.DefaultLanguage)
	assert.False(t, cfg.Analysis.Structural)
	assert.Equal(t, "json", cfg.Output.Format)
	// untouched sections keep their defaults
	assert.Equal(t, 256, cfg.Limits.MaxSnippetSize)
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigocheck.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bigocheck.yml")
	cfg := DefaultConfig()
	cfg.Analysis.DefaultLanguage = "python"
	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGenerateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigocheck.yml")
	require.NoError(t, GenerateConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)
}
