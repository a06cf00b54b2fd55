package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), SettingsFile))
	require.NoError(t, err)
	assert.Equal(t, 100, settings.SummaryMaxLength)
	assert.Equal(t, 30, settings.RequestTimeoutSeconds)
}

func TestLoadSettingsFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	content := "summary_max_length: 140\nrequest_timeout_seconds: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 140, settings.SummaryMaxLength)
	assert.Equal(t, 10, settings.RequestTimeoutSeconds)
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("summary_max_length: 80\n"), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 80, settings.SummaryMaxLength)
	assert.Equal(t, 30, settings.RequestTimeoutSeconds)
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("summary_max_length: [not a number"), 0o644))

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings file")
}
