package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the optional per-repository settings file.
const SettingsFile = ".prnotify.yml"

// Settings holds the tunables a repository may override. Everything has a
// working default; the file is entirely optional.
type Settings struct {
	// SummaryMaxLength caps the generated summary, ellipsis included.
	SummaryMaxLength int `yaml:"summary_max_length"`

	// RequestTimeoutSeconds bounds the outbound Slack request.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

// DefaultSettings returns the settings used when no file overrides them.
func DefaultSettings() Settings {
	return Settings{
		SummaryMaxLength:      100,
		RequestTimeoutSeconds: 30,
	}
}

// LoadSettings reads path and merges it over the defaults. A missing file is
// not an error; a present but unparsable file is.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return settings, fmt.Errorf("failed to parse settings file: %w", err)
	}

	mergeWithDefaults(&loaded)
	return loaded, nil
}

// mergeWithDefaults fills zero-valued fields so partial files keep working
// defaults.
func mergeWithDefaults(s *Settings) {
	defaults := DefaultSettings()
	if s.SummaryMaxLength <= 0 {
		s.SummaryMaxLength = defaults.SummaryMaxLength
	}
	if s.RequestTimeoutSeconds <= 0 {
		s.RequestTimeoutSeconds = defaults.RequestTimeoutSeconds
	}
}
