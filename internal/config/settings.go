package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultSettingsYAML = `# pickli settings
mode: multiple      # default selection mode: single or multiple
fuzzy: false        # fuzzy filter matching instead of substring
history: false      # log completed dialogs to the history database
output: lines       # default output format: lines, json, yaml
sort: false         # sort items by name before showing the dialog
`

// Settings holds user-level defaults, overridable per invocation by flags
type Settings struct {
	Mode    string `yaml:"mode"`
	Fuzzy   bool   `yaml:"fuzzy"`
	History bool   `yaml:"history"`
	Output  string `yaml:"output"`
	Sort    bool   `yaml:"sort"`
}

// DefaultSettings returns the built-in defaults
func DefaultSettings() Settings {
	return Settings{
		Mode:    "multiple",
		Fuzzy:   false,
		History: false,
		Output:  "lines",
		Sort:    false,
	}
}

// LoadSettings reads the settings file, falling back to defaults when it
// is missing. A malformed file is an error rather than silently ignored.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(SettingsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("invalid settings file %s: %w", SettingsFile, err)
	}

	if s.Mode != "single" && s.Mode != "multiple" {
		return DefaultSettings(), fmt.Errorf("invalid settings file %s: unknown mode %q", SettingsFile, s.Mode)
	}

	return s, nil
}
