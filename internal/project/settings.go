package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stonefab/benchquote/internal/model"
)

// DefaultSettingsPath returns the default path for the settings file.
func DefaultSettingsPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// SaveSettings persists the app settings to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveSettings(path string, settings model.AppSettings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSettings reads app settings from the given path.
// If the file does not exist, it returns DefaultAppSettings with no error.
func LoadSettings(path string) (model.AppSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppSettings(), nil
		}
		return model.AppSettings{}, err
	}
	var settings model.AppSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.AppSettings{}, err
	}
	// Ensure RecentQuotes is never nil
	if settings.RecentQuotes == nil {
		settings.RecentQuotes = []string{}
	}
	return settings, nil
}

// LoadDefaultSettings loads settings from the default path.
func LoadDefaultSettings() (model.AppSettings, error) {
	path, err := DefaultSettingsPath()
	if err != nil {
		return model.AppSettings{}, err
	}
	return LoadSettings(path)
}

// SaveDefaultSettings saves settings to the default path.
func SaveDefaultSettings(settings model.AppSettings) error {
	path, err := DefaultSettingsPath()
	if err != nil {
		return err
	}
	return SaveSettings(path, settings)
}
