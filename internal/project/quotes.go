// Package project handles persistence: quote files, workshop settings, and
// full data backups, all as indented JSON under the user config directory.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stonefab/benchquote/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
func DefaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "benchquote"), nil
}

// DefaultQuotesDir returns the default directory for saved quotes.
func DefaultQuotesDir() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quotes"), nil
}

// SaveQuote persists a quote to the given path as JSON, creating any
// missing parent directories.
func SaveQuote(path string, q model.Quote) error {
	if q.ID == "" {
		return errors.New("quote has no ID")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadQuote reads a quote from the given path.
func LoadQuote(path string) (model.Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Quote{}, err
	}
	var q model.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return model.Quote{}, fmt.Errorf("cannot parse quote file: %w", err)
	}
	if q.ID == "" {
		return model.Quote{}, errors.New("quote file has no ID")
	}
	if q.Pieces == nil {
		q.Pieces = []model.PieceSpec{}
	}
	return q, nil
}

// SaveQuoteToDefault saves a quote under the default quotes directory as
// <id>.json and returns the written path.
func SaveQuoteToDefault(q model.Quote) (string, error) {
	dir, err := DefaultQuotesDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, q.ID+".json")
	if err := SaveQuote(path, q); err != nil {
		return "", err
	}
	return path, nil
}

// ListQuotes returns the paths of all saved quote files in the given
// directory, or an empty slice if the directory does not exist.
func ListQuotes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	paths := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
