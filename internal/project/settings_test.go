package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stonefab/benchquote/internal/model"
)

func TestSaveLoadSettings_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	settings := model.DefaultAppSettings()
	settings.Rates.PolishingRate = 22.50
	settings.AddRecentQuote("/quotes/kitchen.json")

	if err := SaveSettings(path, settings); err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if loaded.Rates.PolishingRate != 22.50 {
		t.Errorf("PolishingRate = %v, want 22.50", loaded.Rates.PolishingRate)
	}
	if len(loaded.RecentQuotes) != 1 || loaded.RecentQuotes[0] != "/quotes/kitchen.json" {
		t.Errorf("RecentQuotes = %v", loaded.RecentQuotes)
	}
	if len(loaded.Catalog.EdgeProfiles) == 0 {
		t.Error("catalog lost in round trip")
	}
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadSettings(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	defaults := model.DefaultAppSettings()
	if loaded.Rates.PolishingRate != defaults.Rates.PolishingRate {
		t.Errorf("expected default rates, got %+v", loaded.Rates)
	}
	if loaded.RecentQuotes == nil {
		t.Error("RecentQuotes should be an empty slice, not nil")
	}
}

func TestLoadSettings_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestAddRecentQuote_DedupAndCap(t *testing.T) {
	settings := model.DefaultAppSettings()
	for i := 0; i < 12; i++ {
		settings.AddRecentQuote(filepath.Join("/quotes", string(rune('a'+i))+".json"))
	}
	if len(settings.RecentQuotes) != 10 {
		t.Errorf("got %d recent quotes, want 10", len(settings.RecentQuotes))
	}

	// Re-adding an existing path moves it to the front without duplication.
	settings.AddRecentQuote(settings.RecentQuotes[3])
	if len(settings.RecentQuotes) != 10 {
		t.Errorf("got %d recent quotes after re-add, want 10", len(settings.RecentQuotes))
	}
}
