package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stonefab/benchquote/internal/model"
)

func TestSaveLoadQuote_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quote.json")

	q := model.NewQuote("Kitchen")
	q.Customer = "Smith"
	p := model.NewPiece("Island", 2400, 1200, 40)
	p.MaterialID = q.Catalog.Materials[0].ID
	p.Cutouts = []model.Cutout{{CutoutTypeID: q.Catalog.CutoutTypes[0].ID, Quantity: 1}}
	q.Pieces = append(q.Pieces, p)

	if err := SaveQuote(path, q); err != nil {
		t.Fatalf("SaveQuote returned error: %v", err)
	}

	loaded, err := LoadQuote(path)
	if err != nil {
		t.Fatalf("LoadQuote returned error: %v", err)
	}

	if loaded.ID != q.ID {
		t.Errorf("ID = %q, want %q", loaded.ID, q.ID)
	}
	if loaded.Name != "Kitchen" || loaded.Customer != "Smith" {
		t.Errorf("header mismatch: %q / %q", loaded.Name, loaded.Customer)
	}
	if len(loaded.Pieces) != 1 {
		t.Fatalf("got %d pieces, want 1", len(loaded.Pieces))
	}
	got := loaded.Pieces[0]
	if got.Label != "Island" || got.LengthMm != 2400 || got.ThicknessMm != 40 {
		t.Errorf("piece mismatch: %+v", got)
	}
	if len(got.Cutouts) != 1 {
		t.Errorf("cutouts lost in round trip")
	}
	if len(loaded.Catalog.Materials) != len(q.Catalog.Materials) {
		t.Errorf("catalog lost in round trip")
	}
	if loaded.Rates.PolishingRate != q.Rates.PolishingRate {
		t.Errorf("rates lost in round trip")
	}
}

func TestSaveQuote_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "quote.json")

	q := model.NewQuote("Nested")
	if err := SaveQuote(path, q); err != nil {
		t.Fatalf("SaveQuote returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("quote file was not created: %v", err)
	}
}

func TestSaveQuote_RejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	q := model.Quote{Name: "No ID"}
	if err := SaveQuote(filepath.Join(dir, "q.json"), q); err == nil {
		t.Fatal("expected error for quote without ID")
	}
}

func TestLoadQuote_MissingFile(t *testing.T) {
	if _, err := LoadQuote("/nonexistent/quote.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadQuote_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadQuote(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestLoadQuote_NilPiecesBecomesEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_pieces.json")
	if err := os.WriteFile(path, []byte(`{"id":"abc","name":"Empty"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadQuote(path)
	if err != nil {
		t.Fatalf("LoadQuote returned error: %v", err)
	}
	if loaded.Pieces == nil {
		t.Error("Pieces should be an empty slice, not nil")
	}
}

func TestListQuotes(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.json", "b.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := ListQuotes(dir)
	if err != nil {
		t.Fatalf("ListQuotes returned error: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("got %d paths, want 2: %v", len(paths), paths)
	}
}

func TestListQuotes_MissingDir(t *testing.T) {
	paths, err := ListQuotes("/nonexistent/quotes")
	if err != nil {
		t.Fatalf("ListQuotes returned error: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("got %d paths, want 0", len(paths))
	}
}
