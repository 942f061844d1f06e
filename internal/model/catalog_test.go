package model

import "testing"

func TestDefaultCatalogPopulated(t *testing.T) {
	c := DefaultCatalog()
	if len(c.EdgeProfiles) == 0 || len(c.CutoutTypes) == 0 || len(c.Materials) == 0 {
		t.Fatal("default catalog should have profiles, cutouts, and materials")
	}
	for _, p := range c.EdgeProfiles {
		if p.ID == "" || p.BaseRate <= 0 {
			t.Errorf("profile %q missing id or rate", p.Name)
		}
	}
}

func TestCatalogFinders(t *testing.T) {
	c := DefaultCatalog()

	p := c.FindEdgeProfileByName("Pencil Round")
	if p == nil {
		t.Fatal("expected Pencil Round profile")
	}
	if got := c.FindEdgeProfile(p.ID); got == nil || got.Name != "Pencil Round" {
		t.Errorf("FindEdgeProfile(%q) = %v", p.ID, got)
	}

	if c.FindEdgeProfile("nope") != nil {
		t.Error("expected nil for unknown profile id")
	}
	if c.FindMaterial("nope") != nil {
		t.Error("expected nil for unknown material id")
	}

	m := c.FindMaterialByName("Granite Slab 3200x1600")
	if m == nil {
		t.Fatal("expected granite slab material")
	}
	if m.Basis != PerSlab {
		t.Errorf("granite basis = %v, want PerSlab", m.Basis)
	}
}

func TestCatalogNames(t *testing.T) {
	c := DefaultCatalog()
	if len(c.EdgeProfileNames()) != len(c.EdgeProfiles) {
		t.Error("EdgeProfileNames length mismatch")
	}
	if len(c.MaterialNames()) != len(c.Materials) {
		t.Error("MaterialNames length mismatch")
	}
}
