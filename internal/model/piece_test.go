package model

import "testing"

func TestNewPieceDefaults(t *testing.T) {
	p := NewPiece("Island Bench", 2400, 1200, 20)
	if p.ID == "" {
		t.Error("expected generated ID")
	}
	if p.ShapeType != ShapeRectangle {
		t.Errorf("shape = %v, want Rectangle", p.ShapeType)
	}
	if p.ThicknessMm != 20 {
		t.Errorf("thickness = %v, want 20", p.ThicknessMm)
	}
}

func TestLaminationDerivation(t *testing.T) {
	tests := []struct {
		thickness float64
		base      float64
		method    LaminationMethod
		layers    int
	}{
		{20, 20, LaminationNone, 0},
		{40, 20, LaminationLaminated, 1},
		{60, 20, LaminationLaminated, 2},
		{12, 12, LaminationNone, 0},
		{30, 20, LaminationLaminated, 0}, // partial layer floors to zero
	}
	for _, tt := range tests {
		p := NewPiece("P", 1000, 600, tt.thickness)
		if got := p.Lamination(tt.base); got != tt.method {
			t.Errorf("Lamination(%v over %v) = %v, want %v", tt.thickness, tt.base, got, tt.method)
		}
		if got := p.LaminationLayers(tt.base); got != tt.layers {
			t.Errorf("LaminationLayers(%v over %v) = %d, want %d", tt.thickness, tt.base, got, tt.layers)
		}
	}
}

func TestProfileForNamedAndInnerEdges(t *testing.T) {
	p := NewPiece("Bench", 3200, 600, 20)
	p.ShapeType = ShapeL
	p.Shape = &ShapeConfig{
		L: &LShapeConfig{
			Leg1: Leg{LengthMm: 3200, WidthMm: 600},
			Leg2: Leg{LengthMm: 1800, WidthMm: 600},
		},
		Edges: map[EdgeID]string{EdgeInnerBack: "pencil"},
	}
	p.Edges.Top = "bullnose"

	if got := p.ProfileFor(EdgeTop); got != "bullnose" {
		t.Errorf("top profile = %q, want bullnose", got)
	}
	if got := p.ProfileFor(EdgeInnerBack); got != "pencil" {
		t.Errorf("inner_back profile = %q, want pencil", got)
	}
	if got := p.ProfileFor(EdgeInnerSide); got != "" {
		t.Errorf("inner_side profile = %q, want raw", got)
	}
	if got := p.ProfileFor(EdgeBottom); got != "" {
		t.Errorf("bottom profile = %q, want raw", got)
	}
}

func TestSyncBounding(t *testing.T) {
	p := NewPiece("Corner", 0, 0, 20)
	p.ShapeType = ShapeL
	p.Shape = &ShapeConfig{L: &LShapeConfig{
		Leg1: Leg{LengthMm: 3200, WidthMm: 600},
		Leg2: Leg{LengthMm: 1800, WidthMm: 600},
	}}

	g, err := p.Geometry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.SyncBounding(g)
	if p.LengthMm != 3200 || p.WidthMm != 2400 {
		t.Errorf("bounding = %.0fx%.0f, want 3200x2400", p.LengthMm, p.WidthMm)
	}

	// Rectangles keep their entered dimensions.
	r := NewPiece("Rect", 1000, 500, 20)
	rg, _ := r.Geometry()
	r.SyncBounding(rg)
	if r.LengthMm != 1000 || r.WidthMm != 500 {
		t.Errorf("rectangle bounding changed: %.0fx%.0f", r.LengthMm, r.WidthMm)
	}
}
