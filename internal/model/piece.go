package model

import (
	"math"

	"github.com/google/uuid"
)

// LaminationMethod describes how a piece reaches its finished thickness.
type LaminationMethod int

const (
	LaminationNone      LaminationMethod = iota // Thickness equals the base slab thickness
	LaminationLaminated                         // Built up from multiple bonded layers
)

func (m LaminationMethod) String() string {
	if m == LaminationLaminated {
		return "Laminated"
	}
	return "None"
}

// EdgeAssignments maps the four named sides to edge profile ids.
// An empty id means the side is left raw/unfinished.
type EdgeAssignments struct {
	Top    string `json:"top,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
}

// Cutout is one machined opening entry on a piece.
type Cutout struct {
	CutoutTypeID string `json:"cutout_type_id"`
	Quantity     int    `json:"quantity"`
}

// PieceSpec describes one fabricated piece as edited by the user.
// The pricing engine reads it and never mutates it.
type PieceSpec struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	ShapeType ShapeType    `json:"shape_type"`
	Shape     *ShapeConfig `json:"shape,omitempty"` // nil for rectangles

	// Bounding box in mm. For L and U shapes these must equal what
	// ResolveGeometry derives; SyncBounding keeps them in step.
	LengthMm float64 `json:"length_mm"`
	WidthMm  float64 `json:"width_mm"`

	ThicknessMm float64 `json:"thickness_mm"`

	MaterialID string `json:"material_id,omitempty"`
	// SlabGroup names the physical slab this piece shares with its
	// siblings for per-slab material pricing. Empty means its own slab.
	SlabGroup string `json:"slab_group,omitempty"`

	Edges   EdgeAssignments `json:"edges"`
	Cutouts []Cutout        `json:"cutouts,omitempty"`

	// RequiresGrainMatch is only meaningful for L and U shapes.
	RequiresGrainMatch bool `json:"requires_grain_match,omitempty"`
}

// NewPiece creates a rectangular piece with a generated ID.
func NewPiece(label string, lengthMm, widthMm, thicknessMm float64) PieceSpec {
	return PieceSpec{
		ID:          uuid.New().String()[:8],
		Label:       label,
		ShapeType:   ShapeRectangle,
		LengthMm:    lengthMm,
		WidthMm:     widthMm,
		ThicknessMm: thicknessMm,
	}
}

// Geometry resolves the piece's shape through ResolveGeometry. This is the
// same call the pricing pipeline starts with, so live dimension previews and
// priced breakdowns always agree.
func (p PieceSpec) Geometry() (ShapeGeometry, error) {
	return ResolveGeometry(p.ShapeType, p.Shape, p.LengthMm, p.WidthMm)
}

// SyncBounding copies the resolver-derived bounding box onto the piece.
// Rectangles keep their entered dimensions.
func (p *PieceSpec) SyncBounding(g ShapeGeometry) {
	if p.ShapeType == ShapeRectangle {
		return
	}
	p.LengthMm = g.BoundingLengthMm
	p.WidthMm = g.BoundingWidthMm
}

// Lamination derives the lamination method from the piece thickness against
// the base slab thickness.
func (p PieceSpec) Lamination(baseThicknessMm float64) LaminationMethod {
	if baseThicknessMm > 0 && p.ThicknessMm > baseThicknessMm {
		return LaminationLaminated
	}
	return LaminationNone
}

// LaminationLayers returns the number of bonded layers above the base slab,
// e.g. 40mm over a 20mm base is one layer.
func (p PieceSpec) LaminationLayers(baseThicknessMm float64) int {
	if baseThicknessMm <= 0 || p.ThicknessMm <= baseThicknessMm {
		return 0
	}
	return int(math.Floor((p.ThicknessMm - baseThicknessMm) / baseThicknessMm))
}

// ProfileFor returns the edge profile id assigned to the given edge, or the
// empty string when the edge is raw. Named sides come from the four edge
// assignments; inner edges come from the shape config's edge map.
func (p PieceSpec) ProfileFor(id EdgeID) string {
	if id.Inner() {
		if p.Shape == nil {
			return ""
		}
		return p.Shape.Edges[id]
	}
	switch id {
	case EdgeTop:
		return p.Edges.Top
	case EdgeBottom:
		return p.Edges.Bottom
	case EdgeLeft:
		return p.Edges.Left
	case EdgeRight:
		return p.Edges.Right
	}
	return ""
}
