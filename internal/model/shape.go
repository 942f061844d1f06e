package model

import "fmt"

// ShapeType identifies the plan-view shape of a piece.
type ShapeType int

const (
	ShapeRectangle ShapeType = iota // Plain rectangle, uses the piece length/width
	ShapeL                          // L-shape: long run plus a return leg
	ShapeU                          // U-shape: two legs connected by a back run
)

func (s ShapeType) String() string {
	switch s {
	case ShapeL:
		return "L-Shape"
	case ShapeU:
		return "U-Shape"
	default:
		return "Rectangle"
	}
}

// Leg is one rectangular segment of a compound shape.
type Leg struct {
	LengthMm float64 `json:"length_mm"`
	WidthMm  float64 `json:"width_mm"`
}

// Area returns the leg area in square mm, or 0 for degenerate legs.
func (l Leg) Area() float64 {
	if l.LengthMm <= 0 || l.WidthMm <= 0 {
		return 0
	}
	return l.LengthMm * l.WidthMm
}

// LShapeConfig describes an L-shaped piece. Leg1 is the long horizontal run at
// full width; Leg2 is the vertical return occupying only its own width band,
// so the two rectangles never overlap.
type LShapeConfig struct {
	Leg1 Leg `json:"leg1"`
	Leg2 Leg `json:"leg2"`
}

// UShapeConfig describes a U-shaped piece. The legs are measured to include
// the corners; the back run covers only the band between the two legs.
type UShapeConfig struct {
	LeftLeg  Leg `json:"left_leg"`
	Back     Leg `json:"back"`
	RightLeg Leg `json:"right_leg"`
}

// ShapeConfig carries the shape-specific dimensions and per-edge profile
// assignments for non-rectangular pieces. Nil for rectangles.
type ShapeConfig struct {
	L *LShapeConfig `json:"l,omitempty"`
	U *UShapeConfig `json:"u,omitempty"`

	// Edges assigns edge profiles to the shape-specific inner edges,
	// keyed by the EdgeID values enumerated by ResolveGeometry.
	Edges map[EdgeID]string `json:"edges,omitempty"`
}

// GeometryError reports shape dimensions that cannot describe a real piece,
// such as negative leg lengths or a missing leg configuration.
type GeometryError struct {
	Shape  ShapeType
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid %s geometry: %s", e.Shape, e.Reason)
}
