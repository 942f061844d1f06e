package model

import "math"

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: o[0].X, Y: o[0].Y}
	max = Point2D{X: o[0].X, Y: o[0].Y}
	for _, p := range o[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (o Outline) Translate(dx, dy float64) Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}

// sqmmPerSqm converts square millimetres to square metres.
const sqmmPerSqm = 1_000_000.0

// EdgeID identifies one logical edge of a piece. The four named sides cover
// the outer perimeter; the inner_* ids are the internal-corner edges exposed
// by L and U shapes.
type EdgeID string

const (
	EdgeTop    EdgeID = "top"
	EdgeBottom EdgeID = "bottom"
	EdgeLeft   EdgeID = "left"
	EdgeRight  EdgeID = "right"

	EdgeInnerBack  EdgeID = "inner_back"  // Horizontal edge facing the cook (L and U)
	EdgeInnerSide  EdgeID = "inner_side"  // Vertical inner edge of an L return
	EdgeInnerLeft  EdgeID = "inner_left"  // Inner edge of the left U leg
	EdgeInnerRight EdgeID = "inner_right" // Inner edge of the right U leg
)

// Inner reports whether the edge is a shape-specific internal-corner edge
// rather than one of the four named sides.
func (e EdgeID) Inner() bool {
	switch e {
	case EdgeInnerBack, EdgeInnerSide, EdgeInnerLeft, EdgeInnerRight:
		return true
	}
	return false
}

// EdgeSegment is one physical perimeter run of a piece. Segments are
// enumerated exactly once each; a named side may appear on more than one
// segment (both U leg ends share the bottom side).
type EdgeSegment struct {
	ID       EdgeID  `json:"id"`
	LengthMm float64 `json:"length_mm"`
	Start    Point2D `json:"start"`
	End      Point2D `json:"end"`
}

// ShapeGeometry is the resolved physical description of a piece's plan shape.
// The Edges enumeration is the single source used for measurement, costing,
// and rendering, so the three can never drift apart.
type ShapeGeometry struct {
	BoundingLengthMm float64       `json:"bounding_length_mm"`
	BoundingWidthMm  float64       `json:"bounding_width_mm"`
	TotalAreaSqm     float64       `json:"total_area_sqm"`
	CornerJoins      int           `json:"corner_joins"`
	Outline          Outline       `json:"outline,omitempty"`
	Edges            []EdgeSegment `json:"edges"`
}

// PerimeterLm returns the total physical perimeter in linear metres,
// counting every enumerated edge whether finished or raw.
func (g ShapeGeometry) PerimeterLm() float64 {
	var total float64
	for _, e := range g.Edges {
		total += e.LengthMm
	}
	return total / 1000.0
}

// ResolveGeometry computes bounding dimensions, true area, corner-join count,
// outline, and the edge enumeration for a shape specification. Rectangles use
// lengthMm/widthMm; L and U shapes read their legs from cfg.
//
// Negative dimensions or a missing leg configuration fail with GeometryError.
// Zero dimensions are treated as an in-progress spec: the result carries zero
// area and no outline so live previews can still evaluate it.
func ResolveGeometry(shapeType ShapeType, cfg *ShapeConfig, lengthMm, widthMm float64) (ShapeGeometry, error) {
	switch shapeType {
	case ShapeRectangle:
		return resolveRectangle(lengthMm, widthMm)
	case ShapeL:
		if cfg == nil || cfg.L == nil {
			return ShapeGeometry{}, &GeometryError{Shape: ShapeL, Reason: "missing leg configuration"}
		}
		return resolveLShape(*cfg.L)
	case ShapeU:
		if cfg == nil || cfg.U == nil {
			return ShapeGeometry{}, &GeometryError{Shape: ShapeU, Reason: "missing leg configuration"}
		}
		return resolveUShape(*cfg.U)
	default:
		return ShapeGeometry{}, &GeometryError{Shape: shapeType, Reason: "unknown shape type"}
	}
}

func resolveRectangle(lengthMm, widthMm float64) (ShapeGeometry, error) {
	if lengthMm < 0 || widthMm < 0 {
		return ShapeGeometry{}, &GeometryError{Shape: ShapeRectangle, Reason: "negative dimension"}
	}

	g := ShapeGeometry{
		BoundingLengthMm: lengthMm,
		BoundingWidthMm:  widthMm,
		TotalAreaSqm:     lengthMm * widthMm / sqmmPerSqm,
		CornerJoins:      0,
	}
	if lengthMm <= 0 || widthMm <= 0 {
		// Degenerate: still evaluable, just zero area and no edges yet.
		g.TotalAreaSqm = 0
		return g, nil
	}

	g.Outline = Outline{
		{X: 0, Y: 0},
		{X: lengthMm, Y: 0},
		{X: lengthMm, Y: widthMm},
		{X: 0, Y: widthMm},
	}
	g.Edges = []EdgeSegment{
		{ID: EdgeTop, LengthMm: lengthMm, Start: Point2D{0, 0}, End: Point2D{lengthMm, 0}},
		{ID: EdgeRight, LengthMm: widthMm, Start: Point2D{lengthMm, 0}, End: Point2D{lengthMm, widthMm}},
		{ID: EdgeBottom, LengthMm: lengthMm, Start: Point2D{lengthMm, widthMm}, End: Point2D{0, widthMm}},
		{ID: EdgeLeft, LengthMm: widthMm, Start: Point2D{0, widthMm}, End: Point2D{0, 0}},
	}
	return g, nil
}

// resolveLShape lays the piece out with leg1 as the horizontal run along the
// top and leg2 as the vertical return hanging from its left end.
func resolveLShape(cfg LShapeConfig) (ShapeGeometry, error) {
	a1, w1 := cfg.Leg1.LengthMm, cfg.Leg1.WidthMm
	l2, w2 := cfg.Leg2.LengthMm, cfg.Leg2.WidthMm

	if a1 < 0 || w1 < 0 || l2 < 0 || w2 < 0 {
		return ShapeGeometry{}, &GeometryError{Shape: ShapeL, Reason: "negative leg dimension"}
	}
	if w2 > a1 && a1 > 0 {
		return ShapeGeometry{}, &GeometryError{Shape: ShapeL, Reason: "leg2 width exceeds leg1 length"}
	}

	g := ShapeGeometry{
		BoundingLengthMm: a1,
		BoundingWidthMm:  w1 + l2,
		TotalAreaSqm:     (cfg.Leg1.Area() + cfg.Leg2.Area()) / sqmmPerSqm,
	}
	if cfg.Leg1.Area() > 0 && cfg.Leg2.Area() > 0 {
		g.CornerJoins = 1
	}
	if g.TotalAreaSqm <= 0 {
		return g, nil
	}
	if cfg.Leg2.Area() == 0 {
		// Return leg not filled in yet: behaves as a plain rectangle.
		rect, err := resolveRectangle(a1, w1)
		rect.BoundingWidthMm = w1 + l2
		return rect, err
	}

	g.Outline = Outline{
		{X: 0, Y: 0},
		{X: a1, Y: 0},
		{X: a1, Y: w1},
		{X: w2, Y: w1},
		{X: w2, Y: w1 + l2},
		{X: 0, Y: w1 + l2},
	}
	g.Edges = appendEdge(nil, EdgeTop, Point2D{0, 0}, Point2D{a1, 0})
	g.Edges = appendEdge(g.Edges, EdgeRight, Point2D{a1, 0}, Point2D{a1, w1})
	g.Edges = appendEdge(g.Edges, EdgeInnerBack, Point2D{a1, w1}, Point2D{w2, w1})
	g.Edges = appendEdge(g.Edges, EdgeInnerSide, Point2D{w2, w1}, Point2D{w2, w1 + l2})
	g.Edges = appendEdge(g.Edges, EdgeBottom, Point2D{w2, w1 + l2}, Point2D{0, w1 + l2})
	g.Edges = appendEdge(g.Edges, EdgeLeft, Point2D{0, w1 + l2}, Point2D{0, 0})
	return g, nil
}

// resolveUShape lays the piece out with the back run along the top and the
// two legs hanging down at each end. The legs are measured to include the
// corners; the back band covers the span between them. Area follows the
// published contract: each of the three rectangles contributes its own
// length x width product.
func resolveUShape(cfg UShapeConfig) (ShapeGeometry, error) {
	ll, wl := cfg.LeftLeg.LengthMm, cfg.LeftLeg.WidthMm
	b, wb := cfg.Back.LengthMm, cfg.Back.WidthMm
	lr, wr := cfg.RightLeg.LengthMm, cfg.RightLeg.WidthMm

	if ll < 0 || wl < 0 || b < 0 || wb < 0 || lr < 0 || wr < 0 {
		return ShapeGeometry{}, &GeometryError{Shape: ShapeU, Reason: "negative leg dimension"}
	}

	g := ShapeGeometry{
		BoundingLengthMm: b,
		BoundingWidthMm:  math.Max(ll, lr),
		TotalAreaSqm:     (cfg.LeftLeg.Area() + cfg.Back.Area() + cfg.RightLeg.Area()) / sqmmPerSqm,
	}
	if cfg.LeftLeg.Area() > 0 && cfg.Back.Area() > 0 && cfg.RightLeg.Area() > 0 {
		g.CornerJoins = 2
	}
	if g.TotalAreaSqm <= 0 || g.CornerJoins < 2 {
		return g, nil
	}

	if wl+wr > b {
		return ShapeGeometry{}, &GeometryError{Shape: ShapeU, Reason: "combined leg widths exceed the back length"}
	}
	if ll < wb || lr < wb {
		return ShapeGeometry{}, &GeometryError{Shape: ShapeU, Reason: "leg shorter than the back width"}
	}

	g.Outline = Outline{
		{X: 0, Y: 0},
		{X: b, Y: 0},
		{X: b, Y: lr},
		{X: b - wr, Y: lr},
		{X: b - wr, Y: wb},
		{X: wl, Y: wb},
		{X: wl, Y: ll},
		{X: 0, Y: ll},
	}
	g.Edges = appendEdge(nil, EdgeTop, Point2D{0, 0}, Point2D{b, 0})
	g.Edges = appendEdge(g.Edges, EdgeRight, Point2D{b, 0}, Point2D{b, lr})
	g.Edges = appendEdge(g.Edges, EdgeBottom, Point2D{b, lr}, Point2D{b - wr, lr})
	g.Edges = appendEdge(g.Edges, EdgeInnerRight, Point2D{b - wr, lr}, Point2D{b - wr, wb})
	g.Edges = appendEdge(g.Edges, EdgeInnerBack, Point2D{b - wr, wb}, Point2D{wl, wb})
	g.Edges = appendEdge(g.Edges, EdgeInnerLeft, Point2D{wl, wb}, Point2D{wl, ll})
	g.Edges = appendEdge(g.Edges, EdgeBottom, Point2D{wl, ll}, Point2D{0, ll})
	g.Edges = appendEdge(g.Edges, EdgeLeft, Point2D{0, ll}, Point2D{0, 0})
	return g, nil
}

// appendEdge adds a segment unless it has zero length (collapsed inner edges
// on shapes that degenerate toward a rectangle are not physical edges).
func appendEdge(edges []EdgeSegment, id EdgeID, start, end Point2D) []EdgeSegment {
	length := math.Hypot(end.X-start.X, end.Y-start.Y)
	if length <= 0 {
		return edges
	}
	return append(edges, EdgeSegment{ID: id, LengthMm: length, Start: start, End: end})
}
