package model

// EdgeRun is one physical edge of a piece paired with its profile
// assignment. Runs with an empty ProfileID are raw: they are reported for
// display but cost nothing.
type EdgeRun struct {
	ID        EdgeID  `json:"id"`
	LengthMm  float64 `json:"length_mm"`
	ProfileID string  `json:"profile_id,omitempty"`
}

// LengthLm returns the run length in linear metres.
func (r EdgeRun) LengthLm() float64 {
	return r.LengthMm / 1000.0
}

// Finished reports whether the run has an edge profile assigned.
func (r EdgeRun) Finished() bool {
	return r.ProfileID != ""
}

// MeasureEdges maps every physical edge of the resolved shape to a run with
// its profile assignment. The enumeration order follows the resolver's edge
// order, so repeated measurement of the same piece is byte-identical.
func MeasureEdges(p PieceSpec, g ShapeGeometry) []EdgeRun {
	runs := make([]EdgeRun, 0, len(g.Edges))
	for _, seg := range g.Edges {
		runs = append(runs, EdgeRun{
			ID:        seg.ID,
			LengthMm:  seg.LengthMm,
			ProfileID: p.ProfileFor(seg.ID),
		})
	}
	return runs
}

// FinishedEdgeLm sums the linear metres of all runs with a profile assigned.
func FinishedEdgeLm(runs []EdgeRun) float64 {
	var total float64
	for _, r := range runs {
		if r.Finished() {
			total += r.LengthMm
		}
	}
	return total / 1000.0
}
