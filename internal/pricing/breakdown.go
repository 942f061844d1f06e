package pricing

import (
	"fmt"

	"github.com/stonefab/benchquote/internal/model"
)

// LineItem is one priced fabrication charge. It carries the quantity, unit,
// and rate it was computed from so consumers can always reconstruct the
// formula behind the total.
type LineItem struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"` // "Lm", "Sqm", or "ea"
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total"`
}

// Formula renders the calculation behind the total, e.g.
// "3.20 Lm x $18.00/Lm = $57.60".
func (li LineItem) Formula() string {
	return fmt.Sprintf("%.2f %s x $%.2f/%s = $%.2f", li.Quantity, li.Unit, li.Rate, li.Unit, li.Total)
}

// EdgeLineItem is the charge for one finished edge run.
type EdgeLineItem struct {
	EdgeID      model.EdgeID `json:"edge_id"`
	ProfileID   string       `json:"profile_id"`
	ProfileName string       `json:"profile_name"`
	LineItem
}

// CutoutLineItem is the charge for one cutout entry.
type CutoutLineItem struct {
	CutoutTypeID string `json:"cutout_type_id"`
	Name         string `json:"name"`
	Count        int    `json:"count"`
	LineItem
}

// FabricationBreakdown itemizes the fabrication charges of one piece.
// Cutting, polishing, lamination, and installation are single channels and
// are always present, possibly with a zero total. Edges and cutouts are
// collections and omit zero-value entries.
type FabricationBreakdown struct {
	Cutting      LineItem         `json:"cutting"`
	Polishing    LineItem         `json:"polishing"`
	Edges        []EdgeLineItem   `json:"edges,omitempty"`
	Cutouts      []CutoutLineItem `json:"cutouts,omitempty"`
	Lamination   LineItem         `json:"lamination"`
	Installation LineItem         `json:"installation"`
}

// Subtotal sums cutting, polishing, edges, cutouts, and lamination. This is
// the base the grain-matching surcharge applies to; installation and join
// costs are excluded.
func (f FabricationBreakdown) Subtotal() float64 {
	total := f.Cutting.Total + f.Polishing.Total + f.Lamination.Total
	for _, e := range f.Edges {
		total += e.Total
	}
	for _, c := range f.Cutouts {
		total += c.Total
	}
	return total
}

// Total sums every fabrication channel including installation.
func (f FabricationBreakdown) Total() float64 {
	return f.Subtotal() + f.Installation.Total
}

// JoinStrategy describes how an oversize piece is split into segments.
type JoinStrategy string

const (
	JoinLengthwise JoinStrategy = "LENGTHWISE"
	JoinWidthwise  JoinStrategy = "WIDTHWISE"
	JoinMulti      JoinStrategy = "MULTI_JOIN"
)

// SlabSegment is one workable sub-piece of an oversize split.
type SlabSegment struct {
	LengthMm float64 `json:"length_mm"`
	WidthMm  float64 `json:"width_mm"`
}

// OversizeBreakdown covers the joinery charges of a piece: slab-limit joins
// and the grain-matching surcharge across corner joins. It is present when
// the piece is oversize or grain matching was requested; IsOversize remains
// the oversize state signal.
type OversizeBreakdown struct {
	IsOversize   bool          `json:"is_oversize"`
	Strategy     JoinStrategy  `json:"strategy,omitempty"`
	Segments     []SlabSegment `json:"segments,omitempty"`
	JoinCount    int           `json:"join_count"`
	JoinLengthLm float64       `json:"join_length_lm"`
	JoinRate     float64       `json:"join_rate"`
	JoinCost     float64       `json:"join_cost"`

	GrainMatchRequested bool    `json:"grain_match_requested"`
	GrainMatchFeasible  bool    `json:"grain_match_feasible"`
	SurchargeRate       float64 `json:"grain_matching_surcharge_rate"` // percent
	Surcharge           float64 `json:"grain_matching_surcharge"`
	// FabricationSubtotal is the fabrication base the surcharge was
	// computed from (cutting+polishing+edges+cutouts+lamination).
	FabricationSubtotal float64 `json:"fabrication_subtotal_before_surcharge"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// Total returns the joinery component: join cost plus any applied surcharge.
func (o *OversizeBreakdown) Total() float64 {
	if o == nil {
		return 0
	}
	return o.JoinCost + o.Surcharge
}

// MaterialBreakdown prices the material component of one piece.
type MaterialBreakdown struct {
	MaterialID string             `json:"material_id"`
	Name       string             `json:"name"`
	Basis      model.PricingBasis `json:"basis"`
	AreaSqm    float64            `json:"area_sqm"`

	// Per-sqm basis
	WastePercent    float64 `json:"waste_percent,omitempty"`
	AdjustedAreaSqm float64 `json:"adjusted_area_sqm,omitempty"`

	// Per-slab basis
	SlabCount    int     `json:"slab_count,omitempty"`
	SharePercent float64 `json:"share_percent,omitempty"`

	Rate  float64 `json:"rate"`
	Total float64 `json:"total"`
}

// PieceBreakdown is the engine's sole output for one piece: the fully
// itemized cost with reconstructable formulas. It is recomputed in full on
// every edit and replaced wholesale.
type PieceBreakdown struct {
	PieceID     string               `json:"piece_id"`
	Fabrication FabricationBreakdown `json:"fabrication"`
	Oversize    *OversizeBreakdown   `json:"oversize,omitempty"`
	Materials   *MaterialBreakdown   `json:"materials,omitempty"`
	Warnings    []Warning            `json:"warnings,omitempty"`
	PieceTotal  float64              `json:"piece_total"`
}
