package pricing

import (
	"math"

	"github.com/stonefab/benchquote/internal/model"
)

// SlabPieceArea is one slab-group member's contribution to the shared slab.
type SlabPieceArea struct {
	PieceID string  `json:"piece_id"`
	AreaSqm float64 `json:"area_sqm"`
}

// SlabAllocationContext is the aggregate view of one slab group: every piece
// assigned to the same physical slab with its area. The context is computed
// once per group from a consistent snapshot, never assembled piecemeal, so a
// piece can never price against a partial view of its siblings.
type SlabAllocationContext struct {
	Pieces []SlabPieceArea `json:"pieces"`
}

// TotalAreaSqm sums the areas of all pieces in the group.
func (c SlabAllocationContext) TotalAreaSqm() float64 {
	var total float64
	for _, p := range c.Pieces {
		total += p.AreaSqm
	}
	return total
}

// materialBreakdown prices the material component of one piece.
//
// Per-sqm materials charge the waste-adjusted area. Per-slab materials charge
// each piece its proportional share of the whole slabs the group consumes:
// summing totals across a group reproduces slabCount x pricePerSlab exactly.
func (e *Engine) materialBreakdown(p model.PieceSpec, g model.ShapeGeometry, mat *model.MaterialCatalogEntry, ctx *SlabAllocationContext) *MaterialBreakdown {
	mb := &MaterialBreakdown{
		MaterialID: mat.ID,
		Name:       mat.Name,
		Basis:      mat.Basis,
		AreaSqm:    g.TotalAreaSqm,
	}

	switch mat.Basis {
	case model.PerSlab:
		group := ctx
		if group == nil || len(group.Pieces) == 0 {
			group = &SlabAllocationContext{Pieces: []SlabPieceArea{{PieceID: p.ID, AreaSqm: g.TotalAreaSqm}}}
		}
		totalArea := group.TotalAreaSqm()
		if totalArea <= 0 || e.Rates.SlabAreaSqm() <= 0 {
			return mb
		}
		mb.SharePercent = g.TotalAreaSqm / totalArea * 100.0
		mb.SlabCount = int(math.Ceil(totalArea / e.Rates.SlabAreaSqm()))
		mb.Rate = mat.PricePerSlab
		mb.Total = slabShareCents(p.ID, group, float64(mb.SlabCount)*mat.PricePerSlab, totalArea)

	default: // PerSqm
		mb.WastePercent = mat.WasteFactorPercent
		mb.AdjustedAreaSqm = g.TotalAreaSqm * (1.0 + mat.WasteFactorPercent/100.0)
		mb.Rate = mat.PricePerSqm
		mb.Total = roundCents(mb.AdjustedAreaSqm * mat.PricePerSqm)
	}

	return mb
}

// slabShareCents splits slabCost across the group proportionally to area,
// rounding each share to cents. The residual cent left by rounding goes to
// the largest piece (first in snapshot order on ties), so the shares always
// sum back to slabCost. Every member computes the whole split from the same
// snapshot and so agrees on who absorbs the residual.
func slabShareCents(pieceID string, group *SlabAllocationContext, slabCost, totalArea float64) float64 {
	shares := make([]float64, len(group.Pieces))
	var sum float64
	largest := 0
	for i, gp := range group.Pieces {
		shares[i] = roundCents(slabCost * gp.AreaSqm / totalArea)
		sum += shares[i]
		if gp.AreaSqm > group.Pieces[largest].AreaSqm {
			largest = i
		}
	}
	if residual := roundCents(slabCost - sum); residual != 0 {
		shares[largest] = roundCents(shares[largest] + residual)
	}
	for i, gp := range group.Pieces {
		if gp.PieceID == pieceID {
			return shares[i]
		}
	}
	return 0
}
