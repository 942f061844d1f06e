// Package pricing implements the piece geometry and fabrication pricing
// engine: a pure, synchronous function from a piece specification and its
// rate context to a fully itemized cost breakdown. It performs no I/O and
// holds no mutable state; identical inputs produce identical output.
package pricing

import (
	"math"

	"github.com/stonefab/benchquote/internal/model"
)

// Engine prices pieces against a rate configuration and catalog.
type Engine struct {
	Rates   model.RateConfig
	Catalog model.Catalog
}

func New(rates model.RateConfig, catalog model.Catalog) *Engine {
	return &Engine{Rates: rates, Catalog: catalog}
}

// PricePiece computes the full breakdown for one piece. ctx supplies the
// slab-sharing siblings for per-slab materials and may be nil otherwise.
//
// Geometry and rate failures abort the computation with an error; advisory
// conditions (infeasible grain match, join compromises, missing material)
// are attached to the breakdown as warnings instead.
func (e *Engine) PricePiece(p model.PieceSpec, ctx *SlabAllocationContext) (PieceBreakdown, error) {
	bd := PieceBreakdown{PieceID: p.ID}

	if err := e.Rates.Validate(); err != nil {
		return bd, err
	}

	g, err := p.Geometry()
	if err != nil {
		return bd, err
	}
	runs := model.MeasureEdges(p, g)

	bd.Fabrication, err = e.fabricationItems(p, g, runs)
	if err != nil {
		return bd, err
	}

	ob := e.resolveOversize(g)
	if p.RequiresGrainMatch && p.ShapeType != model.ShapeRectangle {
		if ob == nil {
			ob = &OversizeBreakdown{JoinRate: e.Rates.JoinRate}
		}
		e.evaluateGrainMatch(p, ob, bd.Fabrication.Subtotal())
	}
	bd.Oversize = ob

	if p.MaterialID == "" {
		bd.Warnings = append(bd.Warnings, Warning{
			Code:    WarnNoMaterial,
			Message: "no material assigned; the breakdown excludes the material component",
		})
	} else {
		mat := e.Catalog.FindMaterial(p.MaterialID)
		if mat == nil {
			return bd, &model.RateError{Missing: "material " + p.MaterialID}
		}
		bd.Materials = e.materialBreakdown(p, g, mat, ctx)
	}

	if ob != nil {
		bd.Warnings = append(bd.Warnings, ob.Warnings...)
	}

	// Components are already rounded to cents; the final rounding only
	// corrects floating-point drift in the sum.
	total := bd.Fabrication.Total() + bd.Oversize.Total()
	if bd.Materials != nil {
		total += bd.Materials.Total
	}
	bd.PieceTotal = roundCents(total)

	return bd, nil
}

// PieceResult pairs one piece with its breakdown or its failure. One bad
// piece never prevents the rest of the quote from pricing.
type PieceResult struct {
	PieceID   string
	Label     string
	Breakdown *PieceBreakdown
	Err       error
}

// QuoteResult is the priced quote: per-piece results in input order plus the
// sum of all successfully priced pieces.
type QuoteResult struct {
	Pieces []PieceResult
	Total  float64
}

// PriceQuote prices every piece of the quote. Slab groups are resolved as a
// unit: each group's member areas are snapshotted once before any member is
// priced, so no piece sees a partial view of its siblings.
func (e *Engine) PriceQuote(q model.Quote) QuoteResult {
	result := QuoteResult{Pieces: make([]PieceResult, len(q.Pieces))}

	// Snapshot geometry for every piece up front.
	areas := make([]float64, len(q.Pieces))
	geomErr := make([]error, len(q.Pieces))
	for i, p := range q.Pieces {
		g, err := p.Geometry()
		if err != nil {
			geomErr[i] = err
			continue
		}
		areas[i] = g.TotalAreaSqm
	}

	// Build one allocation context per slab group and per-slab material.
	ctxFor := make(map[int]*SlabAllocationContext)
	for _, members := range q.SlabGroups() {
		byMaterial := make(map[string]*SlabAllocationContext)
		for _, i := range members {
			p := q.Pieces[i]
			if geomErr[i] != nil || p.MaterialID == "" {
				continue
			}
			mat := e.Catalog.FindMaterial(p.MaterialID)
			if mat == nil || mat.Basis != model.PerSlab {
				continue
			}
			ctx := byMaterial[p.MaterialID]
			if ctx == nil {
				ctx = &SlabAllocationContext{}
				byMaterial[p.MaterialID] = ctx
			}
			ctx.Pieces = append(ctx.Pieces, SlabPieceArea{PieceID: p.ID, AreaSqm: areas[i]})
			ctxFor[i] = ctx
		}
	}

	for i, p := range q.Pieces {
		pr := PieceResult{PieceID: p.ID, Label: p.Label}
		if geomErr[i] != nil {
			pr.Err = geomErr[i]
			result.Pieces[i] = pr
			continue
		}
		bd, err := e.PricePiece(p, ctxFor[i])
		if err != nil {
			pr.Err = err
		} else {
			pr.Breakdown = &bd
			result.Total += bd.PieceTotal
		}
		result.Pieces[i] = pr
	}

	result.Total = roundCents(result.Total)
	return result
}

// roundCents rounds to currency minor units.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
