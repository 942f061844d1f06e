package pricing

import (
	"fmt"

	"github.com/stonefab/benchquote/internal/model"
)

// grainSpans returns the combined leg run for each corner join that grain
// must flow across. Rectangles have no corner joins and return nil.
func grainSpans(p model.PieceSpec) []float64 {
	if p.Shape == nil {
		return nil
	}
	switch p.ShapeType {
	case model.ShapeL:
		if p.Shape.L == nil {
			return nil
		}
		return []float64{p.Shape.L.Leg1.LengthMm + p.Shape.L.Leg2.LengthMm}
	case model.ShapeU:
		if p.Shape.U == nil {
			return nil
		}
		u := p.Shape.U
		return []float64{
			u.LeftLeg.LengthMm + u.Back.LengthMm,
			u.Back.LengthMm + u.RightLeg.LengthMm,
		}
	}
	return nil
}

// evaluateGrainMatch fills the grain-matching fields of the joinery block.
// Matching is feasible when every corner join's combined leg run can be cut
// with continuous grain from a single slab. When feasible and requested, the
// surcharge applies against the fabrication subtotal; when infeasible the
// surcharge is withheld and a warning carries the decision to the caller.
func (e *Engine) evaluateGrainMatch(p model.PieceSpec, ob *OversizeBreakdown, fabricationSubtotal float64) {
	ob.GrainMatchRequested = true
	ob.SurchargeRate = e.Rates.GrainMatchSurchargePercent
	ob.FabricationSubtotal = roundCents(fabricationSubtotal)

	feasible := true
	var widest float64
	for _, span := range grainSpans(p) {
		if span > e.Rates.MaxSlabLengthMm {
			feasible = false
		}
		if span > widest {
			widest = span
		}
	}
	ob.GrainMatchFeasible = feasible

	if !feasible {
		ob.Warnings = append(ob.Warnings, Warning{
			Code: WarnGrainMatchInfeasible,
			Message: fmt.Sprintf("grain matching needs %.0fmm of continuous grain but the largest workable slab is %.0fmm; surcharge withheld pending a decision",
				widest, e.Rates.MaxSlabLengthMm),
		})
		return
	}

	ob.Surcharge = roundCents(ob.FabricationSubtotal * ob.SurchargeRate / 100.0)
}
