package pricing

import (
	"fmt"

	"github.com/stonefab/benchquote/internal/model"
)

// fabricationItems computes the itemized fabrication charges from the
// resolved geometry and measured edge runs. Every rate lookup that fails is
// fatal: a silent zero would misprice the quote.
func (e *Engine) fabricationItems(p model.PieceSpec, g model.ShapeGeometry, runs []model.EdgeRun) (FabricationBreakdown, error) {
	var fab FabricationBreakdown

	finishedLm := model.FinishedEdgeLm(runs)

	switch e.Rates.CuttingBasis {
	case model.CutPerSqm:
		fab.Cutting = lineItem("Cutting", g.TotalAreaSqm, "Sqm", e.Rates.CuttingRate)
	default:
		fab.Cutting = lineItem("Cutting", g.PerimeterLm(), "Lm", e.Rates.CuttingRate)
	}

	fab.Polishing = lineItem("Polishing", finishedLm, "Lm", e.Rates.PolishingRate)

	for _, run := range runs {
		if !run.Finished() {
			continue
		}
		profile := e.Catalog.FindEdgeProfile(run.ProfileID)
		if profile == nil {
			return fab, &model.RateError{Missing: fmt.Sprintf("edge profile %q", run.ProfileID)}
		}
		item := lineItem(profile.Name, run.LengthLm(), "Lm", profile.BaseRate)
		if item.Total == 0 {
			continue
		}
		fab.Edges = append(fab.Edges, EdgeLineItem{
			EdgeID:      run.ID,
			ProfileID:   profile.ID,
			ProfileName: profile.Name,
			LineItem:    item,
		})
	}

	for _, cutout := range p.Cutouts {
		if cutout.Quantity <= 0 {
			continue
		}
		ct := e.Catalog.FindCutoutType(cutout.CutoutTypeID)
		if ct == nil {
			return fab, &model.RateError{Missing: fmt.Sprintf("cutout type %q", cutout.CutoutTypeID)}
		}
		item := lineItem(ct.Name, float64(cutout.Quantity), "ea", ct.BaseRate)
		if item.Total == 0 {
			continue
		}
		fab.Cutouts = append(fab.Cutouts, CutoutLineItem{
			CutoutTypeID: ct.ID,
			Name:         ct.Name,
			Count:        cutout.Quantity,
			LineItem:     item,
		})
	}

	layers := p.LaminationLayers(e.Rates.BaseSlabThicknessMm)
	fab.Lamination = LineItem{
		Label:    "Lamination",
		Quantity: finishedLm * float64(layers),
		Unit:     "Lm",
		Rate:     e.Rates.LaminationRate,
		Total:    roundCents(finishedLm * float64(layers) * e.Rates.LaminationRate),
	}

	fab.Installation = lineItem("Installation", g.TotalAreaSqm, "Sqm", e.Rates.InstallationRate)

	return fab, nil
}

// lineItem builds a LineItem with its total rounded to currency precision.
func lineItem(label string, quantity float64, unit string, rate float64) LineItem {
	return LineItem{
		Label:    label,
		Quantity: quantity,
		Unit:     unit,
		Rate:     rate,
		Total:    roundCents(quantity * rate),
	}
}
