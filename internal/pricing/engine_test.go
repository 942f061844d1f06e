package pricing

import (
	"errors"
	"testing"

	"github.com/stonefab/benchquote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() model.Catalog {
	return model.Catalog{
		EdgeProfiles: []model.EdgeProfile{
			{ID: "pencil", Name: "Pencil Round", Category: "Standard", BaseRate: 18.00},
			{ID: "bullnose", Name: "Bullnose", Category: "Premium", BaseRate: 32.00},
		},
		CutoutTypes: []model.CutoutType{
			{ID: "sink", Name: "Undermount Sink", BaseRate: 180.00},
			{ID: "taphole", Name: "Tap Hole", BaseRate: 25.00},
		},
		Materials: []model.MaterialCatalogEntry{
			{ID: "stone20", Name: "Engineered Stone 20mm", Basis: model.PerSqm, PricePerSqm: 450.00, WasteFactorPercent: 10},
			{ID: "granite", Name: "Granite Slab", Basis: model.PerSlab, PricePerSlab: 1850.00},
		},
	}
}

func testRates() model.RateConfig {
	return model.RateConfig{
		CuttingBasis:               model.CutPerLm,
		CuttingRate:                12.00,
		PolishingRate:              18.00,
		LaminationRate:             38.00,
		JoinRate:                   95.00,
		InstallationRate:           65.00,
		BaseSlabThicknessMm:        20,
		MaxSlabLengthMm:            3200,
		MaxSlabWidthMm:             1600,
		MinSegmentLengthMm:         300,
		GrainMatchSurchargePercent: 15,
	}
}

func testEngine() *Engine {
	return New(testRates(), testCatalog())
}

// Benchtop 3200x600, 20mm, Pencil Round on the long side, per-sqm stone
// with 10% waste. Pins the worked example end to end.
func TestPricePiece_RectangleWorkedExample(t *testing.T) {
	e := testEngine()

	p := model.NewPiece("Bench", 3200, 600, 20)
	p.Edges.Top = "pencil"
	p.MaterialID = "stone20"

	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	// Edge item: 3.2 Lm x $18 = $57.60
	require.Len(t, bd.Fabrication.Edges, 1)
	assert.InDelta(t, 57.60, bd.Fabrication.Edges[0].Total, 0.001)
	assert.Equal(t, model.EdgeTop, bd.Fabrication.Edges[0].EdgeID)

	// Polishing on the single finished edge: 3.2 Lm x $18
	assert.InDelta(t, 57.60, bd.Fabrication.Polishing.Total, 0.001)

	// Cutting on the full perimeter: 7.6 Lm x $12
	assert.InDelta(t, 91.20, bd.Fabrication.Cutting.Total, 0.001)

	// 20mm on a 20mm base: lamination channel present with zero total.
	assert.Zero(t, bd.Fabrication.Lamination.Total)

	// Installation: 1.92 Sqm x $65
	assert.InDelta(t, 124.80, bd.Fabrication.Installation.Total, 0.001)

	// Material: 3.2 * 0.6 * 1.10 * 450 = $950.40
	require.NotNil(t, bd.Materials)
	assert.InDelta(t, 950.40, bd.Materials.Total, 0.001)

	assert.Nil(t, bd.Oversize, "in-limits rectangle has no joinery block")
	assert.InDelta(t, 91.20+57.60+57.60+124.80+950.40, bd.PieceTotal, 0.001)
	assert.Empty(t, bd.Warnings)
}

func TestPricePiece_LineItemFormulasReconstructable(t *testing.T) {
	e := testEngine()
	p := model.NewPiece("Bench", 3200, 600, 20)
	p.Edges.Top = "pencil"

	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	item := bd.Fabrication.Edges[0]
	assert.Equal(t, "3.20 Lm x $18.00/Lm = $57.60", item.Formula())
	assert.Equal(t, "Lm", bd.Fabrication.Cutting.Unit)
	assert.NotZero(t, bd.Fabrication.Cutting.Rate)
}

func TestPricePiece_CutoutsAndLamination(t *testing.T) {
	e := testEngine()

	p := model.NewPiece("Island", 2400, 1200, 40) // 40mm over a 20mm base: one layer
	p.Edges.Top = "bullnose"
	p.Edges.Bottom = "bullnose"
	p.Cutouts = []model.Cutout{
		{CutoutTypeID: "sink", Quantity: 1},
		{CutoutTypeID: "taphole", Quantity: 2},
		{CutoutTypeID: "sink", Quantity: 0}, // zero-quantity entries are omitted
	}

	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	require.Len(t, bd.Fabrication.Cutouts, 2)
	assert.InDelta(t, 180.00, bd.Fabrication.Cutouts[0].Total, 0.001)
	assert.InDelta(t, 50.00, bd.Fabrication.Cutouts[1].Total, 0.001)

	// Finished edges: 2 x 2.4 Lm. One lamination layer at $38/Lm.
	assert.InDelta(t, 4.8*38.0, bd.Fabrication.Lamination.Total, 0.001)
}

func TestPricePiece_MissingRatesAreFatal(t *testing.T) {
	catalog := testCatalog()

	rates := testRates()
	rates.PolishingRate = 0
	_, err := New(rates, catalog).PricePiece(model.NewPiece("P", 1000, 600, 20), nil)
	var rateErr *model.RateError
	require.ErrorAs(t, err, &rateErr)

	// Unknown edge profile id must not silently price as zero.
	p := model.NewPiece("P", 1000, 600, 20)
	p.Edges.Top = "no-such-profile"
	_, err = New(testRates(), catalog).PricePiece(p, nil)
	require.ErrorAs(t, err, &rateErr)

	// Unknown cutout type likewise.
	p = model.NewPiece("P", 1000, 600, 20)
	p.Cutouts = []model.Cutout{{CutoutTypeID: "no-such-cutout", Quantity: 1}}
	_, err = New(testRates(), catalog).PricePiece(p, nil)
	require.ErrorAs(t, err, &rateErr)
}

func TestPricePiece_NoMaterialIsWarningNotError(t *testing.T) {
	e := testEngine()
	p := model.NewPiece("Bench", 3200, 600, 20)
	p.Edges.Top = "pencil"

	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	assert.Nil(t, bd.Materials)
	require.Len(t, bd.Warnings, 1)
	assert.Equal(t, WarnNoMaterial, bd.Warnings[0].Code)

	// pieceTotal simply excludes the material component.
	assert.InDelta(t, bd.Fabrication.Total(), bd.PieceTotal, 0.001)
}

func TestPricePiece_InvalidGeometryAborts(t *testing.T) {
	e := testEngine()
	p := model.NewPiece("Bad", 0, 0, 20)
	p.ShapeType = model.ShapeL // declared L-shape with no legs

	_, err := e.PricePiece(p, nil)
	var geomErr *model.GeometryError
	require.ErrorAs(t, err, &geomErr)
}

func TestPricePiece_Idempotent(t *testing.T) {
	e := testEngine()

	// Exercise the joinery path too: oversize L-shape with grain match.
	p := model.NewPiece("Corner", 0, 0, 40)
	p.ShapeType = model.ShapeL
	p.Shape = &model.ShapeConfig{
		L: &model.LShapeConfig{
			Leg1: model.Leg{LengthMm: 3600, WidthMm: 600},
			Leg2: model.Leg{LengthMm: 1800, WidthMm: 600},
		},
		Edges: map[model.EdgeID]string{model.EdgeInnerBack: "pencil"},
	}
	p.RequiresGrainMatch = true
	p.MaterialID = "granite"
	g, err := p.Geometry()
	require.NoError(t, err)
	p.SyncBounding(g)

	first, err := e.PricePiece(p, nil)
	require.NoError(t, err)
	second, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce identical output")
}

func TestPriceQuote_IsolatesBadPieces(t *testing.T) {
	e := testEngine()

	good := model.NewPiece("Good", 2000, 600, 20)
	good.MaterialID = "stone20"
	bad := model.NewPiece("Bad", 0, 0, 20)
	bad.ShapeType = model.ShapeU // no legs

	q := model.NewQuote("Kitchen")
	q.Catalog = testCatalog()
	q.Rates = testRates()
	q.Pieces = []model.PieceSpec{good, bad}

	result := e.PriceQuote(q)
	require.Len(t, result.Pieces, 2)

	require.NotNil(t, result.Pieces[0].Breakdown)
	require.Error(t, result.Pieces[1].Err)
	var geomErr *model.GeometryError
	assert.True(t, errors.As(result.Pieces[1].Err, &geomErr))

	assert.InDelta(t, result.Pieces[0].Breakdown.PieceTotal, result.Total, 0.001)
}

func TestPriceQuote_SharedSlabGroup(t *testing.T) {
	e := testEngine()

	a := model.NewPiece("Bench A", 3200, 600, 20)
	a.MaterialID = "granite"
	a.SlabGroup = "slab-1"
	b := model.NewPiece("Bench B", 1800, 600, 20)
	b.MaterialID = "granite"
	b.SlabGroup = "slab-1"

	q := model.NewQuote("Kitchen")
	q.Catalog = testCatalog()
	q.Rates = testRates()
	q.Pieces = []model.PieceSpec{a, b}

	result := e.PriceQuote(q)
	require.NoError(t, result.Pieces[0].Err)
	require.NoError(t, result.Pieces[1].Err)

	ma := result.Pieces[0].Breakdown.Materials
	mb := result.Pieces[1].Breakdown.Materials
	require.NotNil(t, ma)
	require.NotNil(t, mb)

	// 1.92 + 1.08 = 3.0 sqm on a 5.12 sqm slab: one slab, 64% / 36%.
	assert.Equal(t, 1, ma.SlabCount)
	assert.InDelta(t, 64.0, ma.SharePercent, 0.001)
	assert.InDelta(t, 36.0, mb.SharePercent, 0.001)

	// Group totals reproduce the whole slab cost within a cent.
	assert.InDelta(t, 1850.00, ma.Total+mb.Total, 0.01)
}
