package pricing

import (
	"testing"

	"github.com/stonefab/benchquote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterial_PerSqmWasteFactor(t *testing.T) {
	e := testEngine()

	p := model.NewPiece("Bench", 3200, 600, 20)
	p.MaterialID = "stone20"

	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	mb := bd.Materials
	require.NotNil(t, mb)
	assert.Equal(t, model.PerSqm, mb.Basis)
	assert.InDelta(t, 1.92, mb.AreaSqm, 1e-9)
	assert.InDelta(t, 1.92*1.10, mb.AdjustedAreaSqm, 1e-9)
	assert.InDelta(t, 950.40, mb.Total, 0.001)
}

func TestMaterial_PerSlabSingleton(t *testing.T) {
	e := testEngine()

	// Without an allocation context the piece is its own slab group.
	p := model.NewPiece("Bench", 3200, 600, 20)
	p.MaterialID = "granite"

	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	mb := bd.Materials
	require.NotNil(t, mb)
	assert.Equal(t, model.PerSlab, mb.Basis)
	assert.Equal(t, 1, mb.SlabCount)
	assert.InDelta(t, 100.0, mb.SharePercent, 1e-9)
	assert.InDelta(t, 1850.00, mb.Total, 0.001)
}

func TestMaterial_SlabGroupInvariant(t *testing.T) {
	e := testEngine()

	// Three pieces sharing slabs: areas 1.92, 1.08, 2.88 = 5.88 sqm,
	// needing two 5.12 sqm slabs.
	specs := []struct {
		length, width float64
	}{
		{3200, 600},
		{1800, 600},
		{2400, 1200},
	}

	ctx := &SlabAllocationContext{}
	pieces := make([]model.PieceSpec, len(specs))
	for i, s := range specs {
		p := model.NewPiece("P", s.length, s.width, 20)
		p.MaterialID = "granite"
		pieces[i] = p
		g, err := p.Geometry()
		require.NoError(t, err)
		ctx.Pieces = append(ctx.Pieces, SlabPieceArea{PieceID: p.ID, AreaSqm: g.TotalAreaSqm})
	}

	var sum float64
	totals := make([]float64, len(pieces))
	for i, p := range pieces {
		bd, err := e.PricePiece(p, ctx)
		require.NoError(t, err)
		require.NotNil(t, bd.Materials)
		assert.Equal(t, 2, bd.Materials.SlabCount)
		totals[i] = bd.Materials.Total
		sum += bd.Materials.Total
	}

	// Shares must reproduce the group's whole-slab cost exactly: the cent
	// lost to per-piece rounding (1208.16 + 679.59 + 1812.24 = 3699.99) is
	// absorbed by the largest piece.
	assert.InDelta(t, 2*1850.00, sum, 0.001)
	assert.InDelta(t, 1208.16, totals[0], 0.001)
	assert.InDelta(t, 679.59, totals[1], 0.001)
	assert.InDelta(t, 1812.25, totals[2], 0.001)
}

func TestMaterial_ShareProportionalToArea(t *testing.T) {
	e := testEngine()

	big := model.NewPiece("Big", 3200, 600, 20)   // 1.92 sqm
	small := model.NewPiece("Small", 800, 600, 20) // 0.48 sqm
	big.MaterialID = "granite"
	small.MaterialID = "granite"

	ctx := &SlabAllocationContext{Pieces: []SlabPieceArea{
		{PieceID: big.ID, AreaSqm: 1.92},
		{PieceID: small.ID, AreaSqm: 0.48},
	}}

	bdBig, err := e.PricePiece(big, ctx)
	require.NoError(t, err)
	bdSmall, err := e.PricePiece(small, ctx)
	require.NoError(t, err)

	assert.InDelta(t, 80.0, bdBig.Materials.SharePercent, 0.001)
	assert.InDelta(t, 20.0, bdSmall.Materials.SharePercent, 0.001)
	assert.InDelta(t, 4.0, bdBig.Materials.Total/bdSmall.Materials.Total, 0.01)
}

func TestMaterial_ZeroAreaPiece(t *testing.T) {
	e := testEngine()

	p := model.NewPiece("Empty", 0, 0, 20)
	p.MaterialID = "stone20"

	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)
	require.NotNil(t, bd.Materials)
	assert.Zero(t, bd.Materials.Total)
}
