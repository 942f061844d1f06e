package pricing

import (
	"testing"

	"github.com/stonefab/benchquote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOversize_ExactLimitStaysNormal(t *testing.T) {
	e := testEngine()

	p := model.NewPiece("At limit", 3200, 1600, 20)
	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)
	assert.Nil(t, bd.Oversize, "a piece exactly at the limit is not oversize")

	p = model.NewPiece("One over", 3201, 1600, 20)
	bd, err = e.PricePiece(p, nil)
	require.NoError(t, err)
	require.NotNil(t, bd.Oversize)
	assert.True(t, bd.Oversize.IsOversize)
}

func TestOversize_LengthwiseJoin(t *testing.T) {
	e := testEngine()

	p := model.NewPiece("Long bench", 3800, 600, 20)
	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	ob := bd.Oversize
	require.NotNil(t, ob)
	assert.Equal(t, JoinLengthwise, ob.Strategy)
	assert.Equal(t, 1, ob.JoinCount)
	require.Len(t, ob.Segments, 2)
	assert.InDelta(t, 1900, ob.Segments[0].LengthMm, 0.001)
	assert.InDelta(t, 600, ob.Segments[0].WidthMm, 0.001)

	// The join line runs across the width.
	assert.InDelta(t, 0.6, ob.JoinLengthLm, 0.001)
	assert.InDelta(t, 0.6*95.0, ob.JoinCost, 0.001)
}

func TestOversize_WidthwiseJoin(t *testing.T) {
	e := testEngine()

	p := model.NewPiece("Deep island", 3000, 2000, 20)
	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	ob := bd.Oversize
	require.NotNil(t, ob)
	assert.Equal(t, JoinWidthwise, ob.Strategy)
	assert.Equal(t, 1, ob.JoinCount)
	assert.InDelta(t, 3.0, ob.JoinLengthLm, 0.001, "widthwise join runs across the length")
}

func TestOversize_MultiJoin(t *testing.T) {
	e := testEngine()

	p := model.NewPiece("Huge", 6500, 3300, 20)
	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	ob := bd.Oversize
	require.NotNil(t, ob)
	assert.Equal(t, JoinMulti, ob.Strategy)
	// 3 length segments x 3 width segments, (3-1)+(3-1) join lines.
	assert.Len(t, ob.Segments, 9)
	assert.Equal(t, 4, ob.JoinCount)

	found := false
	for _, w := range ob.Warnings {
		if w.Code == WarnJoinPlacement {
			found = true
		}
	}
	assert.True(t, found, "multi-join should carry a placement warning")
	// Warnings surface on the breakdown too.
	assert.NotEmpty(t, bd.Warnings)
}

func TestOversize_ShortSegmentWarning(t *testing.T) {
	rates := testRates()
	rates.MinSegmentLengthMm = 2000 // force the split below the minimum
	e := New(rates, testCatalog())

	p := model.NewPiece("Awkward", 3900, 600, 20)
	bd, err := e.PricePiece(p, nil)
	require.NoError(t, err)

	ob := bd.Oversize
	require.NotNil(t, ob)
	require.NotEmpty(t, ob.Warnings)
	assert.Equal(t, WarnJoinPlacement, ob.Warnings[0].Code)
}
