package pricing

import (
	"fmt"
	"math"

	"github.com/stonefab/benchquote/internal/model"
)

// resolveOversize checks the piece's bounding box against the workable slab
// limits and, when exceeded, determines the join strategy, segment geometry,
// and join pricing. A piece exactly at the limit is not oversize; one
// millimetre over is. Returns nil when the piece fits on a single slab.
func (e *Engine) resolveOversize(g model.ShapeGeometry) *OversizeBreakdown {
	overLength := g.BoundingLengthMm > e.Rates.MaxSlabLengthMm
	overWidth := g.BoundingWidthMm > e.Rates.MaxSlabWidthMm
	if !overLength && !overWidth {
		return nil
	}

	ob := &OversizeBreakdown{
		IsOversize: true,
		JoinRate:   e.Rates.JoinRate,
	}

	lengthSegs, widthSegs := 1, 1
	if overLength {
		lengthSegs = int(math.Ceil(g.BoundingLengthMm / e.Rates.MaxSlabLengthMm))
	}
	if overWidth {
		widthSegs = int(math.Ceil(g.BoundingWidthMm / e.Rates.MaxSlabWidthMm))
	}

	switch {
	case overLength && overWidth:
		ob.Strategy = JoinMulti
	case overLength:
		ob.Strategy = JoinLengthwise
	default:
		ob.Strategy = JoinWidthwise
	}

	segLength := g.BoundingLengthMm / float64(lengthSegs)
	segWidth := g.BoundingWidthMm / float64(widthSegs)
	for i := 0; i < lengthSegs*widthSegs; i++ {
		ob.Segments = append(ob.Segments, SlabSegment{LengthMm: segLength, WidthMm: segWidth})
	}

	// Each lengthwise join line runs across the width; each widthwise join
	// line runs across the length.
	ob.JoinCount = (lengthSegs - 1) + (widthSegs - 1)
	joinLengthMm := float64(lengthSegs-1)*g.BoundingWidthMm + float64(widthSegs-1)*g.BoundingLengthMm
	ob.JoinLengthLm = joinLengthMm / 1000.0
	ob.JoinCost = roundCents(ob.JoinLengthLm * ob.JoinRate)

	if ob.Strategy == JoinMulti {
		ob.Warnings = append(ob.Warnings, Warning{
			Code: WarnJoinPlacement,
			Message: fmt.Sprintf("both dimensions exceed slab limits; %d segments with joins in both directions",
				len(ob.Segments)),
		})
	}
	if min := e.Rates.MinSegmentLengthMm; min > 0 && (segLength < min || segWidth < min) {
		ob.Warnings = append(ob.Warnings, Warning{
			Code: WarnJoinPlacement,
			Message: fmt.Sprintf("equal split yields a %.0fx%.0fmm segment below the %.0fmm workable minimum; join placement will need manual adjustment",
				segLength, segWidth, min),
		})
	}

	return ob
}
