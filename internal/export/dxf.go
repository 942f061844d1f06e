package export

import (
	"fmt"

	"github.com/stonefab/benchquote/internal/model"
	"github.com/yofu/dxf"
)

// pieceSpacingMm is the gap between piece outlines in the exported drawing.
const pieceSpacingMm = 200.0

// ExportDXF writes the plan-view outlines of every piece in the quote to a
// DXF file for CNC programming. Pieces are laid out left to right along the
// X axis with a fixed gap; each outline is a closed chain of LINE entities,
// the same form the importer reads back.
func ExportDXF(path string, q model.Quote) error {
	if len(q.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	d := dxf.NewDrawing()

	offsetX := 0.0
	drawn := 0
	for _, p := range q.Pieces {
		g, err := p.Geometry()
		if err != nil {
			return fmt.Errorf("piece %q: %w", p.Label, err)
		}
		if len(g.Outline) < 3 {
			continue
		}

		outline := g.Outline.Translate(offsetX, 0)
		for i := range outline {
			a := outline[i]
			b := outline[(i+1)%len(outline)]
			if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
				return fmt.Errorf("piece %q: %w", p.Label, err)
			}
		}

		offsetX += g.BoundingLengthMm + pieceSpacingMm
		drawn++
	}

	if drawn == 0 {
		return fmt.Errorf("no drawable outlines in quote")
	}

	return d.SaveAs(path)
}

// OutlineForPiece resolves and normalizes a single piece outline so its
// bounding box starts at the origin. Exposed for callers that embed piece
// drawings elsewhere.
func OutlineForPiece(p model.PieceSpec) (model.Outline, error) {
	g, err := p.Geometry()
	if err != nil {
		return nil, err
	}
	if len(g.Outline) < 3 {
		return nil, fmt.Errorf("piece %q has no drawable outline", p.Label)
	}
	min, _ := g.Outline.BoundingBox()
	return g.Outline.Translate(-min.X, -min.Y), nil
}
