package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/stonefab/benchquote/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	QuoteID     string  `json:"quote_id"`
	PieceID     string  `json:"piece_id"`
	PieceLabel  string  `json:"label"`
	Shape       string  `json:"shape"`
	LengthMm    float64 `json:"length_mm"`
	WidthMm     float64 `json:"width_mm"`
	ThicknessMm float64 `json:"thickness_mm"`
	MaterialID  string  `json:"material_id,omitempty"`
	SlabGroup   string  `json:"slab_group,omitempty"`
	GrainMatch  bool    `json:"grain_match,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page). Each label cell is approximately 66.7mm x 25.4mm on US Letter.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelsPerPage   = labelCols * 10
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded workshop labels, one per piece.
// Each label carries the piece name, shape, dimensions, and a QR code
// encoding piece metadata as JSON so a slab can be traced back to its quote
// on the saw bench. Labels are laid out on a standard label sheet format
// (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, q model.Quote) error {
	labels := CollectLabelInfos(q)
	if len(labels) == 0 {
		return fmt.Errorf("no pieces to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		piece := q.FindPiece(label.PieceID)
		if err := renderLabel(pdf, x, y, label, piece); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PieceLabel, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, piece *model.PieceSpec) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_" + info.PieceID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Piece label (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	pieceLabel := info.PieceLabel
	if pdf.GetStringWidth(pieceLabel) > textW {
		for len(pieceLabel) > 0 && pdf.GetStringWidth(pieceLabel+"...") > textW {
			pieceLabel = pieceLabel[:len(pieceLabel)-1]
		}
		pieceLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, pieceLabel, "", 1, "L", false, 0, "")

	// Shape and dimensions
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%s %.0f x %.0f x %.0f mm", info.Shape, info.LengthMm, info.WidthMm, info.ThicknessMm)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Material and slab group
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	detail := info.MaterialID
	if info.SlabGroup != "" {
		detail += "  grp:" + info.SlabGroup
	}
	pdf.CellFormat(textW, 3, detail, "", 1, "L", false, 0, "")

	if info.GrainMatch {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "GRAIN MATCH", "", 0, "L", false, 0, "")
	}

	// Plan-view outline in the lower-left corner for non-rectangular pieces
	if piece != nil && piece.ShapeType != model.ShapeRectangle {
		if g, err := piece.Geometry(); err == nil {
			drawOutlineDiagram(pdf, g.Outline, textX, y+labelHeight-9, 12, 7)
		}
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a quote for use in
// testing or alternative export formats.
func CollectLabelInfos(q model.Quote) []LabelInfo {
	var labels []LabelInfo
	for _, p := range q.Pieces {
		labels = append(labels, LabelInfo{
			QuoteID:     q.ID,
			PieceID:     p.ID,
			PieceLabel:  p.Label,
			Shape:       p.ShapeType.String(),
			LengthMm:    p.LengthMm,
			WidthMm:     p.WidthMm,
			ThicknessMm: p.ThicknessMm,
			MaterialID:  p.MaterialID,
			SlabGroup:   p.SlabGroup,
			GrainMatch:  p.RequiresGrainMatch,
		})
	}
	return labels
}
