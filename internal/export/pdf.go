// Package export renders priced quotes to customer- and workshop-facing
// file formats.
package export

import (
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stonefab/benchquote/internal/model"
	"github.com/stonefab/benchquote/internal/pricing"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 18.0
	marginRight  = 18.0
	marginTop    = 18.0
	marginBottom = 18.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
)

// ExportQuotePDF generates the customer-facing quote document: one section
// per piece with its itemized breakdown and formulas, followed by the quote
// totals. Pieces that failed to price are listed with their error so an
// incomplete quote is never silently shortened.
func ExportQuotePDF(path string, q model.Quote, result pricing.QuoteResult) error {
	if len(result.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	renderQuoteHeader(pdf, q)

	for i, pr := range result.Pieces {
		if pdf.GetY() > pageHeight-90 {
			pdf.AddPage()
		}
		renderPieceSection(pdf, i+1, q.FindPiece(pr.PieceID), pr)
	}

	renderQuoteTotal(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderQuoteHeader draws the quote title, reference, and customer line.
func renderQuoteHeader(pdf *fpdf.Fpdf, q model.Quote) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 10, "Quote: "+q.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetX(marginLeft)
	info := fmt.Sprintf("Reference %s  |  %s", q.ID, time.Now().Format("2 Jan 2006"))
	if q.Customer != "" {
		info = q.Customer + "  |  " + info
	}
	pdf.CellFormat(contentWidth, 5, info, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Line(marginLeft, pdf.GetY()+2, pageWidth-marginRight, pdf.GetY()+2)
	pdf.SetY(pdf.GetY() + 6)
}

// renderPieceSection draws one piece's heading, line items, warnings, and total.
func renderPieceSection(pdf *fpdf.Fpdf, num int, piece *model.PieceSpec, pr pricing.PieceResult) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	title := fmt.Sprintf("%d. %s", num, pr.Label)
	if piece != nil {
		title += fmt.Sprintf("  (%s, %.0f x %.0f x %.0f mm)",
			piece.ShapeType, piece.LengthMm, piece.WidthMm, piece.ThicknessMm)
	}
	pdf.CellFormat(contentWidth, 8, title, "", 1, "L", false, 0, "")

	if pr.Err != nil {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetX(marginLeft + 4)
		pdf.CellFormat(contentWidth-4, rowHeight, "Cannot price: "+pr.Err.Error(), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetY(pdf.GetY() + 3)
		return
	}

	bd := pr.Breakdown
	for _, row := range breakdownRows(bd) {
		renderItemRow(pdf, row.label, row.formula, row.total)
	}

	for _, w := range bd.Warnings {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(180, 110, 0)
		pdf.SetX(marginLeft + 4)
		pdf.CellFormat(contentWidth-4, 4.5, "! "+w.Message, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetX(marginLeft + 4)
	pdf.CellFormat(contentWidth-44, rowHeight, "Piece total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, rowHeight, fmt.Sprintf("$%.2f", bd.PieceTotal), "T", 1, "R", false, 0, "")
	pdf.SetY(pdf.GetY() + 4)
}

// itemRow is one rendered breakdown line.
type itemRow struct {
	label   string
	formula string
	total   float64
}

// breakdownRows flattens a breakdown into display rows: cutting, polishing,
// edges, joins, surcharge, cutouts, lamination, material, installation.
func breakdownRows(bd *pricing.PieceBreakdown) []itemRow {
	fab := bd.Fabrication
	rows := []itemRow{
		{"Cutting", fab.Cutting.Formula(), fab.Cutting.Total},
		{"Polishing", fab.Polishing.Formula(), fab.Polishing.Total},
	}
	for _, e := range fab.Edges {
		rows = append(rows, itemRow{
			fmt.Sprintf("Edge (%s): %s", e.EdgeID, e.ProfileName), e.Formula(), e.Total,
		})
	}
	if ob := bd.Oversize; ob != nil {
		if ob.IsOversize {
			rows = append(rows, itemRow{
				fmt.Sprintf("Slab join (%s, %d joins)", ob.Strategy, ob.JoinCount),
				fmt.Sprintf("%.2f Lm x $%.2f/Lm = $%.2f", ob.JoinLengthLm, ob.JoinRate, ob.JoinCost),
				ob.JoinCost,
			})
		}
		if ob.Surcharge > 0 {
			rows = append(rows, itemRow{
				"Grain matching surcharge",
				fmt.Sprintf("%.0f%% of $%.2f = $%.2f", ob.SurchargeRate, ob.FabricationSubtotal, ob.Surcharge),
				ob.Surcharge,
			})
		}
	}
	for _, c := range fab.Cutouts {
		rows = append(rows, itemRow{"Cutout: " + c.Name, c.Formula(), c.Total})
	}
	rows = append(rows, itemRow{"Lamination", fab.Lamination.Formula(), fab.Lamination.Total})
	if mb := bd.Materials; mb != nil {
		formula := fmt.Sprintf("%.2f Sqm x $%.2f/Sqm = $%.2f", mb.AdjustedAreaSqm, mb.Rate, mb.Total)
		if mb.Basis == model.PerSlab {
			formula = fmt.Sprintf("%d slab(s) x $%.2f x %.1f%% = $%.2f", mb.SlabCount, mb.Rate, mb.SharePercent, mb.Total)
		}
		rows = append(rows, itemRow{"Material: " + mb.Name, formula, mb.Total})
	}
	rows = append(rows, itemRow{"Installation", fab.Installation.Formula(), fab.Installation.Total})
	return rows
}

// renderItemRow draws one label / formula / amount row.
func renderItemRow(pdf *fpdf.Fpdf, label, formula string, total float64) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(marginLeft + 4)
	pdf.CellFormat(58, rowHeight, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(contentWidth-102, rowHeight, formula, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(40, rowHeight, fmt.Sprintf("$%.2f", total), "", 1, "R", false, 0, "")
}

// renderQuoteTotal draws the final totals block and failure note.
func renderQuoteTotal(pdf *fpdf.Fpdf, result pricing.QuoteResult) {
	if pdf.GetY() > pageHeight-50 {
		pdf.AddPage()
	}
	pdf.SetY(pdf.GetY() + 4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Line(marginLeft, pdf.GetY(), pageWidth-marginRight, pdf.GetY())

	priced, failed := 0, 0
	for _, pr := range result.Pieces {
		if pr.Err != nil {
			failed++
		} else {
			priced++
		}
	}

	pdf.SetY(pdf.GetY() + 3)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth-40, 9, fmt.Sprintf("Quote total (%d pieces)", priced), "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 9, fmt.Sprintf("$%.2f", result.Total), "", 1, "R", false, 0, "")

	if failed > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, 5, fmt.Sprintf("%d piece(s) could not be priced and are excluded from the total.", failed), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Generated by BenchQuote - Stone Benchtop Quoting", "", 0, "C", false, 0, "")
}

// drawOutlineDiagram renders a scaled plan-view diagram of a piece outline
// inside the given box. Shared by the labels exporter for shaped pieces.
func drawOutlineDiagram(pdf *fpdf.Fpdf, outline model.Outline, x, y, w, h float64) {
	if len(outline) < 3 {
		return
	}
	min, max := outline.BoundingBox()
	ow := max.X - min.X
	oh := max.Y - min.Y
	if ow <= 0 || oh <= 0 {
		return
	}
	scale := math.Min(w/ow, h/oh)

	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.25)
	for i := range outline {
		a := outline[i]
		b := outline[(i+1)%len(outline)]
		pdf.Line(
			x+(a.X-min.X)*scale, y+(a.Y-min.Y)*scale,
			x+(b.X-min.X)*scale, y+(b.Y-min.Y)*scale,
		)
	}
}
