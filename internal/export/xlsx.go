package export

import (
	"fmt"

	"github.com/stonefab/benchquote/internal/model"
	"github.com/stonefab/benchquote/internal/pricing"
	"github.com/xuri/excelize/v2"
)

// ExportWorkbook writes the manufacturing workbook: a cut list, the edge
// profile schedule, the cutout schedule, and a pricing summary, each on its
// own sheet. This is the document the workshop fabricates from.
func ExportWorkbook(path string, q model.Quote, result pricing.QuoteResult) error {
	if len(q.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeCutListSheet(f, q); err != nil {
		return err
	}
	if err := writeEdgeScheduleSheet(f, q); err != nil {
		return err
	}
	if err := writeCutoutSheet(f, q); err != nil {
		return err
	}
	if err := writeSummarySheet(f, result); err != nil {
		return err
	}

	// The default sheet is replaced by the cut list.
	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex("Cut List"); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.SaveAs(path)
}

// headerStyle creates the bold shaded header style, shared by all sheets.
func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeCutListSheet(f *excelize.File, q model.Quote) error {
	const sheet = "Cut List"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Piece", "Shape", "Length (mm)", "Width (mm)", "Thickness (mm)", "Area (Sqm)", "Material", "Slab Group", "Grain Match"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 26)
	f.SetColWidth(sheet, "B", "I", 14)

	for i, p := range q.Pieces {
		row := i + 2
		area := 0.0
		if g, err := p.Geometry(); err == nil {
			area = g.TotalAreaSqm
		}
		material := p.MaterialID
		if m := q.Catalog.FindMaterial(p.MaterialID); m != nil {
			material = m.Name
		}
		grain := ""
		if p.RequiresGrainMatch {
			grain = "YES"
		}
		values := []any{p.Label, p.ShapeType.String(), p.LengthMm, p.WidthMm, p.ThicknessMm, area, material, p.SlabGroup, grain}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeEdgeScheduleSheet(f *excelize.File, q model.Quote) error {
	const sheet = "Edge Schedule"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Piece", "Edge", "Length (Lm)", "Profile"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 26)
	f.SetColWidth(sheet, "B", "D", 16)

	row := 2
	for _, p := range q.Pieces {
		g, err := p.Geometry()
		if err != nil {
			continue
		}
		for _, run := range model.MeasureEdges(p, g) {
			profile := "raw"
			if run.ProfileID != "" {
				profile = run.ProfileID
				if ep := q.Catalog.FindEdgeProfile(run.ProfileID); ep != nil {
					profile = ep.Name
				}
			}
			values := []any{p.Label, string(run.ID), run.LengthLm(), profile}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}

func writeCutoutSheet(f *excelize.File, q model.Quote) error {
	const sheet = "Cutouts"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Piece", "Cutout", "Quantity"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "B", 26)

	row := 2
	for _, p := range q.Pieces {
		for _, c := range p.Cutouts {
			if c.Quantity <= 0 {
				continue
			}
			name := c.CutoutTypeID
			if ct := q.Catalog.FindCutoutType(c.CutoutTypeID); ct != nil {
				name = ct.Name
			}
			values := []any{p.Label, name, c.Quantity}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result pricing.QuoteResult) error {
	const sheet = "Pricing Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Piece", "Fabrication", "Joins & Surcharge", "Material", "Piece Total", "Status"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 26)
	f.SetColWidth(sheet, "B", "F", 18)

	row := 2
	for _, pr := range result.Pieces {
		if pr.Err != nil {
			values := []any{pr.Label, "", "", "", "", "ERROR: " + pr.Err.Error()}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
			row++
			continue
		}
		bd := pr.Breakdown
		materialTotal := 0.0
		if bd.Materials != nil {
			materialTotal = bd.Materials.Total
		}
		status := "OK"
		if len(bd.Warnings) > 0 {
			status = bd.Warnings[0].Message
		}
		values := []any{pr.Label, bd.Fabrication.Total(), bd.Oversize.Total(), materialTotal, bd.PieceTotal, status}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	totalCell, _ := excelize.CoordinatesToCellName(5, row+1)
	labelCell, _ := excelize.CoordinatesToCellName(1, row+1)
	if err := f.SetCellValue(sheet, labelCell, "QUOTE TOTAL"); err != nil {
		return err
	}
	return f.SetCellValue(sheet, totalCell, result.Total)
}
