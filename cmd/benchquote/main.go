// BenchQuote — Stone Benchtop Quoting Engine
//
// Prices benchtop piece lists: shape geometry, edge profiles, cutouts,
// oversize joins, grain matching, and material allocation, with PDF, label,
// workbook, and DXF export.
//
// Build:
//   go build -o benchquote ./cmd/benchquote
//
// Usage:
//   benchquote -quote kitchen.json
//   benchquote -quote kitchen.json -pdf quote.pdf -labels labels.pdf
//   benchquote -import pieces.csv -name "Kitchen" -save
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stonefab/benchquote/internal/export"
	"github.com/stonefab/benchquote/internal/importer"
	"github.com/stonefab/benchquote/internal/model"
	"github.com/stonefab/benchquote/internal/pricing"
	"github.com/stonefab/benchquote/internal/project"
)

func main() {
	quotePath := flag.String("quote", "", "path to a saved quote JSON file")
	importPath := flag.String("import", "", "build a quote from a CSV, XLSX, or DXF piece list")
	name := flag.String("name", "Imported Quote", "quote name when importing")
	save := flag.Bool("save", false, "save the quote to the default quotes directory")
	pdfPath := flag.String("pdf", "", "write the customer quote PDF to this path")
	labelsPath := flag.String("labels", "", "write QR piece labels PDF to this path")
	xlsxPath := flag.String("xlsx", "", "write the manufacturing workbook to this path")
	dxfPath := flag.String("dxf", "", "write piece outlines as DXF to this path")
	flag.Parse()

	if err := run(*quotePath, *importPath, *name, *save, *pdfPath, *labelsPath, *xlsxPath, *dxfPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(quotePath, importPath, name string, save bool, pdfPath, labelsPath, xlsxPath, dxfPath string) error {
	var q model.Quote

	switch {
	case quotePath != "" && importPath != "":
		return fmt.Errorf("use either -quote or -import, not both")
	case quotePath != "":
		var err error
		q, err = project.LoadQuote(quotePath)
		if err != nil {
			return err
		}
	case importPath != "":
		var err error
		q, err = importQuote(importPath, name)
		if err != nil {
			return err
		}
	default:
		flag.Usage()
		return fmt.Errorf("a quote is required: pass -quote or -import")
	}

	engine := pricing.New(q.Rates, q.Catalog)
	result := engine.PriceQuote(q)
	printResult(os.Stdout, q, result)

	if save {
		path, err := project.SaveQuoteToDefault(q)
		if err != nil {
			return err
		}
		fmt.Println("saved quote to", path)

		settings, err := project.LoadDefaultSettings()
		if err == nil {
			settings.AddRecentQuote(path)
			if err := project.SaveDefaultSettings(settings); err != nil {
				fmt.Fprintln(os.Stderr, "warning: cannot update recent quotes:", err)
			}
		}
	}

	if pdfPath != "" {
		if err := export.ExportQuotePDF(pdfPath, q, result); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		fmt.Println("wrote", pdfPath)
	}
	if labelsPath != "" {
		if err := export.ExportLabels(labelsPath, q); err != nil {
			return fmt.Errorf("labels export: %w", err)
		}
		fmt.Println("wrote", labelsPath)
	}
	if xlsxPath != "" {
		if err := export.ExportWorkbook(xlsxPath, q, result); err != nil {
			return fmt.Errorf("workbook export: %w", err)
		}
		fmt.Println("wrote", xlsxPath)
	}
	if dxfPath != "" {
		if err := export.ExportDXF(dxfPath, q); err != nil {
			return fmt.Errorf("dxf export: %w", err)
		}
		fmt.Println("wrote", dxfPath)
	}

	return nil
}

// importQuote builds a new quote from a piece-list file, using the saved
// workshop settings for the catalog and rates.
func importQuote(path, name string) (model.Quote, error) {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		result = importer.ImportCSV(path)
	case ".xlsx", ".xls":
		result = importer.ImportExcel(path)
	case ".dxf":
		result = importer.ImportDXF(path)
	default:
		return model.Quote{}, fmt.Errorf("unsupported import format %q", filepath.Ext(path))
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if len(result.Errors) > 0 {
		return model.Quote{}, fmt.Errorf("import failed: %s", strings.Join(result.Errors, "; "))
	}
	if len(result.Pieces) == 0 {
		return model.Quote{}, fmt.Errorf("no pieces imported from %s", path)
	}

	q := model.NewQuote(name)
	if settings, err := project.LoadDefaultSettings(); err == nil {
		q.Catalog = settings.Catalog
		q.Rates = settings.Rates
	}
	q.Pieces = append(q.Pieces, result.Pieces...)

	// Imported material names are matched against the catalog by ID then by
	// name; unmatched names are cleared so the piece prices with a
	// no-material warning instead of failing.
	for i := range q.Pieces {
		mat := q.Pieces[i].MaterialID
		if mat == "" || q.Catalog.FindMaterial(mat) != nil {
			continue
		}
		if m := q.Catalog.FindMaterialByName(mat); m != nil {
			q.Pieces[i].MaterialID = m.ID
			continue
		}
		fmt.Fprintf(os.Stderr, "warning: material %q not in catalog, piece %q left unassigned\n", mat, q.Pieces[i].Label)
		q.Pieces[i].MaterialID = ""
	}

	return q, nil
}
