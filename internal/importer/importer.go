// Package importer provides CSV and Excel import functionality for piece
// lists. It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/stonefab/benchquote/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Pieces   []model.PieceSpec
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label     int
	Length    int
	Width     int
	Thickness int
	Quantity  int
	Material  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":     {"label", "name", "piece", "piece name", "description", "desc", "item", "bench", "benchtop"},
	"length":    {"length", "len", "l", "x", "long"},
	"width":     {"width", "w", "depth", "d", "y"},
	"thickness": {"thickness", "thick", "t", "z", "mm thick"},
	"quantity":  {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
	"material":  {"material", "mat", "stone", "colour", "color", "slab"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or a
// default positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Label:     -1,
		Length:    -1,
		Width:     -1,
		Thickness: -1,
		Quantity:  -1,
		Material:  -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "label":
						if mapping.Label == -1 {
							mapping.Label = i
						}
					case "length":
						if mapping.Length == -1 {
							mapping.Length = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "thickness":
						if mapping.Thickness == -1 {
							mapping.Thickness = i
						}
					case "quantity":
						if mapping.Quantity == -1 {
							mapping.Quantity = i
						}
					case "material":
						if mapping.Material == -1 {
							mapping.Material = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Label, Length, Width, Thickness, Quantity, Material
		return ColumnMapping{
			Label:     0,
			Length:    1,
			Width:     2,
			Thickness: 3,
			Quantity:  4,
			Material:  5,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts pieces from a row using the given column mapping.
// A row with quantity N produces N identical pieces, each with its own ID.
// Returns the pieces, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, pieceCount int) ([]model.PieceSpec, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Piece %d", pieceCount+1)
	}

	lengthStr := getCell(row, mapping.Length)
	if lengthStr == "" {
		return nil, fmt.Sprintf("%s: Missing length value", rowLabel), ""
	}
	length, err := strconv.ParseFloat(lengthStr, 64)
	if err != nil {
		return nil, fmt.Sprintf("%s: Invalid length '%s'", rowLabel, lengthStr), ""
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return nil, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return nil, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
	}

	if length <= 0 || width <= 0 {
		return nil, fmt.Sprintf("%s: Length and width must be positive", rowLabel), ""
	}

	var warning string

	// Thickness is optional and defaults to 20mm.
	thickness := 20.0
	if thicknessStr := getCell(row, mapping.Thickness); thicknessStr != "" {
		thickness, err = strconv.ParseFloat(thicknessStr, 64)
		if err != nil || thickness <= 0 {
			warning = fmt.Sprintf("%s: Invalid thickness '%s', defaulting to 20mm", rowLabel, thicknessStr)
			thickness = 20.0
		}
	}

	// Quantity is optional and defaults to 1.
	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			return nil, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), warning
		}
	}

	material := getCell(row, mapping.Material)

	pieces := make([]model.PieceSpec, 0, qty)
	for i := 0; i < qty; i++ {
		name := label
		if qty > 1 {
			name = fmt.Sprintf("%s (%d/%d)", label, i+1, qty)
		}
		p := model.NewPiece(name, length, width, thickness)
		p.MaterialID = material
		pieces = append(pieces, p)
	}

	return pieces, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports pieces from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports pieces from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports pieces from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into pieces.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if first row is numeric (positional mapping)
		if len(rows[0]) >= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// First column after label is not numeric - might be an
				// unrecognized header. Skip it but keep positional mapping.
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		pieces, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Pieces))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Pieces = append(result.Pieces, pieces...)
	}

	return result
}
