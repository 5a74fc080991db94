// Package xlsx converts parsed tables to Excel workbooks.
package xlsx

import (
	"fmt"
	"strconv"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
	"github.com/xuri/excelize/v2"
)

// ToXLSX writes a table to an Excel file with a styled header row and typed
// cell values: integer and real columns become numeric cells, everything
// else stays text. Empty values produce empty cells.
//
// Example:
//
//	err := xlsx.ToXLSX(table, "people.xlsx", "People")
func ToXLSX(t *tabular.Table, filePath, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = t.Name
		if sheetName == "" {
			sheetName = "Sheet1"
		}
	}

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	kinds := t.ColumnKinds()

	for col, name := range t.Header {
		cell := columnName(col+1) + "1"
		f.SetCellValue(sheetName, cell, name)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range t.Rows {
		for col, val := range row {
			if val == "" {
				continue
			}
			cell := columnName(col+1) + strconv.Itoa(rowIdx+2)
			f.SetCellValue(sheetName, cell, excelValue(val, kinds[col]))
		}
	}

	for col := range t.Header {
		name := columnName(col + 1)
		f.SetColWidth(sheetName, name, name, columnWidth(t, col))
	}

	return f.SaveAs(filePath)
}

// excelValue converts a field string to the Go value excelize should store,
// guided by the inferred column kind. Values that fail to parse fall back to
// the raw string.
func excelValue(val string, kind tabular.ColumnKind) any {
	switch kind {
	case tabular.KindInteger:
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	case tabular.KindReal:
		if x, err := strconv.ParseFloat(val, 64); err == nil {
			return x
		}
	}
	return val
}

// columnWidth picks a column width from the header and the first rows,
// clamped to a readable range.
func columnWidth(t *tabular.Table, col int) float64 {
	width := len(t.Header[col])
	for i, row := range t.Rows {
		if i == 100 {
			break
		}
		if col < len(row) && len(row[col]) > width {
			width = len(row[col])
		}
	}

	if width < 10 {
		width = 10
	}
	if width > 50 {
		width = 50
	}
	return float64(width) + 2
}

// columnName converts a column index to an Excel column name (1 → A, 27 → AA).
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}
