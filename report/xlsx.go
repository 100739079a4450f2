package report

import (
	"io"
	"os"
	"strings"

	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/matrix"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	// maxSheetName is the longest sheet name spreadsheet applications accept.
	maxSheetName = 31
)

// writeXLSX writes a single sheet workbook. Line breaks inside cells become real line breaks and
// every cell wraps its text.
func writeXLSX(w io.Writer, table Table, sheet string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = defaultSheet
	}
	if runes := []rune(sheet); len(runes) > maxSheetName {
		sheet = string(runes[:maxSheetName])
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return errors.Wrap(err, "name sheet")
		}
	}

	lines := append([][]string{table.Header}, table.Rows...)
	columns := len(table.Header)
	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(line))
		for j, value := range line {
			values[j] = strings.ReplaceAll(value, matrix.LineBreak, "\n")
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "write line %d", i+1)
		}
		if len(line) > columns {
			columns = len(line)
		}
	}
	if columns == 0 {
		return f.Write(w)
	}

	last, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", last, 40); err != nil {
		return errors.Wrap(err, "set column width")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return errors.Wrap(err, "header style")
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return errors.Wrap(err, "style header")
	}
	if len(table.Rows) > 0 {
		bodyStyle, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		})
		if err != nil {
			return errors.Wrap(err, "body style")
		}
		end, err := excelize.CoordinatesToCellName(columns, len(lines))
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A2", end, bodyStyle); err != nil {
			return errors.Wrap(err, "style body")
		}
	}
	return f.Write(w)
}

// readXLSX returns the lines of the first sheet with line breaks inside cells turned back into
// `<br>`.
func readXLSX(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, diagnostics.ConfigNotFound(path, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, diagnostics.ConfigMalformed(path, 0, "%s", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, diagnostics.ConfigMalformed(path, 0, "%s", err)
	}
	// trailing empty cells are not stored
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	for n, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[n] = row
		for i, value := range row {
			row[i] = strings.ReplaceAll(value, "\n", matrix.LineBreak)
		}
	}
	return rows, nil
}
