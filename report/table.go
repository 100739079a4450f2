/*
Reading and writing of test specifications.

A test specification is a table with a fixed header of seven columns followed by one line per test
case. It is stored as CSV, or as an Excel workbook when the file name ends with `.xlsx`, and can be
converted to a standalone HTML page.
*/
package report

import (
	"path/filepath"
	"strings"

	"github.com/daedaleanai/testspec/locale"
	"github.com/daedaleanai/testspec/matrix"
)

// Table is a header line followed by the data lines.
type Table struct {
	Header []string
	Rows   [][]string
}

// Header returns the localized column names.
func Header(texts *locale.Texts) []string {
	return []string{
		texts.T(locale.HeaderSection),
		texts.T(locale.HeaderTitle),
		texts.T(locale.HeaderPrecondition),
		texts.T(locale.HeaderNotes),
		texts.T(locale.HeaderSteps),
		texts.T(locale.HeaderExpected),
		texts.T(locale.HeaderVersion),
	}
}

// NewTable lays out generated rows under the localized header.
func NewTable(texts *locale.Texts, rows []matrix.Row) Table {
	table := Table{Header: Header(texts), Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		table.Rows = append(table.Rows, r.Cells())
	}
	return table
}

// Format is the file format of a test specification.
type Format int

const (
	FormatCSV Format = iota
	FormatXLSX
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}
