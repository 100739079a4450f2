package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/pkg/errors"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// writeCSV writes comma separated lines with every field quoted.
func writeCSV(w io.Writer, table Table, withBOM bool) error {
	if withBOM {
		if _, err := w.Write(bom); err != nil {
			return err
		}
	}
	if err := writeCSVLine(w, table.Header); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writeCSVLine(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVLine(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}

func readCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostics.ConfigNotFound(path, err)
	}
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, bom)))
	reader.FieldsPerRecord = -1
	lines, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, diagnostics.ConfigMalformed(path, parseErr.Line, "%s", parseErr.Err)
		}
		return nil, diagnostics.ConfigMalformed(path, 0, "%s", err)
	}
	return lines, nil
}
