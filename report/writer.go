package report

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/logging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options control the output file.
type Options struct {
	// BOM prefixes CSV files with a UTF-8 byte order mark, for spreadsheet applications that
	// otherwise guess the encoding.
	BOM bool
	// SheetName names the worksheet of XLSX files. Empty keeps the default name.
	SheetName string
}

// Write stores the table at path, replacing any existing file. The data is written to a temporary
// file next to the destination first, so the destination is left untouched if anything fails.
func Write(path string, table Table, opts Options) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return diagnostics.IO(path, err)
	}
	defer func() {
		// after a successful rename there is nothing left to remove
		_ = os.Remove(tmp.Name())
	}()

	if err := encode(tmp, table, opts, FormatOf(path)); err != nil {
		_ = tmp.Close()
		return diagnostics.IO(path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return diagnostics.IO(path, err)
	}
	if err := tmp.Close(); err != nil {
		return diagnostics.IO(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return diagnostics.IO(path, err)
	}

	logging.L().Debug("Wrote test specification", zap.String("path", path), zap.Int("rows", len(table.Rows)))
	return nil
}

func encode(w io.Writer, table Table, opts Options, format Format) error {
	if format == FormatXLSX {
		return writeXLSX(w, table, opts.SheetName)
	}
	buffered := bufio.NewWriter(w)
	if err := writeCSV(buffered, table, opts.BOM); err != nil {
		return err
	}
	return errors.Wrap(buffered.Flush(), "flush")
}

// ReadTable reads a CSV file or the first sheet of an XLSX file. The first line is the header.
func ReadTable(path string) (Table, error) {
	var (
		lines [][]string
		err   error
	)
	if FormatOf(path) == FormatXLSX {
		lines, err = readXLSX(path)
	} else {
		lines, err = readCSV(path)
	}
	if err != nil {
		return Table{}, err
	}
	if len(lines) == 0 {
		return Table{}, nil
	}
	return Table{Header: lines[0], Rows: lines[1:]}, nil
}
