package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/locale"
	"github.com/daedaleanai/testspec/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return NewTable(locale.MustNew("en"), []matrix.Row{
		{
			Section:      "Display",
			Title:        "Administrator",
			Precondition: `Logged in as "admin".<br>The dashboard is open.`,
			Steps:        "1. Click Customers in the left menu.",
			Expected:     "1. The Index screen of Customers is displayed.",
			Version:      "1.0.0",
		},
		{
			Section:  "Validation",
			Title:    "Name",
			Notes:    "a, b",
			Steps:    "1. Leave Name empty.<br>2. Click the Create button.",
			Expected: "1. An input error is shown for Name.",
			Version:  "1.0.0",
		},
	})
}

func TestHeader(t *testing.T) {
	assert.Equal(t,
		[]string{"Section", "Title", "Precondition", "Notes", "Steps", "Expected result", "Version"},
		Header(locale.MustNew("en")))
	assert.Equal(t,
		[]string{"セクション", "タイトル", "前提条件", "備考", "手順", "期待する結果", "対応バージョン"},
		Header(locale.MustNew("ja")))
}

func TestWrite_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, Write(path, sampleTable(), Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Section","Title","Precondition","Notes","Steps","Expected result","Version"`, lines[0])
	assert.Equal(t,
		`"Display","Administrator","Logged in as ""admin"".<br>The dashboard is open.","","1. Click Customers in the left menu.","1. The Index screen of Customers is displayed.","1.0.0"`,
		lines[1])

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), table)
}

func TestWrite_CSVWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, Write(path, sampleTable(), Options{BOM: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "Section", table.Header[0])
}

func TestWrite_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.xlsx")
	require.NoError(t, Write(path, sampleTable(), Options{SheetName: "customers"}))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), table)
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer than the new one\n"+strings.Repeat("x", 4096)), 0o644))

	table := Table{Header: []string{"a"}, Rows: [][]string{{"b"}}}
	require.NoError(t, Write(path, table, Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"a\"\n\"b\"\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "output.csv")
	err := Write(path, sampleTable(), Options{})
	assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindIO))
}

func TestReadTable_Errors(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindConfigNotFound))

	broken := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(broken, []byte("\"a\",\"b\nc"), 0o644))
	_, err = ReadTable(broken)
	assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindConfigMalformed))

	notExcel := filepath.Join(t.TempDir(), "plain.xlsx")
	require.NoError(t, os.WriteFile(notExcel, []byte("a,b\n"), 0o644))
	_, err = ReadTable(notExcel)
	assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindConfigMalformed))
}

func TestRenderHTML(t *testing.T) {
	table := Table{
		Header: []string{"Section", "Steps"},
		Rows:   [][]string{{"<b>Display</b>", "1. Click & wait.<br>2. Done."}},
	}
	var out bytes.Buffer
	require.NoError(t, RenderHTML(&out, "Test specification", table))

	html := out.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Test specification</title>")
	assert.Contains(t, html, "<h1>Test specification</h1>")
	assert.Contains(t, html, "<th>Section</th>")
	assert.Contains(t, html, "<td>&lt;b&gt;Display&lt;/b&gt;</td>")
	assert.Contains(t, html, "<td>1. Click &amp; wait.<br>2. Done.</td>")
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatXLSX, FormatOf("out/spec.XLSX"))
	assert.Equal(t, FormatCSV, FormatOf("output.csv"))
	assert.Equal(t, FormatCSV, FormatOf("output"))
}
