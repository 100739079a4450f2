package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daedaleanai/cobra"
	"github.com/daedaleanai/testspec/config"
	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/locale"
	"github.com/daedaleanai/testspec/report"
	"github.com/daedaleanai/testspec/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Paths: config.PathsConfig{
			Permissions: "../testdata/settings.yml",
			FormItems:   "../testdata/settings.yml",
			Output:      filepath.Join(dir, "output.csv"),
			HTML:        filepath.Join(dir, "output.html"),
		},
		Locale: "en",
		Log:    config.LogConfig{Level: "info"},
	}
}

var en = locale.MustNew("en")

func TestGenerate_WritesCSV(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, generate(cfg, en, generateOptions{function: "customers", display: "index", version: "1.0.0"}))

	table, err := report.ReadTable(cfg.Paths.Output)
	require.NoError(t, err)
	assert.Equal(t, report.Header(en), table.Header)
	require.Len(t, table.Rows, 12)
	assert.Equal(t, "1.0.0", table.Rows[0][6])
	assert.Equal(t, "1. 顧客 does not appear in the menu.", table.Rows[11][5])
}

func TestGenerate_OutputFlagAndXLSX(t *testing.T) {
	cfg := testConfig(t)
	cfg.Report.CollapseConditions = true
	out := filepath.Join(t.TempDir(), "spec.xlsx")
	require.NoError(t, generate(cfg, en, generateOptions{function: "customers", display: "edit", version: "2.0.0", output: out}))

	table, err := report.ReadTable(out)
	require.NoError(t, err)
	require.Len(t, table.Rows, 19)
	assert.Equal(t, "Validation", table.Rows[18][0])

	_, err = os.Stat(cfg.Paths.Output)
	assert.True(t, os.IsNotExist(err), "the configured output is not written")
}

func TestGenerate_LocalizedDisplayName(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, generate(cfg, en, generateOptions{function: " customers ", display: "新規登録", version: "1.0.0"}))

	table, err := report.ReadTable(cfg.Paths.Output)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 17)
}

func TestGenerate_UsageErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		opts    generateOptions
		message string
	}{
		{"no function", generateOptions{display: "index", version: "1.0.0"}, "Please specify a function name (--f)"},
		{"blank function", generateOptions{function: "  ", display: "index", version: "1.0.0"}, "Please specify a function name (--f)"},
		{"no display", generateOptions{function: "customers", version: "1.0.0"}, "Please specify a display name (--d)"},
		{"no version", generateOptions{function: "customers", display: "index"}, "Please specify a version (--v)"},
		{"bad display", generateOptions{function: "customers", display: "delete", version: "1.0.0"}, "Display `delete` is not one of index, new, duplicate, edit or show"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			err := generate(cfg, en, tc.opts)
			require.Error(t, err)
			assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindUsage))
			assert.Equal(t, tc.message, diagnostics.Description(err))

			_, statErr := os.Stat(cfg.Paths.Output)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestGenerate_UnknownFunction(t *testing.T) {
	cfg := testConfig(t)
	err := generate(cfg, en, generateOptions{function: "payments", display: "index", version: "1.0.0"})
	assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindUnknownFunction))
	assert.Equal(t, "Function `payments` is not defined", diagnostics.Description(err))
}

func TestGenerate_NoPlacementWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, generate(cfg, en, generateOptions{function: "audit_logs", display: "index", version: "1.0.0"}))

	_, err := os.Stat(cfg.Paths.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_MalformedPermissionsKeepsOutput(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Paths.Output, []byte("previous\n"), 0o644))
	broken := filepath.Join(t.TempDir(), "permissions.yml")
	require.NoError(t, os.WriteFile(broken, []byte("permissions:\n  admin: [read]\n"), 0o644))
	cfg.Paths.Permissions = broken

	err := generate(cfg, en, generateOptions{function: "customers", display: "index", version: "1.0.0"})
	assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindConfigMalformed))

	data, err := os.ReadFile(cfg.Paths.Output)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))
}

func TestGenerate_MissingPermissionsFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Paths.Permissions = filepath.Join(t.TempDir(), "missing.yml")

	err := generate(cfg, en, generateOptions{function: "customers", display: "index", version: "1.0.0"})
	assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindConfigNotFound))
}

func TestGenerate_SettingsFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Paths.Settings = "../testdata/application.yml"
	require.NoError(t, generate(cfg, en, generateOptions{function: "customers", display: "index", version: "1.0.0"}))

	table, err := report.ReadTable(cfg.Paths.Output)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Administrator", table.Rows[0][1])
	assert.Equal(t, "Logged in to Customer Manager as Administrator.<br>The dashboard is open.", table.Rows[0][2])
}

func TestConvertHTML(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, generate(cfg, en, generateOptions{function: "customers", display: "index", version: "1.0.0"}))

	var out bytes.Buffer
	require.NoError(t, convertHTML(cfg, en, "", "", &out))
	assert.Equal(t, "Converted to "+cfg.Paths.HTML+".\n", out.String())

	html, err := os.ReadFile(cfg.Paths.HTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<title>Test specification</title>")
	assert.Contains(t, string(html), "<th>Expected result</th>")
	assert.Equal(t, 12, strings.Count(string(html), "<td>1.0.0</td>"))
}

func TestConvertHTML_MissingInput(t *testing.T) {
	cfg := testConfig(t)
	err := convertHTML(cfg, en, "", "", &bytes.Buffer{})
	assert.True(t, diagnostics.Is(err, diagnostics.ErrorKindConfigNotFound))
}

func TestDumpSchema(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	require.NoError(t, dumpSchema(cfg, locale.MustNew("ja"), "../schema/testdata/schema.rb", "", &out))
	assert.Contains(t, out.String(), "| name | 顧客名 | VARCHAR(100) | 100 | ○ | ー |  |\n")

	file := filepath.Join(t.TempDir(), "schema.md")
	require.NoError(t, dumpSchema(cfg, locale.MustNew("ja"), "../schema/testdata/schema.rb", file, &bytes.Buffer{}))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(data))
}

func TestShowConfig(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	require.NoError(t, showConfig(&out, cfg, settings.Default(), false))
	assert.Contains(t, out.String(), "locale: en\n")
	assert.Contains(t, out.String(), "\n---\n")
	assert.Contains(t, out.String(), "app_name: 顧客管理システム\n")

	var colored bytes.Buffer
	require.NoError(t, showConfig(&colored, cfg, settings.Default(), true))
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestErrorMessage(t *testing.T) {
	runE := func(cmd *cobra.Command, args []string) error { return nil }

	assert.Equal(t, "Please specify a version (--v)",
		errorMessage(runE, diagnostics.Usage("Please specify a version (--v)")))

	msg := errorMessage(runE, diagnostics.IO("output.csv", os.ErrPermission))
	assert.True(t, strings.HasSuffix(msg, "i/o error: output.csv: permission denied"), msg)
}

func TestCompleteFunction(t *testing.T) {
	chdir(t, t.TempDir())

	completions, directive := completeFunction(generateCmd, nil, "place")
	assert.Equal(t, []string{"places", "place_managers"}, completions)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
