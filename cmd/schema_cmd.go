package cmd

import (
	"io"
	"os"

	"github.com/daedaleanai/cobra"
	"github.com/daedaleanai/testspec/config"
	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/locale"
	"github.com/daedaleanai/testspec/schema"
)

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema <schema.rb>",
	Short: "Documents database columns as Markdown",
	Long: `Reads the create_table blocks of a Rails schema file and prints one Markdown table line per
column. Logical column names come from the column_names of the application settings.`,
	Args: cobra.ExactArgs(1),
	RunE: RunAndHandleError(runSchema),
}

// Registers the schema command
func init() {
	schemaCmd.Flags().StringVar(&schemaOutput, "out", "", "Markdown file to write instead of printing.")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(command *cobra.Command, args []string) error {
	cfg, texts, err := setupConfiguration()
	if err != nil {
		return err
	}
	return dumpSchema(cfg, texts, args[0], schemaOutput, command.OutOrStdout())
}

// dumpSchema writes the Markdown column table of a schema file to output, or to w when output is
// empty.
func dumpSchema(cfg *config.Config, texts *locale.Texts, input, output string, w io.Writer) error {
	app, err := loadSettings(cfg.Paths.Settings)
	if err != nil {
		return err
	}
	tables, err := schema.Load(input)
	if err != nil {
		return err
	}
	md := schema.Markdown(tables, app.ColumnNames(), texts)
	if output == "" {
		_, err := io.WriteString(w, md)
		return err
	}
	if err := os.WriteFile(output, []byte(md), 0o644); err != nil {
		return diagnostics.IO(output, err)
	}
	return nil
}
