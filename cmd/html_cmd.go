package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/daedaleanai/cobra"
	"github.com/daedaleanai/testspec/config"
	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/locale"
	"github.com/daedaleanai/testspec/logging"
	"github.com/daedaleanai/testspec/report"
	"go.uber.org/zap"
)

var htmlOutput string

var htmlCmd = &cobra.Command{
	Use:   "html [output.csv|output.xlsx]",
	Short: "Converts a test specification to HTML",
	Long:  "Converts a generated test specification to a standalone HTML table",
	Args:  cobra.MaximumNArgs(1),
	RunE:  RunAndHandleError(runHTML),
}

// Registers the html command
func init() {
	htmlCmd.Flags().StringVar(&htmlOutput, "out", "", "HTML file to write (default from the configuration).")
	rootCmd.AddCommand(htmlCmd)
}

func runHTML(command *cobra.Command, args []string) error {
	cfg, texts, err := setupConfiguration()
	if err != nil {
		return err
	}
	input := ""
	if len(args) == 1 {
		input = args[0]
	}
	return convertHTML(cfg, texts, input, htmlOutput, command.OutOrStdout())
}

// convertHTML reads a test specification and writes it as HTML. Empty paths fall back to the
// configured ones. The success message is printed to w.
func convertHTML(cfg *config.Config, texts *locale.Texts, input, output string, w io.Writer) error {
	if input == "" {
		input = cfg.Paths.Output
	}
	if output == "" {
		output = cfg.Paths.HTML
	}

	table, err := report.ReadTable(input)
	if err != nil {
		return err
	}

	of, err := os.Create(output)
	if err != nil {
		return diagnostics.IO(output, err)
	}
	logging.L().Info("Creating "+output, zap.String("input", input), zap.Int("rows", len(table.Rows)))
	if err := report.RenderHTML(of, texts.T(locale.HTMLTitle), table); err != nil {
		of.Close()
		return diagnostics.IO(output, err)
	}
	if err := of.Close(); err != nil {
		return diagnostics.IO(output, err)
	}

	fmt.Fprintln(w, texts.T(locale.ConvertSuccess, output))
	return nil
}
