package cmd

import (
	"strings"

	"github.com/daedaleanai/cobra"
	"github.com/daedaleanai/testspec/config"
	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/formitems"
	"github.com/daedaleanai/testspec/locale"
	"github.com/daedaleanai/testspec/logging"
	"github.com/daedaleanai/testspec/matrix"
	"github.com/daedaleanai/testspec/permissions"
	"github.com/daedaleanai/testspec/report"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type generateOptions struct {
	function string
	display  string
	version  string
	output   string
}

var generateFlags generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate --f <function> --d <display> --v <version>",
	Short: "Generates the test specification of a screen",
	Long: `Generates the test specification of one screen of a function and writes it as CSV,
or as XLSX when the output file ends with .xlsx.

The display is one of index, new, duplicate, edit or show.`,
	Args: cobra.NoArgs,
	RunE: RunAndHandleError(runGenerate),
}

// Registers the generate command
func init() {
	generateCmd.Flags().StringVar(&generateFlags.function, "f", "", "Function to generate the test specification for.")
	generateCmd.Flags().StringVar(&generateFlags.display, "d", "", "Display: index, new, duplicate, edit or show.")
	generateCmd.Flags().StringVar(&generateFlags.version, "v", "", "Version the test cases apply to.")
	generateCmd.Flags().StringVar(&generateFlags.output, "out", "", "Output file (default from the configuration).")
	if err := generateCmd.RegisterFlagCompletionFunc("f", completeFunction); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(command *cobra.Command, args []string) error {
	cfg, texts, err := setupConfiguration()
	if err != nil {
		return err
	}
	return generate(cfg, texts, generateFlags)
}

// generate validates the options, loads the inputs and writes the test specification. A function
// without any placement is not an error: nothing is written.
func generate(cfg *config.Config, texts *locale.Texts, opts generateOptions) error {
	function := strings.TrimSpace(opts.function)
	version := strings.TrimSpace(opts.version)
	switch {
	case function == "":
		return diagnostics.Usage(texts.T(locale.UsageMissingFunction))
	case strings.TrimSpace(opts.display) == "":
		return diagnostics.Usage(texts.T(locale.UsageMissingDisplay))
	case version == "":
		return diagnostics.Usage(texts.T(locale.UsageMissingVersion))
	}
	mode, err := matrix.ParseDisplayMode(opts.display)
	if err != nil {
		return diagnostics.Usage(texts.T(locale.UsageInvalidDisplay, opts.display))
	}

	app, err := loadSettings(cfg.Paths.Settings)
	if err != nil {
		return err
	}
	if _, err := app.Function(function); err != nil {
		return &diagnostics.Error{
			Kind:        diagnostics.ErrorKindUnknownFunction,
			Description: texts.T(locale.UsageUnknownFunction, function),
		}
	}
	perms, err := permissions.Load(cfg.Paths.Permissions)
	if err != nil {
		return errors.Wrap(err, "load permissions")
	}
	fields, err := formitems.Load(cfg.Paths.FormItems)
	if err != nil {
		return errors.Wrap(err, "load form items")
	}

	generator := matrix.NewGenerator(app, perms, fields, texts)
	generator.CollapseConditions = cfg.Report.CollapseConditions
	rows, err := generator.Generate(matrix.Request{Function: function, Mode: mode, Version: version})
	if diagnostics.Is(err, diagnostics.ErrorKindNoPlacement) {
		logging.L().Info("Nothing to generate", zap.String("function", function), zap.String("reason", diagnostics.Description(err)))
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "generate")
	}

	output := opts.output
	if output == "" {
		output = cfg.Paths.Output
	}
	logging.L().Info("Writing "+output, zap.String("function", function), zap.Stringer("display", mode), zap.Int("rows", len(rows)))
	return report.Write(output, report.NewTable(texts, rows), report.Options{BOM: cfg.Report.BOM, SheetName: function})
}
