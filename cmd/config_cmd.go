package cmd

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/daedaleanai/cobra"
	"github.com/daedaleanai/testspec/config"
	"github.com/daedaleanai/testspec/settings"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var configColor bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspects the configuration",
	Long:  "Inspects the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective configuration and application settings",
	Long: `Prints the tool configuration after applying the configuration file and the environment,
followed by the application settings in use, as two YAML documents.`,
	Args: cobra.NoArgs,
	RunE: RunAndHandleError(runConfigShow),
}

// Registers the config commands
func init() {
	configShowCmd.Flags().BoolVar(&configColor, "color", false, "Highlight the output for a 256 color terminal.")
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(command *cobra.Command, args []string) error {
	cfg, _, err := setupConfiguration()
	if err != nil {
		return err
	}
	app, err := loadSettings(cfg.Paths.Settings)
	if err != nil {
		return err
	}
	return showConfig(command.OutOrStdout(), cfg, app, configColor)
}

// showConfig writes the configuration and the settings as YAML, highlighted if color is set.
func showConfig(w io.Writer, cfg *config.Config, app *settings.Settings, color bool) error {
	var doc bytes.Buffer
	encoder := yaml.NewEncoder(&doc)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return errors.Wrap(err, "encode configuration")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, "encode configuration")
	}
	data, err := settings.Marshal(app)
	if err != nil {
		return err
	}
	doc.WriteString("---\n")
	doc.Write(data)

	if !color {
		_, err := w.Write(doc.Bytes())
		return err
	}
	lexer := lexers.Get("yaml")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := lexer.Tokenise(nil, doc.String())
	if err != nil {
		return errors.Wrap(err, "highlight")
	}
	return formatters.Get("terminal256").Format(w, styles.Get("monokai"), iterator)
}
