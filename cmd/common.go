package cmd

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/daedaleanai/cobra"
	"github.com/daedaleanai/testspec/config"
	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/locale"
	"github.com/daedaleanai/testspec/logging"
	"github.com/daedaleanai/testspec/settings"
	"github.com/daedaleanai/testspec/util"
	"github.com/pkg/errors"
)

var rootCmd = &cobra.Command{
	Use:   config.ProjectName,
	Short: "Testspec generates QA test specifications.",
	Long: `Testspec generates the test specification of one screen of a business web application.
The rows are derived from the user types, the permissions and the form fields of the
application and written as CSV or XLSX, ready to be converted to HTML.`,
	Version: util.Version.String(),
}

var (
	configPath   string
	languageFlag string
	verbose      bool
)

// setupConfiguration loads the tool configuration, applies the command line overrides and sets up
// logging and the message catalog.
func setupConfiguration() (*config.Config, *locale.Texts, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if languageFlag != "" {
		cfg.Locale = languageFlag
	}
	if err := logging.Setup(cfg.Log.Level, verbose); err != nil {
		return nil, nil, diagnostics.ConfigMalformed(configPath, 0, "%s", err)
	}
	texts, err := locale.New(cfg.Locale)
	if err != nil {
		return nil, nil, diagnostics.Usage(err.Error())
	}
	return cfg, texts, nil
}

// loadSettings returns the application settings from path, or the compiled-in ones when path is
// empty.
func loadSettings(path string) (*settings.Settings, error) {
	if path == "" {
		return settings.Default(), nil
	}
	s, err := settings.Load(path)
	return s, errors.Wrap(err, "load application settings")
}

// Provides completions for function identifiers
func completeFunction(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	possibleCompletions := []string{}
	cfg, err := config.Load(configPath)
	if err != nil {
		return possibleCompletions, cobra.ShellCompDirectiveError
	}
	s, err := loadSettings(cfg.Paths.Settings)
	if err != nil {
		return possibleCompletions, cobra.ShellCompDirectiveError
	}
	for _, id := range s.FunctionIDs() {
		if strings.HasPrefix(id, toComplete) {
			possibleCompletions = append(possibleCompletions, id)
		}
	}
	return possibleCompletions, cobra.ShellCompDirectiveNoFileComp
}

// Initializes the root command flags
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default ./"+config.DefaultFile+" if present).")
	rootCmd.PersistentFlags().StringVar(&languageFlag, "lang", "", "Language of the generated text: ja or en.")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logs.")
}

// Runs the root command and flushes the logs when it exits.
func RunRootCommand() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

// RunAndHandleError returns a RunE function that runs the specified RunE
// function and exits if it returns an error.
func RunAndHandleError(runE func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	// Wrap the specified runE func in a new func with the same signature.
	return func(cmd *cobra.Command, args []string) error {
		// At some place in Cobra they lose track of whether the error is
		// returned by a RunE function or it's an arguments parsing error.
		// That's why we need to handle our errors ourselves and exit with an
		// appropriate error code.
		// See https://github.com/spf13/cobra/issues/914
		if errRun := runE(cmd, args); errRun != nil {
			fmt.Fprintln(os.Stderr, errorMessage(runE, errRun))
			os.Exit(1)
		}
		return nil
	}
}

// errorMessage formats an error for the user. Mistakes on the command line are shown as the plain
// localized prompt, anything else is prefixed with the failing command.
func errorMessage(runE func(cmd *cobra.Command, args []string) error, err error) string {
	if diagnostics.Is(err, diagnostics.ErrorKindUsage) || diagnostics.Is(err, diagnostics.ErrorKindUnknownFunction) {
		return diagnostics.Description(err)
	}
	// For example: "github.com/daedaleanai/testspec/cmd.runGenerate"
	s := runtime.FuncForPC(reflect.ValueOf(runE).Pointer()).Name()
	s = s[strings.LastIndex(s, "/")+1:]
	return errors.Wrap(err, s).Error()
}
