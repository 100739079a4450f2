package cmd

import (
	"os"

	"github.com/daedaleanai/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion bash|zsh|fish",
	Short: "Generate completion script",
	Long: `To load completions:
Bash:
  $ source <(testspec completion bash)
  # To load completions for each session, execute once:
  $ testspec completion bash > /etc/bash_completion.d/testspec
Zsh:
  $ testspec completion zsh > "${fpath[1]}/_testspec"
  # You will need to start a new shell for this setup to take effect.
fish:
  $ testspec completion fish > ~/.config/fish/completions/testspec.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.ExactValidArgs(1),
	RunE: RunAndHandleError(func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		}
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	}),
	Hidden: true,
}

// Registers the completion subcommand
func init() {
	rootCmd.AddCommand(completionCmd)
}
