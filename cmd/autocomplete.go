package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)
}

var completionCmd = &cobra.Command{
	Hidden:                true,
	DisableFlagsInUseLine: true,
	Use:                   "completion [bash|zsh|fish|powershell]",
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Short:                 "Output shell completion code",
	Long: `To load completion:

Bash:

  $ source <(npcli completion bash)

  # To load completions for each session, execute once:
  # Linux:
  npcli completion bash > /etc/bash_completion.d/npcli
  # macOS:
  npcli completion bash > /usr/local/etc/bash_completion.d/npcli

Oh-my-zsh:
  mkdir -p ~/.oh-my-zsh/custom/plugins/npcli
  npcli completion zsh > ~/.oh-my-zsh/custom/plugins/npcli/npcli.plugin.zsh
  echo "compdef _npcli npcli" >> ~/.oh-my-zsh/custom/plugins/npcli/npcli.plugin.zsh

  # Then add npcli to your plugins in your .zshrc

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it. To to that run the following once:

  echo "autoload -U compinit; compinit" >> ~/.zshrc

  # Add this to your .zshrc file:
  source <(npcli completion zsh)
  # You will need to start a new shell for this setup to take effect.

fish:

  npcli completion fish | source

  # To load completions for each session, execute once:
  npcli completion fish > ~/.config/fish/completions/npcli.fish

PowerShell:

  PS> npcli completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> npcli completion powershell > npcli.ps1
  # and source this file from your PowerShell profile.
`,
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			// make this loadable
			os.Stdout.WriteString("#compdef npcli\ncompdef _npcli npcli\n")
			cmd.Root().GenZshCompletion(os.Stdout)

		case "fish":
			cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}
