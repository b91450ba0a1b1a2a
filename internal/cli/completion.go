package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gradientlab.

To load completions:

Bash:
  $ source <(gradientlab completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ gradientlab completion bash > /etc/bash_completion.d/gradientlab
  # macOS:
  $ gradientlab completion bash > $(brew --prefix)/etc/bash_completion.d/gradientlab

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ gradientlab completion zsh > "${fpath[1]}/_gradientlab"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ gradientlab completion fish | source

  # To load completions for each session, execute once:
  $ gradientlab completion fish > ~/.config/fish/completions/gradientlab.fish

PowerShell:
  PS> gradientlab completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> gradientlab completion powershell > gradientlab.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
