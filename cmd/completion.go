package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cssmith/internal/ui"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for cssmith.

To load completions:

Bash:
  $ source <(cssmith completion bash)

Zsh:
  $ cssmith completion zsh > "${fpath[1]}/_cssmith"

Fish:
  $ cssmith completion fish | source

PowerShell:
  PS> cssmith completion powershell | Out-String | Invoke-Expression

Or run 'cssmith completion install' to set it up for your current shell.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "install",
		Short: "Install shell completion for your current shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return installCompletion(cmd.Root())
		},
	})
	return cmd
}

func installCompletion(root *cobra.Command) error {
	shell := detectShell()
	if shell == "" {
		return fmt.Errorf("could not detect shell; use 'cssmith completion [bash|zsh|fish|powershell]' manually")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not find home directory: %w", err)
	}

	var completionFile, rcFile, sourceLine string
	switch shell {
	case "zsh":
		completionDir := filepath.Join(home, ".zsh", "completions")
		completionFile = filepath.Join(completionDir, "_cssmith")
		rcFile = filepath.Join(home, ".zshrc")
		sourceLine = fmt.Sprintf("\nfpath=(%s $fpath)\nautoload -Uz compinit && compinit\n", completionDir)
	case "bash":
		completionFile = filepath.Join(home, ".bash_completion.d", "cssmith")
		rcFile = filepath.Join(home, ".bashrc")
		sourceLine = fmt.Sprintf("\n[ -f %s ] && source %s\n", completionFile, completionFile)
	case "fish":
		// Fish auto-loads from its completions dir
		completionFile = filepath.Join(home, ".config", "fish", "completions", "cssmith.fish")
	}

	if err := os.MkdirAll(filepath.Dir(completionFile), 0755); err != nil {
		return fmt.Errorf("failed to create completion directory: %w", err)
	}
	f, err := os.Create(completionFile)
	if err != nil {
		return fmt.Errorf("failed to create completion file: %w", err)
	}
	switch shell {
	case "zsh":
		err = root.GenZshCompletion(f)
	case "bash":
		err = root.GenBashCompletion(f)
	case "fish":
		err = root.GenFishCompletion(f, true)
	}
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to generate completion: %w", err)
	}
	ui.PrintSuccess("Installed completion script to %s", completionFile)

	if rcFile == "" {
		return nil
	}
	rcContent, _ := os.ReadFile(rcFile)
	if !strings.Contains(string(rcContent), "cssmith") {
		rc, err := os.OpenFile(rcFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			ui.PrintWarning("Could not update %s: %v", rcFile, err)
			ui.PrintInfo("Please add manually: %s", sourceLine)
			return nil
		}
		rc.WriteString(sourceLine)
		rc.Close()
		ui.PrintSuccess("Updated %s", rcFile)
	}
	ui.PrintInfo("Restart your shell or run: source %s", rcFile)
	return nil
}

func detectShell() string {
	shell := os.Getenv("SHELL")
	for _, name := range []string{"zsh", "bash", "fish"} {
		if strings.Contains(shell, name) {
			return name
		}
	}
	return ""
}
