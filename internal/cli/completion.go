package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	var install bool

	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completions for taskmanager",
		Long: `Generate tab-completions for taskmanager commands, flags, and project
and task IDs.

Supported shells: bash, zsh, fish, powershell

Print the script for the current session:

  eval "$(taskmanager completion bash)"
  taskmanager completion fish | source

Or install it into the user-local completion directory:

  taskmanager completion bash --install
  taskmanager completion zsh --install
  taskmanager completion fish --install`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			shell := args[0]
			root := cmd.Root()

			if install {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("detecting home directory: %w", err)
				}
				target, err := completionTarget(home, shell)
				if err != nil {
					return err
				}
				if err := writeCompletionFile(target, func(w io.Writer) error {
					return genCompletion(root, shell, w)
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s completions installed to %s\n", shell, target)
				return nil
			}

			return genCompletion(root, shell, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "Install completions into the user-local completion directory")
	return cmd
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish, powershell)", shell)
	}
}

// completionTarget returns the user-local completion file for shell, so no
// root permissions are needed.
func completionTarget(home, shell string) (string, error) {
	switch shell {
	case "bash":
		return filepath.Join(home, ".local", "share", "bash-completion", "completions", "taskmanager"), nil
	case "zsh":
		return filepath.Join(home, ".local", "share", "zsh", "site-functions", "_taskmanager"), nil
	case "fish":
		return filepath.Join(home, ".config", "fish", "completions", "taskmanager.fish"), nil
	case "powershell":
		return "", fmt.Errorf("automatic install is not supported for PowerShell; add the output of 'taskmanager completion powershell' to your profile")
	default:
		return "", fmt.Errorf("unsupported shell %q", shell)
	}
}

// writeCompletionFile creates target (and its directory), lets gen write
// the script into it and propagates close errors.
func writeCompletionFile(target string, gen func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("creating completion directory: %w", err)
	}
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating completion file %s: %w", target, err)
	}

	writeErr := gen(f)
	closeErr := f.Close()

	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("closing completion file %s: %w", target, closeErr)
	}
	return nil
}
