// Package cli implements the taskmanager cobra command tree. Commands turn
// arguments into core.Command values, hand them to the runtime and render
// the result; they hold no state of their own.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskmanager/internal/core"
	"github.com/valter-silva-au/taskmanager/internal/logging"
	"go.uber.org/zap"
)

// Runtime executes one parsed command. *core.Runtime satisfies it.
type Runtime interface {
	Execute(cmd core.Command) (*core.Result, error)
}

// Options carries everything the command tree needs. It is built once in
// main and passed down explicitly.
type Options struct {
	Runtime Runtime
	// LogLevel, when set, is adjusted by the --log-level flag.
	LogLevel *zap.AtomicLevel

	Version string
	Commit  string
	Date    string
}

// NewRootCmd builds the full command tree around opts.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Version == "" {
		opts.Version = "dev"
	}

	var logLevel string
	root := &cobra.Command{
		Use:   "taskmanager",
		Short: "Manage projects and tasks",
		Long: `taskmanager keeps a small hierarchy of projects and their tasks in
projects.json in the current directory (or $TASKMANAGER_HOME).

Every command loads the collection, performs one change or query, and
writes the whole collection back when something changed.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.LogLevel == nil || !cmd.Flags().Changed("log-level") {
				return nil
			}
			lvl, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			opts.LogLevel.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (env TASKMANAGER_LOG_LEVEL)")

	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newVersionCmd(opts))
	root.AddCommand(newProjectCmd(opts.Runtime))
	root.AddCommand(newConfigCmd(opts.Runtime))
	root.AddCommand(newMCPCmd(opts.Runtime, opts.Version))
	root.AddCommand(newCompletionCmd())

	return root
}

func newVersionCmd(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskmanager %s\ncommit: %s\nbuilt:  %s\n", opts.Version, opts.Commit, opts.Date)
		},
	}
}

// execute runs c through rt and renders the result to the command's output.
func execute(cmd *cobra.Command, rt Runtime, c core.Command) error {
	if rt == nil {
		return fmt.Errorf("runtime not initialized")
	}
	res, err := rt.Execute(c)
	if err != nil {
		return err
	}
	renderResult(cmd.OutOrStdout(), c, res)
	return nil
}
