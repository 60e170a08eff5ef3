package cli

import (
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskmanager/internal/core"
)

func newConfigCmd(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read configuration values",
		Long: `Read configuration from config.json. The only key is persistence_mode.

"config set" acknowledges the request but does not write anything yet;
edit config.json directly to change a value.`,
	}

	getCmd := &cobra.Command{
		Use:               "get <key>",
		Short:             "Print a configuration value",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.ConfigGet{Key: args[0]})
		},
	}

	setCmd := &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Acknowledge a configuration change (not persisted)",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.ConfigSet{Key: args[0], Value: args[1]})
		},
	}

	cmd.AddCommand(getCmd)
	cmd.AddCommand(setCmd)
	return cmd
}
