package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	tmmcp "github.com/valter-silva-au/taskmanager/internal/mcp"
)

func newMCPCmd(rt Runtime, version string) *cobra.Command {
	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the taskmanager MCP (Model Context Protocol) server.",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the taskmanager MCP server on stdio",
		Long: `Start the taskmanager MCP server on stdio transport.

The server exposes the project commands as MCP tools: list_projects,
create_project, update_project, destroy_project, list_tasks, create_task,
update_task, destroy_task and get_config. Every successful change is
written to disk before the tool returns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rt == nil {
				return fmt.Errorf("runtime not initialized")
			}

			srv := tmmcp.NewServer(rt, version)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if err := srv.Run(ctx); err != nil {
				return fmt.Errorf("running MCP server: %w", err)
			}
			return nil
		},
	}

	mcpCmd.AddCommand(serveCmd)
	return mcpCmd
}
