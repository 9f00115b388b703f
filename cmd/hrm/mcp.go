// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vinprj/hrmconnect/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your HRV data through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "hrm": {
        "command": "hrm",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_sessions        List recent sessions with statistics
  get_session          Get a session by ID
  delete_session       Delete a session
  record_morning_test  Record a morning orthostatic test
  list_morning_tests   List morning test results
  delete_morning_test  Delete a morning test
  get_readiness        Score a session against the baseline
  get_recovery         Composite recovery score
  get_trend            Daily trend points and direction

AVAILABLE RESOURCES:

  hrv://recent     Recent sessions and morning tests
  hrv://summary    Readiness, recovery, and trend dashboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
