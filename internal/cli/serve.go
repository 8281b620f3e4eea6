package cli

import (
	"github.com/HartBrook/pronghorn/internal/config"
	"github.com/HartBrook/pronghorn/internal/errors"
	pronghornserver "github.com/HartBrook/pronghorn/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer and optimizer over MCP (stdio)",
		Long: `Starts an MCP server on stdio exposing two tools: prompt_analyze and
prompt_optimize. Intended to be launched by an MCP client (Claude Code,
Cursor, and others), not run interactively.`,
		Example: `  pronghorn serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			s := pronghornserver.New(cfg.Catalog())
			if err := server.ServeStdio(s); err != nil {
				return errors.ServeFailed(err)
			}
			return nil
		},
	}
}
