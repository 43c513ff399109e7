package cli

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/dgallion1/clausewise/internal/mcptools"
)

func newMCPCommand(e *env, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the analysis tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.analyzer()
			if err != nil {
				return err
			}
			e.log.Info("starting mcp server", "transport", "stdio")
			return mcptools.NewServer(a, version).Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
