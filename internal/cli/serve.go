package cli

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/clausewise/internal/app"
)

func newServeCommand(e *env) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				e.cfg.Port = port
			}
			a, err := e.analyzer()
			if err != nil {
				return err
			}
			return app.Serve(cmd.Context(), e.cfg, a, e.log)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides CLAUSEWISE_PORT)")
	return cmd
}
