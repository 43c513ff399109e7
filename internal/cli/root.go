// Package cli implements the clausewise command line.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dgallion1/clausewise/internal/app"
	"github.com/dgallion1/clausewise/internal/config"
	"github.com/dgallion1/clausewise/internal/pipeline"
)

// env is resolved once per invocation by the root command.
type env struct {
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:           "clausewise",
		Short:         "Analyze legal documents: clauses, plain language, entities and risk",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(e.cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			e.cfg = cfg
			// Logs go to stderr; stdout carries reports and MCP traffic.
			e.log = app.NewLogger(cfg, cmd.ErrOrStderr())
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&e.cfgFile, "config", "", "config file (default $"+config.ConfigFileEnv+")")

	rootCmd.AddCommand(
		newAnalyzeCommand(e),
		newServeCommand(e),
		newMCPCommand(e, version),
	)
	return rootCmd
}

func (e *env) analyzer() (*pipeline.Analyzer, error) {
	return app.NewAnalyzer(e.cfg, e.log)
}
