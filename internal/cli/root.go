// Package cli implements the richfmt command tree.
package cli

import (
	"github.com/bjaus/richfmt/internal/config"
	"github.com/bjaus/richfmt/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

type rootOptions struct {
	verbosity  int
	logJSON    bool
	configPath string
	cfg        config.Config
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "richfmt",
		Short: "Expand #{{placeholder}} format strings into styled text",
		Long: `richfmt expands format strings such as

  Hello #{{name|Mr(s)}}, you have #{{count|no}} messages#{{note|| (|)}}

against values from a file or flags, and writes the result as plain text,
terminal colors, HTML, Markdown, JSON, YAML or a run table.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logging.Options{Verbosity: opts.verbosity, JSON: opts.logJSON, Writer: cmd.ErrOrStderr()})

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if cfg.LogJSON && !opts.logJSON {
				logging.Setup(logging.Options{Verbosity: opts.verbosity, JSON: true, Writer: cmd.ErrOrStderr()})
			}
			log.Debug().Str("command", cmd.Name()).Str("output", cfg.Output).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Write logs as JSON lines")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/richfmt/config.toml)")

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newParseCmd())

	return rootCmd
}
