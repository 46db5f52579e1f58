package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	flags := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "starfilter",
		Short: "Filter the HD star catalog by magnitude and asterism membership",
		Long: `starfilter reads the star catalog (src/catalogs/hd.json) and the asterism
catalog (src/catalogs/asterisms.json), keeps every star that is at least as
bright as --magnitude OR belongs to an asterism (--include-asterisms), prints
the number of kept stars and writes them to src/catalogs/hd_filtered.json.

Without any filter flag no star is kept.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, flags)
		},
	}

	registerFilterFlags(cmd, flags)

	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default: ./.starfilter.yaml if present)")
	cmd.PersistentFlags().StringP("log-level", "l", "info", "Log level (debug, info, warn, error, trace)")
	cmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")

	return cmd
}

func main() {
	// Set up basic logging for startup
	initLogging("info", "console")

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
