package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yourusername/starfilter/cmd/starfilter/filter"
)

func registerFilterFlags(cmd *cobra.Command, flags *filterFlags) {
	f := cmd.Flags()
	f.Float64VarP(&flags.magnitude, "magnitude", "m", 0, "Keep stars with magnitude at or below this value")
	f.BoolVarP(&flags.includeAsterisms, "include-asterisms", "a", false, "Keep stars that belong to any asterism")
	f.BoolVarP(&flags.dryRun, "dry-run", "d", false, "Print the count without writing the filtered catalog")
	f.BoolVar(&flags.diff, "diff", false, "Print a unified diff of the filtered catalog changes to stderr")
}

func runFilter(cmd *cobra.Command, flags *filterFlags) error {
	// Flags parsed; remaining failures are not usage errors.
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	initLogging(cfg.Logging.Level, cfg.Logging.Format)
	if cfg.File != "" {
		log.Debug().Str("path", cfg.File).Msg("Using config file")
	}

	var ceiling *float64
	if cmd.Flags().Changed("magnitude") {
		ceiling = &flags.magnitude
	}

	opts := filter.Options{
		Criteria: filter.NewCriteria(ceiling, flags.includeAsterisms),
		DryRun:   flags.dryRun,
		Diff:     flags.diff,
	}

	runner := filter.NewRunner(filter.DefaultPaths(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	_, err = runner.Run(opts)
	return err
}
