package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/padraicbc/jrabrowser/config"
	applog "github.com/padraicbc/jrabrowser/logger"
	"github.com/padraicbc/jrabrowser/roster"
)

// app is the state shared by every subcommand once the roster is loaded.
type app struct {
	data    string
	altData string
	stdin   bool
	debug   bool
	output  string

	log  *zap.Logger
	snap *roster.Snapshot
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "jra",
		Short:        "Search and rank JRA racehorses",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.data, "data", cfg.RosterPrimary, "primary roster file or URL")
	pf.StringVar(&a.altData, "alt-data", cfg.RosterSecondary, "secondary roster file or URL")
	pf.BoolVar(&a.stdin, "stdin", false, "read the roster as a JSON array from stdin")
	pf.BoolVar(&a.debug, "debug", cfg.Debug, "log loading details to stderr")
	pf.StringVarP(&a.output, "output", "o", "table", "output format: table or json")

	cmd.AddCommand(
		newSearchCmd(a),
		newRankCmd(a),
		newGridCmd(a),
		newJockeysCmd(a),
		newBreedsCmd(a),
		newStatsCmd(a),
	)
	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	if a.output != "table" && a.output != "json" {
		return fmt.Errorf("unknown output format %q", a.output)
	}

	log, err := applog.NewConsole(a.debug)
	if err != nil {
		return err
	}
	a.log = log

	opts := []roster.Option{roster.WithPaths(a.data, a.altData)}
	if a.stdin {
		var raw []roster.Raw
		dec := json.NewDecoder(cmd.InOrStdin())
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			// Load falls through to the paths and the fallback dataset.
			log.Warn("ignoring stdin roster", zap.Error(err))
		}
		opts = append(opts, roster.WithEmbedded(raw))
	}

	a.snap = roster.New(log, opts...).Load(cmd.Context())
	if a.snap.Source() == roster.SourceFallback {
		log.Warn("showing the built-in fallback roster")
	}
	return nil
}

func (a *app) printer(cmd *cobra.Command) *printer {
	return newPrinter(a.output, cmd.OutOrStdout())
}
