package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ajitpratap0/fakes/internal/pipeline"
	"github.com/ajitpratap0/fakes/pkg/config"
	"github.com/ajitpratap0/fakes/pkg/errors"
	"github.com/ajitpratap0/fakes/pkg/history"
	"github.com/ajitpratap0/fakes/pkg/json"
)

// openHistory loads the configuration and opens its history database.
func (f *globalFlags) openHistory() (*history.Store, *config.Config, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.IsHistoryEnabled() {
		return nil, nil, errors.New(errors.ErrorTypeConfig, "no history database configured").
			WithDetail("hint", "pass --history or set history.path")
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func newHistoryCmd(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded runs",
		Long: `Inspect the runs recorded in the history database.

Runs are recorded by "fakes gen" when --history or history.path is set.
Any recorded run can be regenerated with "fakes replay".`,
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := global.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tWHEN\tSEED\tRECORDS\tSIZE\tFORMAT\tCOLUMNS")
			for _, run := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%d\n",
					shortID(run.ID),
					humanize.Time(run.Time),
					run.Seed,
					run.Records,
					humanize.Bytes(uint64(run.Bytes)),
					run.Converter,
					len(run.Columns))
			}
			return tw.Flush()
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs; 0 lists all")

	showCmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := global.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.Get(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(run, "", "  ")
			if err != nil {
				return errors.Wrap(err, errors.ErrorTypeInternal, "failed to encode run")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	var keep int
	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the newest runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := global.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			if !cmd.Flags().Changed("keep") {
				keep = cfg.History.Keep
			}
			n, err := store.Prune(keep)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d runs\n", n)
			return nil
		},
	}
	pruneCmd.Flags().IntVar(&keep, "keep", 0, "Number of runs to keep (default history.keep)")

	cmd.AddCommand(listCmd, showCmd, pruneCmd)
	return cmd
}

func newReplayCmd(global *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "replay <run-id>",
		Short: "Regenerate a recorded run",
		Long: `Regenerate a recorded run with its seed, clock reading and settings.
The output is byte-identical to the original. A unique prefix of the run
id is enough.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := global.openHistory()
			if err != nil {
				return err
			}
			run, err := store.Get(args[0])
			// bbolt holds a file lock; release it before generating
			_ = store.Close()
			if err != nil {
				return err
			}

			replay := pipeline.ReplayConfig(cfg, run)
			if cmd.Flags().Changed("output") {
				replay.Output = output
			}
			if err := replay.Validate(); err != nil {
				return err
			}
			return runGen(cmd, replay, false, pipeline.WithClock(func() time.Time { return run.Time }))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", pipeline.Stdout, `Output file, "-" for stdout`)
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
