package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/virtuelog/virtue/internal/activity"
	"github.com/virtuelog/virtue/internal/stats"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	AsOf string // overrides "today" for streak computation
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show activity statistics",
		Long: `Show totals, streaks of consecutive active days, and tag popularity.

Examples:
  virtue stats
  virtue stats --as-of 2024-05-30 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.AsOf, "as-of", "", "compute streaks as of this date, YYYY-MM-DD (default today)")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	today := opts.AsOf
	if today == "" {
		today = time.Now().Format(activity.DateLayout)
	} else if err := activity.ValidateDate(today); err != nil {
		return WrapExitError(ExitCommandError, "invalid --as-of date", err)
	}

	s, err := openStore(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	all, err := s.List(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list activities", err)
	}

	summary := stats.Summarize(all, today)

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	return out.Output(renderStats(summary), summary)
}
