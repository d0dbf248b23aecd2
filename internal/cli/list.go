package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/virtuelog/virtue/internal/activity"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	From  string
	To    string
	Limit int
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities, newest first",
		Long: `List activities ordered by committed-on date descending; within a day,
the most recently logged comes first.

Examples:
  virtue list
  virtue list --from 2024-01-01 --to 2024-01-31
  virtue list --limit 10 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "inclusive lower date bound, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.To, "to", "", "inclusive upper date bound, YYYY-MM-DD")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum entries to print (0 = config default)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	for _, bound := range []string{opts.From, opts.To} {
		if bound != "" {
			if err := activity.ValidateDate(bound); err != nil {
				return WrapExitError(ExitCommandError, "invalid date bound", err)
			}
		}
	}

	s, err := openStore(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	var activities []activity.Activity
	if opts.From != "" || opts.To != "" {
		from, to := opts.From, opts.To
		if from == "" {
			from = "0000-01-01"
		}
		if to == "" {
			to = "9999-12-31"
		}
		activities, err = s.ListByDateRange(ctx, from, to)
	} else {
		activities, err = s.List(ctx)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list activities", err)
	}

	limit := opts.Limit
	if limit == 0 {
		limit = opts.cfg.ListLimit
	}
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	return out.Output(renderList(activities), activities)
}
