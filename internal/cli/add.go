package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/virtuelog/virtue/internal/activity"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	CommittedOn string
	Tags        []string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <handle>",
		Short: "Record a new activity",
		Long: `Record a new activity with a handle, a committed-on date and optional tags.

The date defaults to today; the store assigns the id and timestamps.

Examples:
  virtue add meditate
  virtue add "morning run" --on 2024-05-30 --tag exercise --tag outdoors`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.CommittedOn, "on", "", "committed-on date, YYYY-MM-DD (default today)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "tag to attach (repeatable)")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command, handle string) error {
	ctx := context.Background()

	date := opts.CommittedOn
	if date == "" {
		date = time.Now().Format(activity.DateLayout)
	}

	s, err := openStore(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	act, err := s.Add(ctx, activity.New{
		Handle:      handle,
		CommittedOn: date,
		Tags:        opts.Tags,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "failed to add activity", err)
	}

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	return out.Output("added "+formatLine(act)+"\n", act)
}
