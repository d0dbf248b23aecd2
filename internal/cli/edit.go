package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/virtuelog/virtue/internal/activity"
	"github.com/virtuelog/virtue/internal/store"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	Handle      string
	CommittedOn string
	Tags        []string
	ClearTags   bool
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing activity",
		Long: `Apply a partial update to an activity. Only the supplied flags change;
everything else keeps its prior value, and updated-at is refreshed.

Examples:
  virtue edit 0190a6e2-... --handle "evening run"
  virtue edit 0190a6e2-... --on 2024-05-29 --tag exercise
  virtue edit 0190a6e2-... --clear-tags`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Handle, "handle", "", "new handle")
	cmd.Flags().StringVar(&opts.CommittedOn, "on", "", "new committed-on date, YYYY-MM-DD")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "replacement tag (repeatable; replaces the whole tag list)")
	cmd.Flags().BoolVar(&opts.ClearTags, "clear-tags", false, "remove all tags")

	return cmd
}

func runEdit(opts *EditOptions, cmd *cobra.Command, id string) error {
	ctx := context.Background()

	patch := activity.Patch{}
	if cmd.Flags().Changed("handle") {
		patch.Handle = &opts.Handle
	}
	if cmd.Flags().Changed("on") {
		patch.CommittedOn = &opts.CommittedOn
	}
	switch {
	case opts.ClearTags && len(opts.Tags) > 0:
		return NewExitError(ExitCommandError, "--clear-tags and --tag are mutually exclusive")
	case opts.ClearTags:
		patch.Tags = []string{}
	case len(opts.Tags) > 0:
		patch.Tags = opts.Tags
	}

	if patch.IsZero() {
		return NewExitError(ExitCommandError, "nothing to change: supply --handle, --on, --tag or --clear-tags")
	}

	s, err := openStore(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	act, err := s.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return NewExitError(ExitFailure, "no activity with id "+id)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "failed to update activity", err)
	}

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	return out.Output("updated "+formatLine(act)+"\n", act)
}
