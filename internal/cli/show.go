package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/virtuelog/virtue/internal/store"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show <id>",
		Short:         "Show one activity in full",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runShow(opts *RootOptions, cmd *cobra.Command, id string) error {
	ctx := context.Background()

	s, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	act, err := s.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return NewExitError(ExitFailure, "no activity with id "+id)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load activity", err)
	}

	out := newFormatter(opts, cmd.OutOrStdout())
	return out.Output(renderActivity(act), act)
}
