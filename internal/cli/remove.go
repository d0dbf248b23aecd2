package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rm <id>",
		Short:         "Delete an activity",
		Long:          "Delete an activity by id. Deleting an id that does not exist is reported, not an error.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

type removeResult struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

func runRemove(opts *RootOptions, cmd *cobra.Command, id string) error {
	ctx := context.Background()

	s, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	removed, err := s.Delete(ctx, id)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to delete activity", err)
	}

	text := "removed " + id + "\n"
	if !removed {
		text = "no activity with id " + id + "\n"
	}

	out := newFormatter(opts, cmd.OutOrStdout())
	return out.Output(text, removeResult{ID: id, Removed: removed})
}
