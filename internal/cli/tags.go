package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tags",
		Short:         "List all distinct tags",
		Long:          "List every tag across all activities, deduplicated and sorted.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags(rootOpts, cmd)
		},
	}
	return cmd
}

func runTags(opts *RootOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	s, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	tags, err := s.DistinctTags(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list tags", err)
	}

	out := newFormatter(opts, cmd.OutOrStdout())
	return out.Output(renderTags(tags), tags)
}
