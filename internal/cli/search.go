package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/virtuelog/virtue/internal/search"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search activities by handle or tag",
		Long: `Case-insensitive substring search over handles and tags.

Examples:
  virtue search run
  virtue search exercise --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runSearch(opts *RootOptions, cmd *cobra.Command, query string) error {
	ctx := context.Background()

	s, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	all, err := s.List(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list activities", err)
	}

	matched := search.Filter(all, query)

	out := newFormatter(opts, cmd.OutOrStdout())
	return out.Output(renderList(matched), matched)
}
