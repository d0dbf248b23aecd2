package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/virtuelog/virtue/internal/archive"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import activities from an archive file",
		Long: `Read an archive (YAML or JSON) and add every entry to the store.

The whole file is schema-validated before any write: a malformed entry
rejects the entire import. Ids and timestamps are assigned fresh by the
store, so importing an old export creates new records.

Examples:
  virtue import backup.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

type importResult struct {
	Imported int `json:"imported"`
}

func runImport(opts *RootOptions, cmd *cobra.Command, path string) error {
	ctx := context.Background()

	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open archive", err)
	}
	defer f.Close()

	inputs, err := archive.Import(f)
	if err != nil {
		return WrapExitError(ExitFailure, "invalid archive", err)
	}

	s, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	for i, input := range inputs {
		if _, err := s.Add(ctx, input); err != nil {
			return WrapExitError(ExitFailure,
				fmt.Sprintf("import stopped after %d of %d entries", i, len(inputs)), err)
		}
	}
	slog.Debug("archive imported", "path", path, "entries", len(inputs))

	out := newFormatter(opts, cmd.OutOrStdout())
	return out.Output(fmt.Sprintf("imported %d activities\n", len(inputs)), importResult{Imported: len(inputs)})
}
