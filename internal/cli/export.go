package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/virtuelog/virtue/internal/archive"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Out string
	As  string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all activities to an archive file",
		Long: `Write every activity to an archive, suitable for backup or re-import.

Examples:
  virtue export --out backup.yaml
  virtue export --as json > backup.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "destination file (default stdout)")
	cmd.Flags().StringVar(&opts.As, "as", "yaml", "archive encoding (yaml|json)")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	var format archive.Format
	switch opts.As {
	case "yaml":
		format = archive.FormatYAML
	case "json":
		format = archive.FormatJSON
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid encoding %q: must be yaml or json", opts.As))
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

	var w io.Writer = cmd.OutOrStdout()
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to create output file", err)
		}
		defer f.Close()
		w = f
	}

	if err := archive.Export(w, all, format); err != nil {
		return WrapExitError(ExitFailure, "failed to export activities", err)
	}

	if opts.Out != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d activities to %s\n", len(all), opts.Out)
	}
	return nil
}
