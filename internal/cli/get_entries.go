package cli

import (
	"fmt"

	"github.com/ariel-frischer/releasekit/internal/changelog"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/spf13/cobra"
)

func newGetEntriesCmd(opts *rootOptions) *cobra.Command {
	var params GetEntriesParams

	cmd := &cobra.Command{
		Use:   "get-entries [version-name]",
		Short: "Print the entries of a changelog section, one per line",
		Long: `Print the entries of the "## <version-name>" section.

Runs of blank lines are collapsed, every line is trimmed and empty lines are
dropped. Entry order is preserved.`,
		Example: `  releasekit get-entries 1.2.0
  releasekit get-entries --version-name Unversioned --lenient`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveRequired("version-name", params.VersionName, args)
			if err != nil {
				return err
			}
			params.VersionName = name
			params.FilePath = orDefault(params.FilePath, opts.cfg.ChangelogPath)
			return runGetEntries(cmd, opts, params)
		},
	}

	cmd.GroupID = GroupChangelog
	cmd.Flags().StringVar(&params.VersionName, "version-name", "", "Section title to read (required)")
	cmd.Flags().StringVarP(&params.FilePath, "file-path", "f", "", "Changelog file (default from config: CHANGELOG.md)")

	return cmd
}

func runGetEntries(cmd *cobra.Command, opts *rootOptions, params GetEntriesParams) error {
	usage := cmd.UseLine()
	if err := validateParams(params, usage); err != nil {
		return err
	}
	if err := validateTitle("version-name", params.VersionName, usage); err != nil {
		return err
	}

	entries, err := changelog.NewStore(params.FilePath).Entries(params.VersionName)
	if err != nil {
		if opts.tolerated(err) {
			return nil
		}
		return clierrors.FromError(err, params.FilePath)
	}

	out := cmd.OutOrStdout()
	for _, entry := range entries {
		fmt.Fprintln(out, entry)
	}
	return nil
}
