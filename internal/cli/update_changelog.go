package cli

import (
	"fmt"

	"github.com/ariel-frischer/releasekit/internal/changelog"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/output"
	"github.com/spf13/cobra"
)

func newUpdateChangelogCmd(opts *rootOptions) *cobra.Command {
	var params UpdateChangelogParams

	cmd := &cobra.Command{
		Use:   "update-changelog [release-name]",
		Short: "Promote the Unversioned section to a release",
		Long: `Rename the "## Unversioned" heading to "## <release-name>" and insert a
fresh Unversioned section with a placeholder entry above it.

Text before the Unversioned heading and every other section are kept as is.
The command fails without writing when the Unversioned heading is missing or
repeated, or when the release heading already exists.`,
		Example: `  releasekit update-changelog 1.3.0
  releasekit update-changelog --release-name 1.3.0 --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveRequired("release-name", params.ReleaseName, args)
			if err != nil {
				return err
			}
			params.ReleaseName = name
			params.FilePath = orDefault(params.FilePath, opts.cfg.ChangelogPath)
			params.UnversionedTitle = orDefault(params.UnversionedTitle, opts.cfg.UnversionedTitle)
			params.PlaceholderEntry = opts.cfg.PlaceholderEntry
			return runUpdateChangelog(cmd, params)
		},
	}

	cmd.GroupID = GroupRelease
	cmd.Flags().StringVar(&params.ReleaseName, "release-name", "", "Title of the new release section (required)")
	cmd.Flags().StringVarP(&params.FilePath, "file-path", "f", "", "Changelog file (default from config: CHANGELOG.md)")
	cmd.Flags().StringVar(&params.UnversionedTitle, "unversioned-title", "", "Title of the section to promote (default from config: Unversioned)")
	cmd.Flags().BoolVar(&params.DryRun, "dry-run", false, "Print the updated changelog instead of writing it")

	return cmd
}

func runUpdateChangelog(cmd *cobra.Command, params UpdateChangelogParams) error {
	usage := cmd.UseLine()
	if err := validateParams(params, usage); err != nil {
		return err
	}
	if err := validateTitle("release-name", params.ReleaseName, usage); err != nil {
		return err
	}
	if err := validateTitle("unversioned-title", params.UnversionedTitle, usage); err != nil {
		return err
	}

	store := changelog.NewStore(params.FilePath)
	promote := changelog.PromoteOptions{
		UnversionedTitle: params.UnversionedTitle,
		Placeholder:      params.PlaceholderEntry,
	}

	if params.DryRun {
		doc, err := store.Load()
		if err != nil {
			return clierrors.FromError(err, params.FilePath)
		}
		updated, err := changelog.PromoteUnversioned(doc, params.ReleaseName, promote)
		if err != nil {
			return clierrors.FromError(err, params.FilePath)
		}
		fmt.Fprint(cmd.OutOrStdout(), updated)
		return nil
	}

	if _, err := store.PromoteUnversioned(params.ReleaseName, promote); err != nil {
		return clierrors.FromError(err, params.FilePath)
	}

	output.Success(cmd.OutOrStdout(), "Promoted %s to %s in %s",
		output.Highlight(changelog.Heading(params.UnversionedTitle)),
		output.Highlight(changelog.Heading(params.ReleaseName)),
		params.FilePath)
	return nil
}
