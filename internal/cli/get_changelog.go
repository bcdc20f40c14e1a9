package cli

import (
	"fmt"

	"github.com/ariel-frischer/releasekit/internal/changelog"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/spf13/cobra"
)

func newGetChangelogCmd(opts *rootOptions) *cobra.Command {
	var params GetChangelogParams

	cmd := &cobra.Command{
		Use:   "get-changelog [version]",
		Short: "Print the raw body of a changelog section",
		Long: `Print the raw text between "## <version>" and the next "##" heading.

The body is printed unmodified, including its leading newline and blank lines.
The heading must occur exactly once: a missing heading exits with code 4 and a
repeated one with code 5, unless --lenient is set.`,
		Example: `  releasekit get-changelog 1.2.0
  releasekit get-changelog --version Unversioned --file-path docs/CHANGELOG.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := resolveRequired("version", params.Version, args)
			if err != nil {
				return err
			}
			params.Version = version
			params.FilePath = orDefault(params.FilePath, opts.cfg.ChangelogPath)
			return runGetChangelog(cmd, opts, params)
		},
	}

	cmd.GroupID = GroupChangelog
	cmd.Flags().StringVar(&params.Version, "version", "", "Section title to print (required)")
	cmd.Flags().StringVarP(&params.FilePath, "file-path", "f", "", "Changelog file (default from config: CHANGELOG.md)")

	return cmd
}

func runGetChangelog(cmd *cobra.Command, opts *rootOptions, params GetChangelogParams) error {
	usage := cmd.UseLine()
	if err := validateParams(params, usage); err != nil {
		return err
	}
	if err := validateTitle("version", params.Version, usage); err != nil {
		return err
	}

	body, err := changelog.NewStore(params.FilePath).SectionBody(params.Version)
	if err != nil {
		if opts.tolerated(err) {
			return nil
		}
		return clierrors.FromError(err, params.FilePath)
	}

	fmt.Fprint(cmd.OutOrStdout(), body)
	return nil
}
