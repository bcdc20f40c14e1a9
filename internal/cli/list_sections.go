package cli

import (
	"fmt"

	"github.com/ariel-frischer/releasekit/internal/changelog"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/spf13/cobra"
)

func newListSectionsCmd(opts *rootOptions) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:     "list-sections",
		Aliases: []string{"ls"},
		Short:   "List the section titles of a changelog (ls)",
		Long: `List every "## " heading of the changelog in document order.

Duplicates are listed as often as they occur, which makes ambiguous headings
easy to spot.`,
		Example: `  releasekit list-sections
  releasekit ls -f docs/CHANGELOG.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := orDefault(filePath, opts.cfg.ChangelogPath)

			sections, err := changelog.NewStore(path).Sections()
			if err != nil {
				return clierrors.FromError(err, path)
			}

			out := cmd.OutOrStdout()
			for _, title := range sections {
				fmt.Fprintln(out, title)
			}
			return nil
		},
	}

	cmd.GroupID = GroupChangelog
	cmd.Flags().StringVarP(&filePath, "file-path", "f", "", "Changelog file (default from config: CHANGELOG.md)")

	return cmd
}
