package cli

import (
	"fmt"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/manifest"
	"github.com/spf13/cobra"
)

func newGetFlutterVersionCmd(opts *rootOptions) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "get-flutter-version",
		Short: "Print the version of a pubspec manifest",
		Example: `  releasekit get-flutter-version
  releasekit get-flutter-version -m app/pubspec.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := orDefault(manifestPath, opts.cfg.ManifestPath)

			version, err := manifest.NewFile(path).Version()
			if err != nil {
				if opts.tolerated(err) {
					return nil
				}
				return clierrors.FromError(err, path)
			}

			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}

	cmd.GroupID = GroupRelease
	cmd.Flags().StringVarP(&manifestPath, "manifest-path", "m", "", "Manifest file (default from config: ./pubspec.yaml)")

	return cmd
}
