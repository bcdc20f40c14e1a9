package cli

import (
	"fmt"
	"strings"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/manifest"
	"github.com/ariel-frischer/releasekit/internal/output"
	"github.com/spf13/cobra"
)

func newSetFlutterVersionCmd(opts *rootOptions) *cobra.Command {
	var params SetManifestVersionParams

	cmd := &cobra.Command{
		Use:   "set-flutter-version [version-name]",
		Short: "Replace the version line of a pubspec manifest",
		Long: `Replace the single top-level "version:" line of the manifest with
"version: <version-name>". Every other line, including comments and line
endings, is kept as is.

The edited manifest must still parse as YAML with the new version at the top
level, otherwise nothing is written.`,
		Example: `  releasekit set-flutter-version 1.3.0+12
  releasekit set-flutter-version --version-name 1.3.0+12 --manifest-path app/pubspec.yaml --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveRequired("version-name", params.VersionName, args)
			if err != nil {
				return err
			}
			params.VersionName = name
			params.ManifestPath = orDefault(params.ManifestPath, opts.cfg.ManifestPath)
			return runSetFlutterVersion(cmd, params)
		},
	}

	cmd.GroupID = GroupRelease
	cmd.Flags().StringVar(&params.VersionName, "version-name", "", "New manifest version, e.g. 1.3.0+12 (required)")
	cmd.Flags().StringVarP(&params.ManifestPath, "manifest-path", "m", "", "Manifest file (default from config: ./pubspec.yaml)")
	cmd.Flags().BoolVar(&params.DryRun, "dry-run", false, "Print the updated manifest instead of writing it")

	return cmd
}

func runSetFlutterVersion(cmd *cobra.Command, params SetManifestVersionParams) error {
	if err := validateParams(params, cmd.UseLine()); err != nil {
		return err
	}
	if strings.ContainsAny(params.VersionName, "\r\n") {
		return clierrors.InvalidParameter("version-name", "must be a single line")
	}

	file := manifest.NewFile(params.ManifestPath)

	if params.DryRun {
		updated, err := file.Render(params.VersionName)
		if err != nil {
			return clierrors.FromError(err, params.ManifestPath)
		}
		fmt.Fprint(cmd.OutOrStdout(), updated)
		return nil
	}

	previous, err := file.Version()
	if err != nil {
		return clierrors.FromError(err, params.ManifestPath)
	}
	if err := file.SetVersion(params.VersionName); err != nil {
		return clierrors.FromError(err, params.ManifestPath)
	}

	output.Success(cmd.OutOrStdout(), "Set version in %s: %s -> %s",
		params.ManifestPath, output.Dim(previous), output.Highlight(params.VersionName))
	return nil
}
