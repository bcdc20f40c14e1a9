// Package cli implements the releasekit command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/releasekit/internal/changelog"
	"github.com/ariel-frischer/releasekit/internal/config"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/git"
	"github.com/ariel-frischer/releasekit/internal/manifest"
	"github.com/ariel-frischer/releasekit/internal/output"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupChangelog = "changelog"
	GroupRelease   = "release"
	GroupInfo      = "info"
)

// rootOptions holds the global flags and the configuration loaded for the
// running command. Subcommands receive it from NewRootCmd.
type rootOptions struct {
	configPath string
	debug      bool
	lenient    bool
	plain      bool

	cfg    *config.Configuration
	stderr io.Writer
}

// NewRootCmd builds the releasekit command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "releasekit",
		Short: "Release chores for changelogs, manifests and branches",
		Long: `releasekit performs the small, repeatable edits a release needs:
reading a changelog section, promoting the Unversioned section to a release,
bumping the version line of a pubspec-style manifest and cutting a release branch.

Every command reads at most one file and writes at most one file. Writes are
atomic: a failed edit leaves the original file untouched.

Configuration is read from ~/.config/releasekit/config.yml, .releasekit/config.yml
and RELEASEKIT_* environment variables. Flags always win.`,
		Example: `  # Print the notes of a release
  releasekit get-changelog 1.2.0

  # Promote the Unversioned section
  releasekit update-changelog --release-name 1.3.0

  # Bump the manifest and cut the branch
  releasekit set-flutter-version 1.3.0+12
  releasekit git-create-branch release/1.3.0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.AddGroup(
		&cobra.Group{ID: GroupChangelog, Title: "Changelog Commands:"},
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupInfo, Title: "Info Commands:"},
	)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Project config file (default: .releasekit/config.yml)")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Print debug logs to stderr")
	cmd.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "Read commands print nothing instead of failing on missing or ambiguous sections")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "Plain output without colors")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), c.UseLine())
	})

	cmd.AddCommand(
		newGetChangelogCmd(opts),
		newGetEntriesCmd(opts),
		newListSectionsCmd(opts),
		newUpdateChangelogCmd(opts),
		newSetFlutterVersionCmd(opts),
		newGetFlutterVersionCmd(opts),
		newGitCreateBranchCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(opts),
	)

	return cmd
}

// Execute runs the releasekit command tree and prints any error to stderr.
// The returned error is meant for ExitCode.
func Execute() error {
	return execute(NewRootCmd())
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		plain, _ := cmd.PersistentFlags().GetBool("plain")
		stderr := cmd.ErrOrStderr()
		clierrors.FprintError(stderr, clierrors.FromError(err, ""), output.ColorEnabled(stderr, plain))
	}
	return err
}

// setup runs before every subcommand: output mode, config and debug logging.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	o.stderr = cmd.ErrOrStderr()

	// Regular output only; errors decide their own colors against stderr.
	color.NoColor = !output.ColorEnabled(cmd.OutOrStdout(), o.plain)

	o.installDebugLoggers()

	if o.configPath != "" {
		if _, err := os.Stat(o.configPath); err != nil {
			return &clierrors.FileAccessError{Path: o.configPath, Op: "reading", Err: err}
		}
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{ProjectConfigPath: o.configPath})
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration,
			"loading configuration",
			"Fix the reported key in the config file or environment",
			"Print the documented defaults with: releasekit config template",
		)
	}
	o.cfg = cfg

	if !cmd.Flags().Changed("lenient") {
		o.lenient = cfg.Lenient
	}
	o.debugf("config: changelog=%s manifest=%s backend=%s lenient=%t",
		cfg.ChangelogPath, cfg.ManifestPath, cfg.VcsBackend, o.lenient)
	return nil
}

func (o *rootOptions) installDebugLoggers() {
	if !o.debug {
		changelog.SetDebugLogger(nil)
		manifest.SetDebugLogger(nil)
		git.SetDebugLogger(nil)
		return
	}
	logger := func(format string, args ...any) {
		fmt.Fprintf(o.stderr, "[debug] "+format+"\n", args...)
	}
	changelog.SetDebugLogger(logger)
	manifest.SetDebugLogger(logger)
	git.SetDebugLogger(logger)
}

func (o *rootOptions) debugf(format string, args ...any) {
	if o.debug && o.stderr != nil {
		fmt.Fprintf(o.stderr, "[debug] [cli] "+format+"\n", args...)
	}
}
