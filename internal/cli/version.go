package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/ariel-frischer/releasekit/internal/build"
	"github.com/ariel-frischer/releasekit/internal/output"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for releasekit",
		Example: `  # Show version info
  releasekit version

  # Plain output (for scripts)
  releasekit version --plain`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if opts.plain {
				printPlainVersion(cmd.OutOrStdout())
				return
			}
			printPrettyVersion(cmd.OutOrStdout())
		},
	}
	cmd.GroupID = GroupInfo
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer) {
	fmt.Fprintf(w, "releasekit %s\n", build.Version)
	fmt.Fprintf(w, "commit: %s\n", build.Commit)
	fmt.Fprintf(w, "built: %s\n", build.BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func printPrettyVersion(w io.Writer) {
	label := color.New(color.FgYellow).SprintFunc()
	value := color.New(color.FgWhite, color.Bold).SprintFunc()

	fmt.Fprintln(w, color.New(color.FgCyan, color.Bold).Sprint("releasekit"))
	info := []struct {
		label string
		value string
	}{
		{"Version", build.Version},
		{"Commit", truncateCommit(build.Commit)},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
	for _, item := range info {
		fmt.Fprintf(w, "  %s  %s\n", label(fmt.Sprintf("%9s", item.label)), value(item.value))
	}
	if build.IsDevBuild() {
		fmt.Fprintln(w, output.Dim("  development build"))
	}
}

// truncateCommit shortens a commit hash to 7 characters.
func truncateCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
