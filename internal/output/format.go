// Package output provides terminal output helpers for the releasekit CLI.
// This package has no dependencies on other internal packages.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	successMark = color.New(color.FgGreen, color.Bold).SprintFunc()
	highlight   = color.New(color.FgCyan).SprintFunc()
	dim         = color.New(color.Faint).SprintFunc()
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ColorEnabled reports whether colored output should be written to w.
// Colors are off when plain is requested, NO_COLOR is set or w is not a terminal.
func ColorEnabled(w io.Writer, plain bool) bool {
	if plain || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(w)
}

// Success prints a status line prefixed with a green check mark.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", successMark("✓"), fmt.Sprintf(format, args...))
}

// Highlight colors s cyan, for names and versions inside status lines.
func Highlight(s string) string {
	return highlight(s)
}

// Dim renders s faint, for secondary information.
func Dim(s string) string {
	return dim(s)
}
