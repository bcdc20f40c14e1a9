package git

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// CLIClient creates branches by running the git binary.
type CLIClient struct {
	// Dir is the working directory for git; empty means the current one.
	Dir string
	// GitPath overrides the git executable (default "git" from PATH).
	GitPath string

	// command builds the process; tests replace it with a helper process.
	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func (c *CLIClient) gitPath() string {
	if c.GitPath != "" {
		return c.GitPath
	}
	return "git"
}

func (c *CLIClient) newCommand(ctx context.Context, args ...string) *exec.Cmd {
	command := c.command
	if command == nil {
		command = exec.CommandContext
	}
	cmd := command(ctx, c.gitPath(), args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	return cmd
}

// CreateBranch runs "git checkout -b <name>". A non-zero exit is returned as
// a *BranchCreationError carrying the exit status and combined output.
func (c *CLIClient) CreateBranch(ctx context.Context, name string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}

	cmd := c.newCommand(ctx, "checkout", "-b", name)
	logDebug("[git] running %s", strings.Join(cmd.Args, " "))

	out, err := cmd.CombinedOutput()
	if err != nil {
		bce := &BranchCreationError{
			Branch:  name,
			Backend: BackendCLI,
			Output:  strings.TrimSpace(string(out)),
			Err:     err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			bce.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			bce.Err = ctxErr
			bce.ExitCode = 0
		}
		return bce
	}

	logDebug("[git] %s", strings.TrimSpace(string(out)))
	return nil
}
