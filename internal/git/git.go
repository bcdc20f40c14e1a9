// Package git creates and checks out branches for release steps. Branch
// creation sits behind the VcsClient interface with two backends: go-git
// (default, no git binary needed) and the git CLI, which runs
// "git checkout -b <name>" exactly like a shell step would.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Backend names accepted by NewClient.
const (
	BackendGoGit = "go-git"
	BackendCLI   = "git-cli"
)

// VcsClient creates a branch and switches the working tree to it.
type VcsClient interface {
	CreateBranch(ctx context.Context, name string) error
}

// BranchCreationError reports a failed branch creation. ExitCode and Output
// are set when the git CLI ran and exited non-zero.
type BranchCreationError struct {
	Branch   string
	Backend  string
	ExitCode int
	Output   string
	Err      error
}

func (e *BranchCreationError) Error() string {
	msg := fmt.Sprintf("creating branch '%s' (%s)", e.Branch, e.Backend)
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(": exit status %d", e.ExitCode)
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *BranchCreationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is clierrors.ErrBranchCreationFailed.
func (e *BranchCreationError) Is(target error) bool {
	return target == clierrors.ErrBranchCreationFailed
}

// ErrBranchExists is wrapped when the requested branch already exists.
var ErrBranchExists = errors.New("branch already exists")

// NewClient returns the VcsClient for backend operating on dir.
// An empty backend selects go-git; an empty dir means the working directory.
func NewClient(backend, dir string) (VcsClient, error) {
	switch backend {
	case "", BackendGoGit:
		return &GoGitClient{Dir: dir}, nil
	case BackendCLI:
		return &CLIClient{Dir: dir}, nil
	default:
		return nil, fmt.Errorf("unknown vcs backend %q (valid: %s, %s)", backend, BackendGoGit, BackendCLI)
	}
}

// ValidateBranchName rejects names git would refuse, following the
// check-ref-format rules that matter for a single branch name.
func ValidateBranchName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return &clierrors.MissingParameterError{Parameter: "branch_name"}
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("branch name %q must not start with '-'", name)
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		return fmt.Errorf("branch name %q must not start or end with '/'", name)
	case strings.HasSuffix(name, ".") || strings.HasSuffix(name, ".lock"):
		return fmt.Errorf("branch name %q must not end with '.' or '.lock'", name)
	case strings.Contains(name, "..") || strings.Contains(name, "//") || strings.Contains(name, "@{"):
		return fmt.Errorf("branch name %q contains an invalid sequence", name)
	case name == "@":
		return fmt.Errorf("branch name %q is reserved", name)
	}

	for _, r := range name {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(" ~^:?*[\\", r) {
			return fmt.Errorf("branch name %q contains invalid character %q", name, r)
		}
	}
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return fmt.Errorf("branch name %q has a component starting with '.'", name)
		}
	}
	return nil
}

// openRepo opens a git repository at the specified path or current working directory.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return repo, nil
}

// CurrentBranch returns the name of the branch checked out in the repository
// containing dir. Returns empty string if in detached HEAD state.
func CurrentBranch(dir string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		logDebug("[git] CurrentBranch: detached HEAD state")
		return "", nil
	}

	return head.Name().Short(), nil
}

// GoGitClient creates branches with go-git.
type GoGitClient struct {
	// Dir is any directory inside the repository; empty means the working directory.
	Dir string
}

// CreateBranch creates a new branch at HEAD and checks it out.
// Returns a *BranchCreationError wrapping ErrBranchExists if the branch
// already exists.
func (c *GoGitClient) CreateBranch(ctx context.Context, name string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}
	if err := c.createBranch(ctx, name); err != nil {
		return &BranchCreationError{Branch: name, Backend: BackendGoGit, Err: err}
	}
	logDebug("[git] CreateBranch: created and checked out %s", name)
	return nil
}

func (c *GoGitClient) createBranch(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := openRepo(c.Dir)
	if err != nil {
		return err
	}

	if err := checkBranchExists(repo, name); err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	// go-git's checkout takes no context, so the deadline is checked once more
	// after the repository scan and before the working tree is touched.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("before checkout: %w", err)
	}

	// Keep: true preserves untracked files and directories.
	// Without Keep, go-git deletes untracked content during checkout.
	return worktree.Checkout(&git.CheckoutOptions{
		Hash:   head.Hash(),
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
		Keep:   true,
	})
}

// checkBranchExists returns an error if the branch already exists.
func checkBranchExists(repo *git.Repository, name string) error {
	_, err := repo.Reference(plumbing.NewBranchReferenceName(name), false)
	if err == nil {
		return fmt.Errorf("'%s': %w", name, ErrBranchExists)
	}
	if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return fmt.Errorf("checking branch existence: %w", err)
	}
	return nil
}
