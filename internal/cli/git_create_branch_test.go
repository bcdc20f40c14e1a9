package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit on master.
func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pubspec.yaml"), []byte("version: 1.0.0\n"), 0o644))
	_, err = worktree.Add("pubspec.yaml")
	require.NoError(t, err)
	_, err = worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com"},
	})
	require.NoError(t, err)

	return dir, repo
}

func headBranch(t *testing.T, repo *git.Repository) string {
	t.Helper()
	head, err := repo.Head()
	require.NoError(t, err)
	return head.Name().Short()
}

func TestGitCreateBranch(t *testing.T) {
	dir, repo := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("untracked"), 0o644))

	res := runCLI(t, "git-create-branch", "release/1.1.0", "--dir", dir)
	require.NoError(t, res.err, res.stderr)

	assert.Contains(t, res.stdout, "✓ Created branch release/1.1.0 (from master)")
	assert.Equal(t, "release/1.1.0", headBranch(t, repo))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestGitCreateBranch_BranchFlagAndConfigBackend(t *testing.T) {
	dir, repo := initRepo(t)
	cfg := writeFile(t, "config.yml", "vcs_backend: go-git\ngit_timeout: 10s\n")

	res := runCLI(t, "--config", cfg, "git-create-branch", "--branch-name", "hotfix", "--dir", dir)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "hotfix", headBranch(t, repo))
}

func TestGitCreateBranch_Errors(t *testing.T) {
	tests := map[string]struct {
		args     func(dir string) []string
		wantCode int
	}{
		"missing branch name": {
			args:     func(dir string) []string { return []string{"--dir", dir} },
			wantCode: ExitInvalidArguments,
		},
		"option-looking branch name": {
			args:     func(dir string) []string { return []string{"--branch-name=-f", "--dir", dir} },
			wantCode: ExitInvalidArguments,
		},
		"name with space": {
			args:     func(dir string) []string { return []string{"release 1", "--dir", dir} },
			wantCode: ExitInvalidArguments,
		},
		"unknown backend": {
			args:     func(dir string) []string { return []string{"x", "--backend", "svn", "--dir", dir} },
			wantCode: ExitInvalidArguments,
		},
		"existing branch": {
			args:     func(dir string) []string { return []string{"master", "--dir", dir} },
			wantCode: ExitBranchCreationFailed,
		},
		"not a repository": {
			args:     func(string) []string { return []string{"x", "--dir", t.TempDir()} },
			wantCode: ExitBranchCreationFailed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir, repo := initRepo(t)
			args := append([]string{"git-create-branch"}, tt.args(dir)...)

			res := runCLI(t, args...)
			assert.Equal(t, tt.wantCode, res.code, "stderr: %s", res.stderr)
			assert.Equal(t, "master", headBranch(t, repo))
		})
	}
}
