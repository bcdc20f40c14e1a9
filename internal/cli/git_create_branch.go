package cli

import (
	"context"
	"fmt"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/git"
	"github.com/ariel-frischer/releasekit/internal/output"
	"github.com/spf13/cobra"
)

func newGitCreateBranchCmd(opts *rootOptions) *cobra.Command {
	var params CreateBranchParams

	cmd := &cobra.Command{
		Use:   "git-create-branch [branch-name]",
		Short: "Create a branch from HEAD and switch to it",
		Long: `Create a new branch at the current commit and check it out.

Uncommitted changes and untracked files stay in the working tree. The command
fails with exit code 6 when the branch already exists or the repository has
no commit to branch from.

Backends:
  go-git   built-in git implementation, no git binary needed (default)
  git-cli  runs "git checkout -b" from PATH`,
		Example: `  releasekit git-create-branch release/1.3.0
  releasekit git-create-branch --branch-name release/1.3.0 --backend git-cli --dir ../app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveRequired("branch-name", params.BranchName, args)
			if err != nil {
				return err
			}
			params.BranchName = name
			params.Backend = orDefault(params.Backend, opts.cfg.VcsBackend)
			params.Timeout = opts.cfg.GitTimeout
			return runGitCreateBranch(cmd, opts, params)
		},
	}

	cmd.GroupID = GroupRelease
	cmd.Flags().StringVar(&params.BranchName, "branch-name", "", "Name of the branch to create (required)")
	cmd.Flags().StringVar(&params.Backend, "backend", "", "VCS backend: go-git | git-cli (default from config: go-git)")
	cmd.Flags().StringVar(&params.Dir, "dir", ".", "Directory inside the repository")

	return cmd
}

func runGitCreateBranch(cmd *cobra.Command, opts *rootOptions, params CreateBranchParams) error {
	if err := validateParams(params, cmd.UseLine()); err != nil {
		return err
	}
	if err := git.ValidateBranchName(params.BranchName); err != nil {
		return clierrors.InvalidParameter("branch-name", err.Error())
	}

	client, err := git.NewClient(params.Backend, params.Dir)
	if err != nil {
		return clierrors.InvalidParameter("backend", err.Error())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if params.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.Timeout)
		defer cancel()
	}

	previous, err := git.CurrentBranch(params.Dir)
	if err != nil {
		opts.debugf("current branch unknown: %v", err)
	}

	opts.debugf("creating branch %s with %s in %s", params.BranchName, params.Backend, params.Dir)
	if err := client.CreateBranch(ctx, params.BranchName); err != nil {
		return clierrors.FromError(err, params.Dir)
	}

	if previous != "" {
		output.Success(cmd.OutOrStdout(), "Created branch %s (from %s)", output.Highlight(params.BranchName), previous)
	} else {
		output.Success(cmd.OutOrStdout(), "Created branch %s", output.Highlight(params.BranchName))
	}
	fmt.Fprintln(cmd.OutOrStdout(), output.Dim("Switched to the new branch"))
	return nil
}
