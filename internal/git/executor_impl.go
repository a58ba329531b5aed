package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/zjrosen/pushrelease/internal/log"
)

// Git-specific errors for release operations.
var (
	// ErrNotGitRepo indicates the directory is not a git repository.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrNothingToCommit indicates the commit had no changes to record.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrTagExists indicates the tag name is already taken.
	ErrTagExists = errors.New("tag already exists")

	// ErrNoUpstream indicates the current branch has no upstream to push to.
	ErrNoUpstream = errors.New("no upstream branch")

	// ErrRemoteRejected indicates the remote refused the push.
	ErrRemoteRejected = errors.New("remote rejected push")

	// ErrUnexpectedStderr indicates a query succeeded but wrote to stderr.
	ErrUnexpectedStderr = errors.New("unexpected output on stderr")
)

// Compile-time check that RealExecutor implements GitExecutor.
var _ GitExecutor = (*RealExecutor)(nil)

// RealExecutor implements GitExecutor by executing actual git commands.
type RealExecutor struct {
	workDir string
}

// NewRealExecutor creates a new RealExecutor.
func NewRealExecutor(workDir string) *RealExecutor {
	return &RealExecutor{workDir: workDir}
}

// runGit executes a git command and returns an error if it fails.
func (e *RealExecutor) runGit(ctx context.Context, args ...string) error {
	_, _, err := e.runGitOutput(ctx, args...)
	return err
}

// runGitOutput executes a git command and returns trimmed stdout, trimmed
// stderr and any error.
func (e *RealExecutor) runGitOutput(ctx context.Context, args ...string) (string, string, error) {
	//nolint:gosec // G204: args come from controlled sources
	cmd := exec.CommandContext(ctx, "git", args...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug(log.CatGit, "exec", "args", strings.Join(args, " "), "dir", e.workDir)

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr == "" {
			// git commit reports "nothing to commit" on stdout
			stderrStr = strings.TrimSpace(stdout.String())
		}
		log.ErrorErr(log.CatGit, "git failed", err, "args", strings.Join(args, " "), "stderr", stderrStr)
		if stderrStr != "" {
			return "", stderrStr, parseGitError(stderrStr, err)
		}
		return "", "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), nil
}

// parseGitError converts git output to specific error types.
func parseGitError(stderr string, originalErr error) error {
	stderrLower := strings.ToLower(stderr)

	if strings.Contains(stderrLower, "not a git repository") {
		return fmt.Errorf("%w: %s", ErrNotGitRepo, stderr)
	}

	// nothing to commit, working tree clean
	if strings.Contains(stderrLower, "nothing to commit") ||
		strings.Contains(stderrLower, "no changes added to commit") {
		return fmt.Errorf("%w: %s", ErrNothingToCommit, stderr)
	}

	// fatal: tag 'v1.0.0' already exists
	if strings.Contains(stderrLower, "tag") && strings.Contains(stderrLower, "already exists") {
		return fmt.Errorf("%w: %s", ErrTagExists, stderr)
	}

	// fatal: The current branch main has no upstream branch.
	if strings.Contains(stderrLower, "has no upstream branch") {
		return fmt.Errorf("%w: %s", ErrNoUpstream, stderr)
	}

	// ! [rejected] main -> main (fetch first)
	if strings.Contains(stderrLower, "[rejected]") ||
		strings.Contains(stderrLower, "[remote rejected]") ||
		strings.Contains(stderrLower, "failed to push some refs") {
		return fmt.Errorf("%w: %s", ErrRemoteRejected, stderr)
	}

	return fmt.Errorf("git error: %s: %w", stderr, originalErr)
}

// CurrentBranch returns the name of the checked out branch.
// Any stderr output is treated as failure, matching the strictness the branch
// guard needs.
func (e *RealExecutor) CurrentBranch(ctx context.Context) (string, error) {
	out, stderr, err := e.runGitOutput(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if stderr != "" {
		return "", fmt.Errorf("failed to get current branch: %w: %s", ErrUnexpectedStderr, stderr)
	}
	return out, nil
}

// Describe runs git describe with options.
func (e *RealExecutor) Describe(ctx context.Context, options ...string) (string, error) {
	args := append([]string{"describe"}, options...)
	out, _, err := e.runGitOutput(ctx, args...)
	if err != nil {
		return "", err
	}
	return out, nil
}

// Add stages paths.
func (e *RealExecutor) Add(ctx context.Context, paths ...string) error {
	args := append([]string{"add"}, paths...)
	return e.runGit(ctx, args...)
}

// Commit creates a commit with message.
func (e *RealExecutor) Commit(ctx context.Context, message string, flags ...string) error {
	args := append([]string{"commit"}, flags...)
	args = append(args, "-m", message)
	return e.runGit(ctx, args...)
}

// CreateTag creates an annotated tag.
func (e *RealExecutor) CreateTag(ctx context.Context, name, message string) error {
	return e.runGit(ctx, "tag", "-a", name, "-m", message)
}

// Push pushes the current branch to remote.
func (e *RealExecutor) Push(ctx context.Context, remote string) error {
	return e.runGit(ctx, "push", remote)
}

// PushTags pushes all tags to remote.
func (e *RealExecutor) PushTags(ctx context.Context, remote string) error {
	return e.runGit(ctx, "push", remote, "--tags")
}
