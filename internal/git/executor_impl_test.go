package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit and a bare remote named
// origin. Tests are skipped when git is not installed.
func initRepo(t *testing.T) (dir, remote string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	root := t.TempDir()
	dir = filepath.Join(root, "work")
	remote = filepath.Join(root, "remote.git")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	run := func(dir string, args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	}

	run(root, "init", "--bare", "-b", "main", remote)
	run(dir, "init", "-b", "main")
	run(dir, "config", "user.name", "Release Bot")
	run(dir, "config", "user.email", "release@example.com")
	run(dir, "config", "commit.gpgsign", "false")
	run(dir, "config", "tag.gpgsign", "false")
	run(dir, "config", "push.default", "current")
	run(dir, "remote", "add", "origin", remote)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"version": "1.0.0"}`), 0o644))
	run(dir, "add", ".")
	run(dir, "commit", "-m", "initial")
	return dir, remote
}

func gitOut(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return strings.TrimSpace(string(out))
}

// TestRealExecutor_NewRealExecutor tests the constructor.
func TestRealExecutor_NewRealExecutor(t *testing.T) {
	executor := NewRealExecutor("/some/path")

	require.NotNil(t, executor, "NewRealExecutor returned nil")
	require.Equal(t, "/some/path", executor.workDir)
}

func TestRealExecutor_CurrentBranch(t *testing.T) {
	dir, _ := initRepo(t)

	branch, err := NewRealExecutor(dir).CurrentBranch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "main", branch)
}

func TestRealExecutor_CurrentBranch_NotRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	_, err := NewRealExecutor(t.TempDir()).CurrentBranch(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotGitRepo), "want ErrNotGitRepo, got %v", err)
}

func TestRealExecutor_Describe(t *testing.T) {
	dir, _ := initRepo(t)
	e := NewRealExecutor(dir)
	ctx := context.Background()

	require.NoError(t, e.CreateTag(ctx, "v1.0.0", "Version 1.0.0"))

	out, err := e.Describe(ctx, "--tags", "--always", "--abbrev=1", "--dirty=-d")
	require.NoError(t, err)
	require.Equal(t, "v1.0.0", out)
}

func TestRealExecutor_CommitTagPush(t *testing.T) {
	dir, remote := initRepo(t)
	e := NewRealExecutor(dir)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"version": "1.0.1"}`), 0o644))
	require.NoError(t, e.Add(ctx, "."))
	// staging twice is harmless
	require.NoError(t, e.Add(ctx, "."))
	require.NoError(t, e.Commit(ctx, `Release "v1.0.1"`, "-a"))
	require.NoError(t, e.CreateTag(ctx, "v1.0.1", "Version 1.0.1"))
	require.NoError(t, e.Push(ctx, "origin"))
	require.NoError(t, e.PushTags(ctx, "origin"))

	require.Equal(t, `Release "v1.0.1"`, gitOut(t, dir, "log", "-1", "--format=%s"))
	require.Equal(t, "tag", gitOut(t, dir, "cat-file", "-t", "v1.0.1"), "tag should be annotated")
	require.Equal(t, "v1.0.1", gitOut(t, remote, "tag", "--list"))
	require.Equal(t, gitOut(t, dir, "rev-parse", "HEAD"), gitOut(t, remote, "rev-parse", "main"))
}

func TestRealExecutor_CommitNothing(t *testing.T) {
	dir, _ := initRepo(t)

	err := NewRealExecutor(dir).Commit(context.Background(), "empty", "-a")
	require.ErrorIs(t, err, ErrNothingToCommit)
}

func TestRealExecutor_TagExists(t *testing.T) {
	dir, _ := initRepo(t)
	e := NewRealExecutor(dir)
	ctx := context.Background()

	require.NoError(t, e.CreateTag(ctx, "v1.0.0", "first"))
	err := e.CreateTag(ctx, "v1.0.0", "again")
	require.ErrorIs(t, err, ErrTagExists)
}

func TestRealExecutor_ContextCancelled(t *testing.T) {
	dir, _ := initRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRealExecutor(dir).CurrentBranch(ctx)
	require.Error(t, err)
}

func TestParseGitError(t *testing.T) {
	base := errors.New("exit status 1")
	tests := []struct {
		stderr string
		want   error
	}{
		{"fatal: not a git repository (or any of the parent directories): .git", ErrNotGitRepo},
		{"nothing to commit, working tree clean", ErrNothingToCommit},
		{"fatal: tag 'v1.0.0' already exists", ErrTagExists},
		{"fatal: The current branch main has no upstream branch.", ErrNoUpstream},
		{" ! [rejected]        main -> main (fetch first)\nerror: failed to push some refs", ErrRemoteRejected},
	}
	for _, tt := range tests {
		err := parseGitError(tt.stderr, base)
		require.ErrorIs(t, err, tt.want, tt.stderr)
	}

	err := parseGitError("something else", base)
	require.ErrorIs(t, err, base)
	require.Contains(t, err.Error(), "something else")
}
