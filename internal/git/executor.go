package git

import "context"

// GitExecutor defines the git operations used by a release.
// This abstraction allows for easy testing with mock implementations.
type GitExecutor interface {
	// CurrentBranch returns the abbreviated name of HEAD
	// (git rev-parse --abbrev-ref HEAD). Detached checkouts report "HEAD".
	CurrentBranch(ctx context.Context) (string, error)
	// Describe runs git describe with the given options and returns the
	// trimmed output.
	Describe(ctx context.Context, options ...string) (string, error)
	// Add stages the given paths.
	Add(ctx context.Context, paths ...string) error
	// Commit records a commit. flags are passed before -m (e.g. "-a").
	Commit(ctx context.Context, message string, flags ...string) error
	// CreateTag creates an annotated tag.
	CreateTag(ctx context.Context, name, message string) error
	// Push pushes the current branch to remote.
	Push(ctx context.Context, remote string) error
	// PushTags pushes all tags to remote.
	PushTags(ctx context.Context, remote string) error
}
