package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type queryOnly struct {
	GitExecutor
	branch string
}

func (q queryOnly) CurrentBranch(context.Context) (string, error) { return q.branch, nil }

func (q queryOnly) Describe(context.Context, ...string) (string, error) { return "v2.0.0", nil }

func TestDryRunExecutor(t *testing.T) {
	var reported []string
	d := NewDryRunExecutor(queryOnly{branch: "main"}, func(cmd string) {
		reported = append(reported, cmd)
	})
	ctx := context.Background()

	branch, err := d.CurrentBranch(ctx)
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	described, err := d.Describe(ctx, "--tags")
	require.NoError(t, err)
	require.Equal(t, "v2.0.0", described)

	// the embedded nil interface would panic if any of these reached it
	require.NoError(t, d.Add(ctx, "."))
	require.NoError(t, d.Commit(ctx, "Release v1.0.0", "-a"))
	require.NoError(t, d.CreateTag(ctx, "v1.0.0", "Version 1.0.0"))
	require.NoError(t, d.Push(ctx, "origin"))
	require.NoError(t, d.PushTags(ctx, "origin"))

	require.Equal(t, []string{
		"git add .",
		`git commit -a -m "Release v1.0.0"`,
		`git tag -a v1.0.0 -m "Version 1.0.0"`,
		"git push origin",
		"git push origin --tags",
	}, reported)
}
