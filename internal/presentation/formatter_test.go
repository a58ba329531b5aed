package presentation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pushrelease/internal/release"
	"github.com/zjrosen/pushrelease/internal/version"
)

func TestFromState(t *testing.T) {
	st := &release.State{
		RunID:    "run-1",
		Kind:     version.KindGit,
		Steps:    []string{"describe", "commit"},
		Version:  "1.2.2-4-g9fceb02",
		Bumped:   []string{"package.json"},
		Warnings: 2,
	}

	dto := FromState(st)
	require.Equal(t, "full", dto.Mode)
	require.Equal(t, "git", dto.Kind)
	require.Equal(t, []string{"describe", "commit"}, dto.Steps)
	require.Equal(t, 2, dto.Warnings)

	// The DTO does not alias the state.
	dto.Bumped[0] = "changed"
	require.Equal(t, "package.json", st.Bumped[0])
}

func TestFormatSummary(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatSummary(FromState(&release.State{
		RunID:  "run-1",
		Kind:   version.KindPatch,
		Mode:   release.ModeCommitOnly,
		DryRun: true,
	}))
	require.NoError(t, err)

	want := `{
  "run_id": "run-1",
  "kind": "patch",
  "mode": "commit-only",
  "steps": [],
  "version": "",
  "bumped": [],
  "warnings": 0,
  "dry_run": true
}
`
	require.Equal(t, want, buf.String())
}
