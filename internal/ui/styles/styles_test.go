package styles

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

func TestRenderDiffLine_Plain(t *testing.T) {
	for _, line := range []string{"--- a", "+++ a", "+added", "-removed", "context"} {
		require.Equal(t, line, RenderDiffLine(line))
	}
}

func TestRenderDiffLine_Colored(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(DisableColor)

	out := RenderDiffLine("+added")
	require.Contains(t, out, "added")
	require.NotEqual(t, "+added", out, "expected escape sequences")
}
