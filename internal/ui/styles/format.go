package styles

import (
	"strings"
)

// RenderDiffLine colors a single line of a line diff by its prefix.
func RenderDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return DiffHeaderStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return DiffAddedStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return DiffRemovedStyle.Render(line)
	default:
		return MutedStyle.Render(line)
	}
}
