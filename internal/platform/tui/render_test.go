package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorCyan)
	s.SetColored(5, 1, '#', core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "cd")
	assert.Contains(t, lines[1], "#")
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(1, 1)
	s.SetColored(0, 0, 'x', core.Color(99))

	assert.Contains(t, RenderScreen(s), "x")
}
