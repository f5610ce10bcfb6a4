package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Control is one adjustable parameter row in the controls panel.
type Control struct {
	Label string
	Value string
	Unit  string
}

// RenderControls renders the parameter list with a selection cursor.
// Left/right adjust the selected parameter.
func RenderControls(controls []Control, selected, width, height int) string {
	var sb strings.Builder
	sb.WriteString(StylePanelTitle.Render("CONTROLS") + "\n")

	valueW := 9
	labelW := width - valueW - 10
	if labelW < 8 {
		labelW = 8
	}

	for i, c := range controls {
		label := c.Label
		if runes := []rune(label); len(runes) > labelW {
			label = string(runes[:labelW])
		}
		line := fmt.Sprintf(" %-*s %*s %-4s", labelW, label, valueW, c.Value, c.Unit)

		if i == selected {
			sb.WriteString(StyleCursorLine.Render(">" + line[1:]))
		} else {
			sb.WriteString(StyleParamLabel.Render(line))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("\n" + StyleHelp.Render(" up/down select, left/right adjust"))

	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(sb.String())
}

// RenderPresets renders the ratio and delta preset hint line.
func RenderPresets(width int, ratios [][2]float64, deltas []float64, targetDelta float64) string {
	parts := make([]string, 0, len(ratios)+1)
	for i, r := range ratios {
		parts = append(parts, fmt.Sprintf("[%d] %.0f:%.0f", i+1, r[0], r[1]))
	}

	deltaPart := "[d] delta:"
	for _, d := range deltas {
		if d == targetDelta {
			deltaPart += fmt.Sprintf(" >%.0f<", d)
		} else {
			deltaPart += fmt.Sprintf(" %.0f", d)
		}
	}

	line := " " + strings.Join(parts, "  ") + "   " + deltaPart
	if lipgloss.Width(line) > width {
		line = line[:width]
	}
	return StyleHelp.Render(line)
}
