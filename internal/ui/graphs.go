package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// RenderVoltageGraphs renders the Vx and Vy traces side by side over the
// retained history window. tMin and tMax bound the window, oldest to
// newest sample, and are echoed in the captions so the sliding x axis
// stays readable.
func RenderVoltageGraphs(vx, vy []float64, tMin, tMax float64, width, height int) string {
	innerH := height - 4
	if innerH < 2 {
		innerH = 2
	}
	halfW := width/2 - 14
	if halfW < 10 {
		halfW = 10
	}

	window := fmt.Sprintf("t: %.1f-%.1fs", tMin, tMax)
	left := StyleGraphX.Render(plotOrPlaceholder(vx, halfW, innerH, "Vx (V)  "+window))
	right := StyleGraphY.Render(plotOrPlaceholder(vy, halfW, innerH, "Vy (V)  "+window))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	return StylePanelBorder.Width(width - 2).Render(body)
}

func plotOrPlaceholder(series []float64, width, height int, caption string) string {
	if len(series) < 2 {
		pad := strings.Repeat("\n", height/2)
		return pad + " (no samples yet: press space to run) " + caption
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
