package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, running bool, elapsed float64, x, y float64, trailLen int, deltaDeg float64) string {
	status := ""
	if running {
		status = StyleStatusRunning.Render("[RUNNING]")
	} else {
		status = StyleStatusStopped.Render("[STOPPED]")
	}

	info := fmt.Sprintf(" t: %6.2fs  Pos: %+6.1f %+6.1f  Trail: %d pts  Target delta: %.0fdeg",
		elapsed, x, y, trailLen, deltaDeg)

	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
