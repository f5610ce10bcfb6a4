package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, the main body (screen panel beside
// the side column), the tube cross-section row, the preset hint line,
// the voltage graph panel, and the status bar.
func ComposeLayout(menuBar, screenPanel, sideColumn, beamViews, presetLine, graphPanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, screenPanel, sideColumn)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, beamViews, presetLine, graphPanel, statusBar)
}

// ComposeBeamViews joins the side and top cross-section panels.
func ComposeBeamViews(sideView, topView string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, sideView, topView)
}

// ComposeSideColumn stacks the controls panel over the readout panel.
func ComposeSideColumn(controls, readout string) string {
	return lipgloss.JoinVertical(lipgloss.Left, controls, readout)
}
