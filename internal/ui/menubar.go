package ui

import (
	"fmt"

	"crt-scope.dev/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, mode string, running bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Spc", " run/pause"},
		{"R", "eset"},
		{"M", "ode"},
		{"D", "elta"},
		{"1-4", " ratio"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if running {
		status = StyleStatusRunning.Render("RUNNING")
	} else {
		status = StyleStatusStopped.Render("STOPPED")
	}

	modeInfo := StyleMenuLabel.Render(fmt.Sprintf("Mode: %s", mode))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + modeInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
