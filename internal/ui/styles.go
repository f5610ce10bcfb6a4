package ui

import "github.com/charmbracelet/lipgloss"

// Phosphor color palette
var (
	ColorPhosphor  = lipgloss.Color("#00FF41")
	ColorGreen     = lipgloss.Color("#00CC33")
	ColorMidGreen  = lipgloss.Color("#008F11")
	ColorDimGreen  = lipgloss.Color("#004A0A")
	ColorTraceX    = lipgloss.Color("#00FFAA")
	ColorTraceY    = lipgloss.Color("#33FF66")
	ColorBorder    = lipgloss.Color("#00AA22")
	ColorBorderHot = lipgloss.Color("#00FF41")
	ColorWarning   = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorPhosphor).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorPhosphor).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorPhosphor).
				Bold(true)

	StyleStatusStopped = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorPhosphor).
			Bold(true).
			Padding(0, 1)

	StyleParamLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleParamValue = lipgloss.NewStyle().
			Foreground(ColorPhosphor)

	StyleParamUnit = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleCursorLine = lipgloss.NewStyle().
			Background(lipgloss.Color("#003300")).
			Bold(true)

	StyleReadoutLabel = lipgloss.NewStyle().
				Foreground(ColorMidGreen)

	StyleReadoutValue = lipgloss.NewStyle().
				Foreground(ColorPhosphor)

	StyleGraphX = lipgloss.NewStyle().
			Foreground(ColorTraceX)

	StyleGraphY = lipgloss.NewStyle().
			Foreground(ColorTraceY)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
