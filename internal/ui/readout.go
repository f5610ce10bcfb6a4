package ui

import (
	"fmt"
	"strings"
)

// Readout is the instantaneous state snapshot shown beside the screen.
type Readout struct {
	Running    bool
	Elapsed    float64 // s
	Mode       string
	Accel      float64 // V
	Velocity   float64 // m/s
	Vx, Vy     float64 // V
	X, Y       float64 // screen units
	TrailLen   int
	TimeOrigin float64 // s
}

// RenderReadout renders the live numeric readout panel.
func RenderReadout(r Readout, width, height int) string {
	var sb strings.Builder
	sb.WriteString(StylePanelTitle.Render("READOUT") + "\n")

	row := func(label, value string) {
		sb.WriteString(StyleReadoutLabel.Render(fmt.Sprintf(" %-12s", label)))
		sb.WriteString(StyleReadoutValue.Render(value))
		sb.WriteByte('\n')
	}

	status := "STOPPED"
	if r.Running {
		status = "RUNNING"
	}

	row("Status", status)
	row("Time", fmt.Sprintf("%8.2f s", r.Elapsed))
	row("Mode", r.Mode)
	row("Accel", fmt.Sprintf("%8.0f V", r.Accel))
	row("Velocity", fmt.Sprintf("%8.1f Mm/s", r.Velocity/1e6))
	row("Vx", fmt.Sprintf("%+8.1f V", r.Vx))
	row("Vy", fmt.Sprintf("%+8.1f V", r.Vy))
	row("Screen X", fmt.Sprintf("%+8.1f", r.X))
	row("Screen Y", fmt.Sprintf("%+8.1f", r.Y))
	row("Trail", fmt.Sprintf("%8d pts", r.TrailLen))
	row("t0", fmt.Sprintf("%8.3f s", r.TimeOrigin))

	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(sb.String())
}
