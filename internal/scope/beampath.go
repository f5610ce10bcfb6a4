package scope

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tube cross-section display law: the drawn spot moves by 30% of the
// screen coordinate, against a view whose half-range is 100 units, so
// the bend stays subtle and the structure stays readable.
const (
	beamViewScale = 0.3
	viewHalfRange = 100.0

	// Fraction of the full deflection reached at the plate exit.
	beamBend = 0.5
)

var (
	styleStructure = lipgloss.NewStyle().Foreground(colorDim)
	styleBeamPath  = lipgloss.NewStyle().Foreground(colorMid)
	styleBeamSpot  = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
)

// RenderBeamPath draws a tube cross-section: the electron gun on the
// left, the deflection plates, and the beam bending toward the screen
// on the right. deflection is the screen coordinate along the viewed
// axis (pass Y for the side view, X for the top view); positive
// deflects toward the top row.
func RenderBeamPath(width, height int, deflection float64) string {
	if width < 16 || height < 5 {
		return ""
	}

	center := (height - 1) / 2
	gunEnd := width / 6
	plateStart := width / 3
	plateEnd := width / 2
	screenCol := width - 1

	// Row displacement of the spot at the screen; half of it at the
	// plate exit, matching the two-segment bend of the original views.
	span := float64(center - 1)
	if span < 1 {
		span = 1
	}
	full := -deflection * beamViewScale / viewHalfRange * span

	beamRow := func(col int) int {
		var d float64
		switch {
		case col <= plateStart:
			d = 0
		case col <= plateEnd:
			d = full * beamBend * float64(col-plateStart) / float64(plateEnd-plateStart)
		default:
			d = full*beamBend + full*(1-beamBend)*float64(col-plateEnd)/float64(screenCol-plateEnd)
		}
		r := center + int(math.Round(d))
		if r < 0 {
			r = 0
		}
		if r > height-1 {
			r = height - 1
		}
		return r
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			switch {
			case col == screenCol:
				if row == beamRow(col) {
					sb.WriteString(styleBeamSpot.Render("@"))
				} else {
					sb.WriteString(styleStructure.Render("|"))
				}
			case row == beamRow(col) && col > gunEnd:
				sb.WriteString(styleBeamPath.Render("*"))
			case col < gunEnd && (row == center-1 || row == center+1):
				sb.WriteString(styleStructure.Render("="))
			case col == gunEnd && row == center:
				sb.WriteString(styleStructure.Render(">"))
			case col >= plateStart && col <= plateEnd && (row == center-2 || row == center+2):
				sb.WriteString(styleStructure.Render("="))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
