package scope

import (
	"strings"

	"crt-scope.dev/internal/sim"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorBright = lipgloss.Color("#00FF41")
	colorMid    = lipgloss.Color("#00AA22")
	colorDim    = lipgloss.Color("#005511")
	colorFaint  = lipgloss.Color("#003308")

	styleBeam      = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleAxis      = lipgloss.NewStyle().Foreground(colorFaint)
	styleGraticule = lipgloss.NewStyle().Foreground(colorFaint)
)

// Graticule spacing in cells.
const (
	tickEveryCol = 10
	tickEveryRow = 4
)

// Render produces the CRT screen as a styled string: a faint graticule,
// the phosphor trail fading with age, and the beam dot on top.
func Render(width, height int, trail []sim.Position, beam sim.Position) string {
	if width < 10 || height < 5 {
		return ""
	}

	// Newest trail point wins when several land on the same cell.
	glow := make(map[int]float64, len(trail))
	n := len(trail)
	for i, p := range trail {
		col, row := Cell(p, width, height)
		key := row*width + col
		if g := AgeIntensity(i, n); g > glow[key] {
			glow[key] = g
		}
	}

	beamCol, beamRow := Cell(beam, width, height)
	centerX := (width - 1) / 2
	centerY := (height - 1) / 2

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			switch {
			case col == beamCol && row == beamRow:
				sb.WriteString(styleBeam.Render("@"))
			case glow[row*width+col] > 0:
				sb.WriteString(phosphorCell(glow[row*width+col]))
			default:
				sb.WriteString(graticuleCell(col, row, centerX, centerY))
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// phosphorCell renders a trail cell with brightness falling off by age,
// the way a long-persistence phosphor decays.
func phosphorCell(intensity float64) string {
	switch {
	case intensity > 0.8:
		return lipgloss.NewStyle().Foreground(colorBright).Render("*")
	case intensity > 0.5:
		return lipgloss.NewStyle().Foreground(colorMid).Render("*")
	case intensity > 0.25:
		return lipgloss.NewStyle().Foreground(colorDim).Render("+")
	default:
		return lipgloss.NewStyle().Foreground(colorFaint).Render(".")
	}
}

func graticuleCell(col, row, centerX, centerY int) string {
	onAxisX := row == centerY
	onAxisY := col == centerX

	switch {
	case onAxisX && onAxisY:
		return styleAxis.Render("+")
	case onAxisY && (row-centerY)%tickEveryRow == 0:
		return styleAxis.Render("|")
	case onAxisX && (col-centerX)%tickEveryCol == 0:
		return styleAxis.Render("-")
	case onAxisX || onAxisY:
		return " "
	case (col-centerX)%tickEveryCol == 0 && (row-centerY)%tickEveryRow == 0:
		return styleGraticule.Render(".")
	default:
		return " "
	}
}
