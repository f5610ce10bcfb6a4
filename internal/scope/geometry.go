package scope

import (
	"math"

	"crt-scope.dev/internal/config"
	"crt-scope.dev/internal/sim"
)

// Cell maps a kernel screen position (x in [-100,100], y in [-60,60],
// y up) onto a terminal cell (row down).
func Cell(p sim.Position, width, height int) (col, row int) {
	col = int(math.Round((p.X + config.ScreenXMax) / (2 * config.ScreenXMax) * float64(width-1)))
	row = int(math.Round((config.ScreenYMax - p.Y) / (2 * config.ScreenYMax) * float64(height-1)))
	if col < 0 {
		col = 0
	}
	if col >= width {
		col = width - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= height {
		row = height - 1
	}
	return col, row
}

// AgeIntensity returns the phosphor glow [0, 1] for the trail point at
// index idx of n points (oldest first): 1.0 at the beam head fading
// linearly to near 0 at the tail end.
func AgeIntensity(idx, n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(idx+1) / float64(n)
}
