package sim

import (
	"math"

	"crt-scope.dev/internal/config"
)

// Position is a beam spot on the screen, always clamped to the screen
// bounds x in [-ScreenXMax, ScreenXMax], y in [-ScreenYMax, ScreenYMax].
type Position struct {
	X float64
	Y float64
}

// DeflectionModel turns plate voltages into screen displacements using a
// deliberately simplified proportional law tuned for visual legibility,
// not the parallel-plate kinematic formula.
type DeflectionModel struct {
	params  *Params
	voltage *VoltageModel
}

// InitialVelocity returns the electron speed leaving the gun in m/s.
// Non-positive kinetic energy yields 0 rather than a NaN square root.
func (dm *DeflectionModel) InitialVelocity() float64 {
	kinetic := config.ElectronCharge * dm.params.Acceleration
	if kinetic <= 0 {
		return 0
	}
	return math.Sqrt(2 * kinetic / config.ElectronMass)
}

// Deflection converts a plate voltage into a screen displacement.
// Proportional to the voltage, inversely proportional to the
// acceleration voltage.
func (dm *DeflectionModel) Deflection(voltage float64) float64 {
	if voltage == 0 {
		return 0
	}
	factor := voltage / math.Max(1, dm.params.Acceleration/1000)
	return factor * config.DeflectionScale / 100000
}

// PositionAt computes the clamped screen position at time t. Callable
// whether or not the simulation is running.
func (dm *DeflectionModel) PositionAt(t float64) Position {
	vx, vy := dm.voltage.At(t)
	return Position{
		X: clamp(dm.Deflection(vx)*100, -config.ScreenXMax, config.ScreenXMax),
		Y: clamp(dm.Deflection(vy)*100, -config.ScreenYMax, config.ScreenYMax),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
