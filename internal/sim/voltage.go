package sim

import "math"

// VoltageModel computes the instantaneous deflection voltages for the
// active mode. Pure function of Params, State and time; no clamping here.
type VoltageModel struct {
	params *Params
	state  *State
}

// At returns (vx, vy) at simulated time t. Manual mode has no time
// dependence. Sinusoidal mode evaluates each channel against the shifted
// time base tt = t - t0, so the phase-lock controller can re-anchor the
// figure without rewriting stored phases.
func (vm *VoltageModel) At(t float64) (vx, vy float64) {
	if vm.params.Mode == ModeManual {
		return vm.params.ManualVx, vm.params.ManualVy
	}
	tt := t - vm.state.TimeOrigin
	vx = channelVoltage(&vm.params.ChannelX, tt)
	vy = channelVoltage(&vm.params.ChannelY, tt)
	return vx, vy
}

func channelVoltage(c *Channel, tt float64) float64 {
	return c.Amplitude * math.Sin(2*math.Pi*c.Frequency*tt + deg2rad(c.PhaseDeg))
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// mod360 wraps degrees into [0, 360).
func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
