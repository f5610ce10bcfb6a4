package sim

import "math"

// Below this the channels count as synchronized (the 1:1 case) and the
// time-origin solve would divide by a near-zero denominator.
const phaseLockEps = 1e-12

// PhaseLock keeps the user's target phase difference delta = phaseY - phaseX
// (mod 360) true at the current instant across frequency and phase edits.
// Editing a frequency while holding phases fixed would otherwise leave the
// figure with an arbitrary, jumpy delta at the moment of the edit.
type PhaseLock struct {
	params *Params
	state  *State
	trail  *Trail
}

// ApplyDeltaTarget re-derives phaseY after a direct phaseX edit so the
// instantaneous difference equals the target at the current time:
//
//	phaseY = (phaseX + delta - 360*(fy-fx)*t) mod 360
//
// Clears the trail; a phase jump invalidates the drawn figure.
func (pl *PhaseLock) ApplyDeltaTarget() {
	p := pl.params
	df := p.ChannelY.Frequency - p.ChannelX.Frequency
	p.ChannelY.PhaseDeg = mod360(p.ChannelX.PhaseDeg + pl.state.TargetDeltaDeg - 360*df*pl.state.Time)
	pl.trail.Clear()
}

// SetDeltaByTimeOrigin re-anchors the time origin so the effective phase
// difference equals deltaDeg at the current instant. With equal channel
// frequencies delta does not depend on the time origin, so phaseY is set
// directly instead. Used on frequency edits, ratio presets, and when a new
// target delta is chosen. Clears the trail.
func (pl *PhaseLock) SetDeltaByTimeOrigin(deltaDeg float64) {
	p := pl.params
	denom := 2 * math.Pi * (p.ChannelY.Frequency - p.ChannelX.Frequency)
	if math.Abs(denom) < phaseLockEps {
		p.ChannelY.PhaseDeg = mod360(p.ChannelX.PhaseDeg + deltaDeg)
	} else {
		phiX := deg2rad(p.ChannelX.PhaseDeg)
		phiY := deg2rad(p.ChannelY.PhaseDeg)
		deltaRad := deg2rad(deltaDeg)
		// Solve (phiY - phiX) + denom*(t - t0) = deltaRad for t0.
		pl.state.TimeOrigin = pl.state.Time - (deltaRad-(phiY-phiX))/denom
	}
	pl.trail.Clear()
}
