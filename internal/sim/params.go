package sim

import "crt-scope.dev/internal/config"

// Mode selects how the deflection voltages are produced.
type Mode int

const (
	ModeManual Mode = iota
	ModeSinusoidal
)

func (m Mode) String() string {
	if m == ModeSinusoidal {
		return "Sinusoidal"
	}
	return "Manual"
}

// Axis identifies a deflection channel.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "Y"
	}
	return "X"
}

// Channel holds the sine-drive parameters for one deflection axis.
type Channel struct {
	Amplitude float64 // V, >= 0
	Frequency float64 // Hz, must be > 0
	PhaseDeg  float64 // degrees, logically mod 360
}

// Params holds every user-adjustable parameter. It is mutated only through
// Simulator setters so side effects (trail clearing, phase re-locking,
// eager position refresh) are applied consistently.
type Params struct {
	Acceleration float64 // V
	ManualVx     float64 // V
	ManualVy     float64 // V
	Mode         Mode
	TrailCap     int // points, >= 1
	ChannelX     Channel
	ChannelY     Channel
}

func defaultParams() Params {
	return Params{
		Acceleration: config.DefaultAcceleration,
		Mode:         ModeManual,
		TrailCap:     config.DefaultTrailCap,
		ChannelX: Channel{
			Amplitude: config.DefaultAmplitude,
			Frequency: config.DefaultFrequency,
		},
		ChannelY: Channel{
			Amplitude: config.DefaultAmplitude,
			Frequency: config.DefaultFrequency,
		},
	}
}

func (p *Params) channel(a Axis) *Channel {
	if a == AxisY {
		return &p.ChannelY
	}
	return &p.ChannelX
}
