package app

import (
	"fmt"

	"crt-scope.dev/internal/config"
	"crt-scope.dev/internal/sim"
)

// paramDef describes one adjustable parameter: how to read it, how to
// write it through the kernel's setter, and the step/range the UI enforces.
type paramDef struct {
	label  string
	unit   string
	format string
	step   float64
	min    float64
	max    float64
	get    func(p sim.Params) float64
	set    func(s *sim.Simulator, v float64)
}

var paramDefs = []paramDef{
	{
		label: "Accel voltage", unit: "V", format: "%.0f",
		step: 100, min: config.AccelMin, max: config.AccelMax,
		get: func(p sim.Params) float64 { return p.Acceleration },
		set: func(s *sim.Simulator, v float64) { s.SetAcceleration(v) },
	},
	{
		label: "Manual Vx", unit: "V", format: "%.0f",
		step: 5, min: config.ManualVMin, max: config.ManualVMax,
		get: func(p sim.Params) float64 { return p.ManualVx },
		set: func(s *sim.Simulator, v float64) { s.SetManualVoltage(sim.AxisX, v) },
	},
	{
		label: "Manual Vy", unit: "V", format: "%.0f",
		step: 5, min: config.ManualVMin, max: config.ManualVMax,
		get: func(p sim.Params) float64 { return p.ManualVy },
		set: func(s *sim.Simulator, v float64) { s.SetManualVoltage(sim.AxisY, v) },
	},
	{
		label: "Trail length", unit: "pts", format: "%.0f",
		step: 10, min: config.TrailCapMin, max: config.TrailCapMax,
		get: func(p sim.Params) float64 { return float64(p.TrailCap) },
		set: func(s *sim.Simulator, v float64) { s.SetTrailCapacity(int(v)) },
	},
	{
		label: "Amplitude X", unit: "V", format: "%.0f",
		step: 5, min: config.AmplitudeMin, max: config.AmplitudeMax,
		get: func(p sim.Params) float64 { return p.ChannelX.Amplitude },
		set: func(s *sim.Simulator, v float64) { s.SetChannelAmplitude(sim.AxisX, v) },
	},
	{
		label: "Amplitude Y", unit: "V", format: "%.0f",
		step: 5, min: config.AmplitudeMin, max: config.AmplitudeMax,
		get: func(p sim.Params) float64 { return p.ChannelY.Amplitude },
		set: func(s *sim.Simulator, v float64) { s.SetChannelAmplitude(sim.AxisY, v) },
	},
	{
		label: "Frequency X", unit: "Hz", format: "%.1f",
		step: 0.1, min: config.FrequencyMin, max: config.FrequencyMax,
		get: func(p sim.Params) float64 { return p.ChannelX.Frequency },
		set: func(s *sim.Simulator, v float64) { s.SetChannelFrequency(sim.AxisX, v) },
	},
	{
		label: "Frequency Y", unit: "Hz", format: "%.1f",
		step: 0.1, min: config.FrequencyMin, max: config.FrequencyMax,
		get: func(p sim.Params) float64 { return p.ChannelY.Frequency },
		set: func(s *sim.Simulator, v float64) { s.SetChannelFrequency(sim.AxisY, v) },
	},
	{
		label: "Phase X", unit: "deg", format: "%.0f",
		step: 5, min: config.PhaseMin, max: config.PhaseMax,
		get: func(p sim.Params) float64 { return p.ChannelX.PhaseDeg },
		set: func(s *sim.Simulator, v float64) { s.SetChannelPhase(sim.AxisX, v) },
	},
	{
		label: "Phase Y", unit: "deg", format: "%.0f",
		step: 5, min: config.PhaseMin, max: config.PhaseMax,
		get: func(p sim.Params) float64 { return p.ChannelY.PhaseDeg },
		set: func(s *sim.Simulator, v float64) { s.SetChannelPhase(sim.AxisY, v) },
	},
}

// adjustParam steps the selected parameter by dir (+1/-1), clamped to its
// range. Raw range validation lives here, not in the kernel.
func adjustParam(s *sim.Simulator, idx, dir int) {
	if idx < 0 || idx >= len(paramDefs) {
		return
	}
	def := paramDefs[idx]
	v := def.get(s.Params()) + float64(dir)*def.step
	if v < def.min {
		v = def.min
	}
	if v > def.max {
		v = def.max
	}
	def.set(s, v)
}

func formatParam(def paramDef, p sim.Params) string {
	return fmt.Sprintf(def.format, def.get(p))
}
