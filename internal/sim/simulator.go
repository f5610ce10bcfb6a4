package sim

import "crt-scope.dev/internal/config"

// State holds the clock and the phase-lock bookkeeping.
type State struct {
	Time           float64 // simulated seconds, monotonic while running
	Running        bool
	TimeOrigin     float64 // t0; shifts the sinusoidal time base
	TargetDeltaDeg float64 // user-chosen phase difference target
}

// Simulator is the CRT simulation kernel: it owns the parameters, the
// clock, the history buffers, and the mutation surface the presentation
// layer drives. It is not goroutine-safe; a single driver (the UI event
// loop or a test harness) must own all calls.
type Simulator struct {
	params Params
	state  State

	voltage    VoltageModel
	deflection DeflectionModel
	lock       PhaseLock

	trail   *Trail
	history *History

	position Position
}

// New creates a simulator with default parameters, stopped at t=0.
func New() *Simulator {
	s := &Simulator{
		params:  defaultParams(),
		trail:   NewTrail(config.DefaultTrailCap),
		history: NewHistory(config.HistoryWindow),
	}
	s.voltage = VoltageModel{params: &s.params, state: &s.state}
	s.deflection = DeflectionModel{params: &s.params, voltage: &s.voltage}
	s.lock = PhaseLock{params: &s.params, state: &s.state, trail: s.trail}
	s.position = s.deflection.PositionAt(0)
	return s
}

// Start switches the clock to running.
func (s *Simulator) Start() {
	s.state.Running = true
}

// Stop halts time advancement without discarding any state.
func (s *Simulator) Stop() {
	s.state.Running = false
}

// Reset stops the clock, rewinds time and the time origin to zero, and
// clears both history buffers. Parameters are left untouched.
func (s *Simulator) Reset() {
	s.state.Running = false
	s.state.Time = 0
	s.state.TimeOrigin = 0
	s.trail.Clear()
	s.history.Clear()
	s.position = s.deflection.PositionAt(0)
}

// Tick advances simulated time by dt while running: it recomputes the beam
// position, appends it to the trail, and samples the voltages into the
// history. While stopped it only recomputes the position, so the displayed
// spot still follows manual edits.
func (s *Simulator) Tick(dt float64) {
	if !s.state.Running {
		s.position = s.deflection.PositionAt(s.state.Time)
		return
	}
	s.state.Time += dt
	s.position = s.deflection.PositionAt(s.state.Time)
	s.trail.Push(s.position)
	vx, vy := s.voltage.At(s.state.Time)
	s.history.Append(Sample{T: s.state.Time, Vx: vx, Vy: vy})
}

// refresh recomputes the displayed position after an edit while stopped.
func (s *Simulator) refresh() {
	if !s.state.Running {
		s.position = s.deflection.PositionAt(s.state.Time)
	}
}

// SetAcceleration sets the acceleration voltage in volts.
func (s *Simulator) SetAcceleration(v float64) {
	s.params.Acceleration = v
	s.refresh()
}

// SetManualVoltage sets one manual deflection voltage in volts.
func (s *Simulator) SetManualVoltage(axis Axis, v float64) {
	if axis == AxisY {
		s.params.ManualVy = v
	} else {
		s.params.ManualVx = v
	}
	if s.params.Mode == ModeManual {
		s.refresh()
	}
}

// SetTrailCapacity resizes the trail, truncating to the newest points
// when it shrinks. Capacities below 1 are raised to 1.
func (s *Simulator) SetTrailCapacity(n int) {
	if n < 1 {
		n = 1
	}
	s.params.TrailCap = n
	s.trail.SetCapacity(n)
}

// SetMode switches between manual and sinusoidal drive and clears the
// trail; the previous figure is meaningless under the new drive.
func (s *Simulator) SetMode(m Mode) {
	s.params.Mode = m
	s.trail.Clear()
	s.refresh()
}

// SetChannelAmplitude sets one channel's sine amplitude in volts.
func (s *Simulator) SetChannelAmplitude(axis Axis, a float64) {
	s.params.channel(axis).Amplitude = a
	if s.params.Mode == ModeSinusoidal {
		s.refresh()
	}
}

// SetChannelFrequency sets one channel's frequency in Hz (must be > 0)
// and re-locks the target phase difference via the time origin.
func (s *Simulator) SetChannelFrequency(axis Axis, f float64) {
	s.params.channel(axis).Frequency = f
	s.lock.SetDeltaByTimeOrigin(s.state.TargetDeltaDeg)
	if s.params.Mode == ModeSinusoidal {
		s.refresh()
	}
}

// SetChannelPhase sets one channel's phase in degrees. An X edit re-derives
// phaseY to hold the target delta; a Y edit is a plain assignment.
func (s *Simulator) SetChannelPhase(axis Axis, deg float64) {
	s.params.channel(axis).PhaseDeg = deg
	if axis == AxisX {
		s.lock.ApplyDeltaTarget()
	}
	if s.params.Mode == ModeSinusoidal {
		s.refresh()
	}
}

// SetTargetDelta records a new target phase difference in degrees and
// re-locks the channels so it holds at the current instant.
func (s *Simulator) SetTargetDelta(deg float64) {
	s.state.TargetDeltaDeg = deg
	s.lock.SetDeltaByTimeOrigin(deg)
	if s.params.Mode == ModeSinusoidal {
		s.refresh()
	}
}

// SetFrequencyRatioPreset applies a frequency pair to both channels and
// re-locks the target phase difference.
func (s *Simulator) SetFrequencyRatioPreset(fx, fy float64) {
	s.params.ChannelX.Frequency = fx
	s.params.ChannelY.Frequency = fy
	s.trail.Clear()
	s.lock.SetDeltaByTimeOrigin(s.state.TargetDeltaDeg)
	if s.params.Mode == ModeSinusoidal {
		s.refresh()
	}
}

// CurrentPosition returns the last computed beam position.
func (s *Simulator) CurrentPosition() Position {
	return s.position
}

// CurrentVoltages returns the instantaneous (vx, vy) at the current time.
func (s *Simulator) CurrentVoltages() (vx, vy float64) {
	return s.voltage.At(s.state.Time)
}

// PositionAt computes the clamped screen position at an arbitrary time
// without mutating any state.
func (s *Simulator) PositionAt(t float64) Position {
	return s.deflection.PositionAt(t)
}

// TrailPoints returns the trail in chronological order.
func (s *Simulator) TrailPoints() []Position {
	return s.trail.Points()
}

// VoltageHistory returns the retained voltage samples, oldest first.
func (s *Simulator) VoltageHistory() []Sample {
	return s.history.Samples()
}

// VoltageSeries returns the Vx and Vy traces oldest first, for plotting.
func (s *Simulator) VoltageSeries() (vx, vy []float64) {
	return s.history.SeriesVx(), s.history.SeriesVy()
}

// ElapsedTime returns the simulated time in seconds.
func (s *Simulator) ElapsedTime() float64 {
	return s.state.Time
}

// IsRunning reports whether the clock is advancing.
func (s *Simulator) IsRunning() bool {
	return s.state.Running
}

// InitialVelocity returns the electron gun exit speed in m/s.
func (s *Simulator) InitialVelocity() float64 {
	return s.deflection.InitialVelocity()
}

// Params returns a snapshot of the current parameters.
func (s *Simulator) Params() Params {
	return s.params
}

// TargetDelta returns the target phase difference in degrees.
func (s *Simulator) TargetDelta() float64 {
	return s.state.TargetDeltaDeg
}

// TimeOrigin returns the current time-base shift t0 in seconds.
func (s *Simulator) TimeOrigin() float64 {
	return s.state.TimeOrigin
}
