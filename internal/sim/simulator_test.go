package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTransitions(t *testing.T) {
	t.Parallel()

	t.Run("new simulator is stopped at zero", func(t *testing.T) {
		t.Parallel()
		s := New()
		assert.False(t, s.IsRunning())
		assert.Zero(t, s.ElapsedTime())
	})

	t.Run("start and stop", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.Start()
		assert.True(t, s.IsRunning())

		s.Tick(0.01)
		s.Stop()
		assert.False(t, s.IsRunning())
		assert.InDelta(t, 0.01, s.ElapsedTime(), 1e-12) // stop keeps time
	})

	t.Run("time is monotonic while running", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.Start()
		prev := s.ElapsedTime()
		for i := 0; i < 100; i++ {
			s.Tick(0.01)
			require.Greater(t, s.ElapsedTime(), prev)
			prev = s.ElapsedTime()
		}
	})
}

func TestTick(t *testing.T) {
	t.Parallel()

	t.Run("running tick fills both buffers", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetManualVoltage(AxisX, 10)
		s.Start()
		for i := 0; i < 7; i++ {
			s.Tick(0.01)
		}

		assert.Equal(t, 7, len(s.TrailPoints()))
		assert.Equal(t, 7, len(s.VoltageHistory()))
	})

	t.Run("trail holds the most recent positions in order", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetTrailCapacity(10)
		s.SetMode(ModeSinusoidal)
		s.Start()
		// Accumulate tick times the same way the clock does, so the
		// expected positions match bit for bit.
		times := make([]float64, 25)
		tt := 0.0
		for i := 0; i < 25; i++ {
			s.Tick(0.01)
			tt += 0.01
			times[i] = tt
		}

		pts := s.TrailPoints()
		require.Len(t, pts, 10)
		assert.Equal(t, s.CurrentPosition(), pts[len(pts)-1])
		for i, p := range pts {
			assert.Equal(t, s.PositionAt(times[15+i]), p)
		}
	})

	t.Run("stopped tick mutates no buffers", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.Tick(0.01)
		s.Tick(0.01)

		assert.Zero(t, s.ElapsedTime())
		assert.Empty(t, s.TrailPoints())
		assert.Empty(t, s.VoltageHistory())
	})

	t.Run("stopped tick still follows manual edits", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.params.ManualVx = 20 // bypass the setter's eager refresh
		s.Tick(0.01)

		assert.Equal(t, s.PositionAt(0), s.CurrentPosition())
		assert.NotZero(t, s.CurrentPosition().X)
	})
}

func TestReset(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetMode(ModeSinusoidal)
	s.Start()
	for i := 0; i < 50; i++ {
		s.Tick(0.01)
	}
	s.SetTargetDelta(90)
	s.SetChannelFrequency(AxisY, 2) // moves the time origin to the current time
	require.NotZero(t, s.TimeOrigin())
	for i := 0; i < 50; i++ {
		s.Tick(0.01) // refill the trail the re-lock cleared
	}

	s.Reset()

	assert.False(t, s.IsRunning())
	assert.Zero(t, s.ElapsedTime())
	assert.Zero(t, s.TimeOrigin())
	assert.Empty(t, s.TrailPoints())
	assert.Empty(t, s.VoltageHistory())
	// Parameters survive a reset.
	assert.Equal(t, ModeSinusoidal, s.Params().Mode)
	assert.Equal(t, 2.0, s.Params().ChannelY.Frequency)
	assert.Equal(t, 90.0, s.TargetDelta())
}

func TestSetterSideEffects(t *testing.T) {
	t.Parallel()

	t.Run("eager position refresh while stopped", func(t *testing.T) {
		t.Parallel()
		s := New()
		require.Zero(t, s.CurrentPosition().X)

		s.SetManualVoltage(AxisX, 30)
		assert.NotZero(t, s.CurrentPosition().X) // no tick needed
	})

	t.Run("mode switch clears the trail", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetManualVoltage(AxisX, 5)
		s.Start()
		for i := 0; i < 5; i++ {
			s.Tick(0.01)
		}
		require.NotEmpty(t, s.TrailPoints())

		s.SetMode(ModeSinusoidal)
		assert.Empty(t, s.TrailPoints())
	})

	t.Run("capacity shrink truncates immediately", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.Start()
		for i := 0; i < 30; i++ {
			s.Tick(0.01)
		}

		s.SetTrailCapacity(12)
		assert.Equal(t, 12, len(s.TrailPoints()))
		assert.Equal(t, 12, s.Params().TrailCap)
	})

	t.Run("frequency edit clears trail via phase lock", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetMode(ModeSinusoidal)
		s.Start()
		for i := 0; i < 5; i++ {
			s.Tick(0.01)
		}
		require.NotEmpty(t, s.TrailPoints())

		s.SetChannelFrequency(AxisX, 2)
		assert.Empty(t, s.TrailPoints())
	})

	t.Run("amplitude edit keeps the trail", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetMode(ModeSinusoidal)
		s.Start()
		for i := 0; i < 5; i++ {
			s.Tick(0.01)
		}

		s.SetChannelAmplitude(AxisY, 120)
		assert.NotEmpty(t, s.TrailPoints())
	})
}
