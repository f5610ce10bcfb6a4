package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialVelocity(t *testing.T) {
	t.Parallel()

	t.Run("positive acceleration", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetAcceleration(2000)

		want := math.Sqrt(2 * 1.602e-19 * 2000 / 9.109e-31)
		assert.InDelta(t, want, s.InitialVelocity(), want*1e-12)
	})

	t.Run("non-positive acceleration degrades to zero", func(t *testing.T) {
		t.Parallel()
		s := New()

		s.SetAcceleration(0)
		assert.Zero(t, s.InitialVelocity())

		s.SetAcceleration(-500)
		assert.Zero(t, s.InitialVelocity())
	})
}

func TestDeflection(t *testing.T) {
	t.Parallel()

	t.Run("zero voltage is exactly zero", func(t *testing.T) {
		t.Parallel()
		s := New()
		assert.Zero(t, s.deflection.Deflection(0))
	})

	t.Run("proportional law", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetAcceleration(2000)

		// 50 / max(1, 2000/1000) * 5000 / 100000
		assert.InDelta(t, 1.25, s.deflection.Deflection(50), 1e-12)
	})

	t.Run("divisor floors at one for low acceleration", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetAcceleration(500) // 500/1000 < 1, so divisor is 1

		assert.InDelta(t, 50*5000.0/100000.0, s.deflection.Deflection(50), 1e-12)
	})
}

func TestPositionClamping(t *testing.T) {
	t.Parallel()

	t.Run("manual scenario pins to screen edge", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetAcceleration(2000)
		s.SetMode(ModeManual)
		s.SetManualVoltage(AxisX, 50)
		s.SetManualVoltage(AxisY, 0)

		// 100 * (50 / max(1, 2)) * 5000/100000 = 125, clamped to 100.
		pos := s.PositionAt(3.7)
		assert.Equal(t, 100.0, pos.X)
		assert.Zero(t, pos.Y)

		vx, vy := s.CurrentVoltages()
		assert.Equal(t, 50.0, vx)
		assert.Zero(t, vy)
	})

	t.Run("always inside bounds", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.SetMode(ModeSinusoidal)
		s.SetChannelAmplitude(AxisX, 200)
		s.SetChannelAmplitude(AxisY, 200)
		s.SetChannelFrequency(AxisX, 3)
		s.SetChannelFrequency(AxisY, 7)

		for i := 0; i < 500; i++ {
			pos := s.PositionAt(float64(i) * 0.013)
			require.GreaterOrEqual(t, pos.X, -100.0)
			require.LessOrEqual(t, pos.X, 100.0)
			require.GreaterOrEqual(t, pos.Y, -60.0)
			require.LessOrEqual(t, pos.Y, 60.0)
		}
	})
}
