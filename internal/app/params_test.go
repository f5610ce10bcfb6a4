package app

import (
	"testing"

	"crt-scope.dev/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustParamClampsToRange(t *testing.T) {
	t.Parallel()

	for idx, def := range paramDefs {
		idx, def := idx, def
		t.Run(def.label, func(t *testing.T) {
			t.Parallel()
			s := sim.New()

			// Walk far past both ends; the value must stay inside the range.
			for i := 0; i < 1200; i++ {
				adjustParam(s, idx, +1)
			}
			assert.Equal(t, def.max, def.get(s.Params()))

			for i := 0; i < 1200; i++ {
				adjustParam(s, idx, -1)
			}
			assert.Equal(t, def.min, def.get(s.Params()))
		})
	}
}

func TestAdjustParamIgnoresBadIndex(t *testing.T) {
	t.Parallel()

	s := sim.New()
	adjustParam(s, -1, +1)
	adjustParam(s, len(paramDefs), +1)
	// Nothing to assert beyond not panicking; parameters are unchanged.
	assert.Equal(t, sim.New().Params(), s.Params())
}

func TestParamSettersRouteToKernel(t *testing.T) {
	t.Parallel()

	s := sim.New()
	s.SetMode(sim.ModeSinusoidal)

	// Frequency X is index 6; stepping it must re-lock the phase
	// difference, which clears the trail.
	s.Start()
	for i := 0; i < 5; i++ {
		s.Tick(0.01)
	}
	require.NotEmpty(t, s.TrailPoints())

	adjustParam(s, 6, +1)
	assert.Empty(t, s.TrailPoints())
}
