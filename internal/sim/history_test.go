package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	t.Parallel()

	t.Run("span never exceeds window", func(t *testing.T) {
		t.Parallel()
		h := NewHistory(5.0)
		for i := 0; i < 2000; i++ {
			h.Append(Sample{T: float64(i) * 0.01})
			require.LessOrEqual(t, h.Span(), 5.0)
		}
	})

	t.Run("evicts oldest first", func(t *testing.T) {
		t.Parallel()
		h := NewHistory(5.0)
		h.Append(Sample{T: 0, Vx: 1})
		h.Append(Sample{T: 3, Vx: 2})
		h.Append(Sample{T: 7, Vx: 3}) // 7-0 > 5, drops T=0

		samples := h.Samples()
		require.Len(t, samples, 2)
		assert.Equal(t, 3.0, samples[0].T)
		assert.Equal(t, 7.0, samples[1].T)
	})

	t.Run("single stale sample survives", func(t *testing.T) {
		t.Parallel()
		h := NewHistory(5.0)
		h.Append(Sample{T: 0})
		h.Append(Sample{T: 100}) // evicts T=0, then stops at one element

		require.Equal(t, 1, h.Len())
		assert.Equal(t, 100.0, h.Samples()[0].T)
	})

	t.Run("clear discards everything", func(t *testing.T) {
		t.Parallel()
		h := NewHistory(5.0)
		h.Append(Sample{T: 1})
		h.Clear()

		assert.Zero(t, h.Len())
		assert.Nil(t, h.Samples())
	})

	t.Run("series follow sample order", func(t *testing.T) {
		t.Parallel()
		h := NewHistory(5.0)
		h.Append(Sample{T: 0, Vx: 1, Vy: -1})
		h.Append(Sample{T: 1, Vx: 2, Vy: -2})

		assert.Equal(t, []float64{1, 2}, h.SeriesVx())
		assert.Equal(t, []float64{-1, -2}, h.SeriesVy())
	})
}
