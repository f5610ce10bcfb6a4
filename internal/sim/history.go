package sim

// Sample is one point of the voltage trace.
type Sample struct {
	T  float64 // simulated seconds
	Vx float64 // V
	Vy float64 // V
}

// History retains voltage samples within a sliding time window measured
// against the newest sample. At least one sample is always kept, so a
// single old sample never evicts itself.
type History struct {
	window  float64
	samples []Sample
}

// NewHistory creates an empty history with the given window in seconds.
func NewHistory(window float64) *History {
	return &History{window: window}
}

// Append adds a sample and evicts from the head while the span between
// newest and oldest exceeds the window.
func (h *History) Append(s Sample) {
	h.samples = append(h.samples, s)
	for len(h.samples) > 1 && h.samples[len(h.samples)-1].T-h.samples[0].T > h.window {
		h.samples = h.samples[1:]
	}
}

// Samples returns a copy of the retained samples, oldest first.
func (h *History) Samples() []Sample {
	if len(h.samples) == 0 {
		return nil
	}
	out := make([]Sample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Len returns the number of retained samples.
func (h *History) Len() int {
	return len(h.samples)
}

// Clear discards all samples.
func (h *History) Clear() {
	h.samples = nil
}

// Span returns newestT - oldestT, or 0 when fewer than two samples exist.
func (h *History) Span() float64 {
	if len(h.samples) < 2 {
		return 0
	}
	return h.samples[len(h.samples)-1].T - h.samples[0].T
}

// SeriesVx returns the Vx values oldest first, for plotting.
func (h *History) SeriesVx() []float64 {
	out := make([]float64, len(h.samples))
	for i, s := range h.samples {
		out[i] = s.Vx
	}
	return out
}

// SeriesVy returns the Vy values oldest first, for plotting.
func (h *History) SeriesVy() []float64 {
	out := make([]float64, len(h.samples))
	for i, s := range h.samples {
		out[i] = s.Vy
	}
	return out
}
