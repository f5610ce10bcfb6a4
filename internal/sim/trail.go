package sim

// Trail is a circular buffer of recent beam positions, oldest first.
// Its length never exceeds the configured capacity.
type Trail struct {
	buf   []Position
	pos   int
	count int
}

// NewTrail creates a trail with the given capacity (minimum 1).
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]Position, capacity)}
}

// Push appends a position, evicting the oldest when full.
func (r *Trail) Push(p Position) {
	r.buf[r.pos] = p
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Points returns all stored positions in chronological order.
func (r *Trail) Points() []Position {
	if r.count == 0 {
		return nil
	}
	result := make([]Position, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Len returns the number of stored positions.
func (r *Trail) Len() int {
	return r.count
}

// Cap returns the current capacity.
func (r *Trail) Cap() int {
	return len(r.buf)
}

// Clear empties the trail without changing its capacity.
func (r *Trail) Clear() {
	r.pos = 0
	r.count = 0
}

// SetCapacity resizes the trail, keeping the newest points that fit.
func (r *Trail) SetCapacity(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity == len(r.buf) {
		return
	}
	pts := r.Points()
	if len(pts) > capacity {
		pts = pts[len(pts)-capacity:]
	}
	r.buf = make([]Position, capacity)
	r.pos = copy(r.buf, pts) % capacity
	r.count = len(pts)
}
