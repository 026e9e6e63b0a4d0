package sim

import "github.com/iburimskiy/blackhole-visualization/internal/physics"

// Trail records the last N positions of a particle in a fixed ring buffer
// so the renderer can draw a fading tail without reallocating every tick.
// Once full, each Push evicts the oldest point.
type Trail struct {
	points []physics.Vec2
	next   int
	count  int
}

func NewTrail(capacity int) *Trail {
	return &Trail{points: make([]physics.Vec2, capacity)}
}

// Push appends p as the newest point.
func (t *Trail) Push(p physics.Vec2) {
	t.points[t.next] = p
	t.next++
	if t.next >= len(t.points) {
		t.next = 0
	}
	if t.count < len(t.points) {
		t.count++
	}
}

// Len is the number of points currently buffered.
func (t *Trail) Len() int { return t.count }

// Cap is the fixed capacity set at construction.
func (t *Trail) Cap() int { return len(t.points) }

// At returns the point at chronological index i, 0 being the oldest.
func (t *Trail) At(i int) physics.Vec2 {
	idx := t.next - t.count + i
	if idx < 0 {
		idx += len(t.points)
	}
	return t.points[idx]
}

// Snapshot returns the buffered points oldest first.
func (t *Trail) Snapshot() []physics.Vec2 {
	out := make([]physics.Vec2, t.count)
	for i := 0; i < t.count; i++ {
		out[i] = t.At(i)
	}
	return out
}
