package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/blackhole-visualization/internal/physics"
)

func TestTrailFIFOEviction(t *testing.T) {
	tr := NewTrail(3)
	assert.Equal(t, 0, tr.Len(), "starts empty")
	assert.Equal(t, 3, tr.Cap())

	tr.Push(physics.Vec2{X: 1})
	tr.Push(physics.Vec2{X: 2})
	tr.Push(physics.Vec2{X: 3})
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []physics.Vec2{{X: 1}, {X: 2}, {X: 3}}, tr.Snapshot(), "chronological order")

	// One past capacity: the oldest point is gone, order preserved.
	tr.Push(physics.Vec2{X: 4})
	assert.Equal(t, 3, tr.Len(), "never exceeds capacity")
	assert.Equal(t, []physics.Vec2{{X: 2}, {X: 3}, {X: 4}}, tr.Snapshot())
}

func TestTrailNeverExceedsCapacity(t *testing.T) {
	tr := NewTrail(50)
	for i := 0; i < 500; i++ {
		tr.Push(physics.Vec2{X: float64(i)})
		assert.LessOrEqual(t, tr.Len(), 50, "after %d pushes", i+1)
	}
	assert.Equal(t, 50, tr.Len())
	assert.Equal(t, physics.Vec2{X: 450}, tr.At(0), "oldest surviving point")
	assert.Equal(t, physics.Vec2{X: 499}, tr.At(49), "newest point")
}

func TestTrailAtMatchesSnapshot(t *testing.T) {
	tr := NewTrail(4)
	for i := 0; i < 7; i++ {
		tr.Push(physics.Vec2{X: float64(i), Y: float64(-i)})
	}
	snap := tr.Snapshot()
	for i := range snap {
		assert.Equal(t, snap[i], tr.At(i), "index %d", i)
	}
}

func TestTrailPartialFill(t *testing.T) {
	tr := NewTrail(10)
	tr.Push(physics.Vec2{X: 7})
	tr.Push(physics.Vec2{X: 8})
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, []physics.Vec2{{X: 7}, {X: 8}}, tr.Snapshot())
}
