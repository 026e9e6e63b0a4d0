package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/blackhole-visualization/internal/config"
	"github.com/iburimskiy/blackhole-visualization/internal/physics"
)

// Particle couples the kinematic state with the derived visual attributes.
// Trail is nil when trails are disabled.
type Particle struct {
	Body  physics.Particle
	Temp  float64
	Trail *Trail
}

// Field owns the full particle set and the constants they move under. All
// particles are created up front and live for the whole run; nothing is
// added or removed afterwards.
type Field struct {
	cfg       config.Simulation
	center    physics.Vec2
	particles []Particle
}

// NewField spawns cfg.ParticleCount particles on a ring around the center.
// Each starts at a random angle and radius with a tangential velocity of
// sqrt(G*M/r) scaled by the orbit damping, so it begins on a near-circular
// orbit and drifts slowly inward.
func NewField(cfg config.Simulation) *Field {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	center := physics.Vec2{X: cfg.CenterX(), Y: cfg.CenterY()}
	particles := make([]Particle, cfg.ParticleCount)
	for i := range particles {
		angle := rng.Float64() * 2 * math.Pi
		radius := cfg.MinSpawnRadius + rng.Float64()*cfg.SpawnRadiusSpan
		speed := math.Sqrt(cfg.G*cfg.M/radius) * cfg.OrbitDamping

		p := &particles[i]
		p.Body.Pos = center.Add(physics.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(radius))
		p.Body.Vel = physics.Vec2{X: -math.Sin(angle), Y: math.Cos(angle)}.Mul(speed)
		p.Temp = 1.0
		if cfg.Trails {
			p.Trail = NewTrail(cfg.TrailLength)
		}
	}

	return &Field{cfg: cfg, center: center, particles: particles}
}

// Step advances every particle one tick of dt seconds. Per particle, in
// order: the pre-step position goes into the trail, the body integrates,
// and the temperature is recomputed from the new state.
func (f *Field) Step(dt float64) {
	for i := range f.particles {
		p := &f.particles[i]
		if p.Trail != nil {
			p.Trail.Push(p.Body.Pos)
		}
		p.Body.Step(dt, f.cfg.G, f.cfg.M, f.center)
		if f.cfg.Trails {
			p.Temp = Temperature(p.Body.Speed(), p.Body.Pos.Sub(f.center).Len())
		}
	}
}

// Center is the fixed gravitational center.
func (f *Field) Center() physics.Vec2 { return f.center }

// Count is the number of particles, fixed at construction.
func (f *Field) Count() int { return len(f.particles) }

// Particles exposes the live particle slice for the gather step. Callers
// must not grow or shrink it.
func (f *Field) Particles() []Particle { return f.particles }

// MeanTemperature averages the heat proxy over the whole field. It drives
// the ambient hum, nothing else.
func (f *Field) MeanTemperature() float64 {
	if len(f.particles) == 0 {
		return 0
	}
	var sum float64
	for i := range f.particles {
		sum += f.particles[i].Temp
	}
	return sum / float64(len(f.particles))
}
