package physics

// Particle is the kinematic state of one simulated body. Everything beyond
// position and velocity (temperature, trail) lives with the simulation
// layer; the physics step neither reads nor writes it.
type Particle struct {
	Pos Vec2
	Vel Vec2
}

// Step advances the particle by dt seconds under the pull of a point mass
// m at center.
//
// Semi-implicit Euler: the velocity is updated first and the new velocity
// moves the position. Orbits stay bounded over long runs this way, where
// the explicit form spirals outward.
func (p *Particle) Step(dt, g, m float64, center Vec2) {
	a := Accel(p.Pos, g, m, center)
	p.Vel = p.Vel.Add(a.Mul(dt))
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
}

// Speed is the magnitude of the current velocity.
func (p *Particle) Speed() float64 {
	return p.Vel.Len()
}
