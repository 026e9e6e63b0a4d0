package physics

// MinRadius is the smallest radius used when evaluating the gravitational
// pull. Without the floor the acceleration goes to Inf as a particle
// crosses the center; this is a stability clamp, not physics.
const MinRadius = 5.0

// Accel returns the acceleration at pos toward a fixed point mass m at
// center. The magnitude is g*m/r^2 with r floored at MinRadius; the raw
// displacement is normalized by the same floored r, so for any point at or
// beyond the floor the result is exactly antiparallel to pos-center.
func Accel(pos Vec2, g, m float64, center Vec2) Vec2 {
	d := pos.Sub(center)
	r := d.Len()
	if r < MinRadius {
		r = MinRadius
	}
	f := g * m / (r * r)
	return d.Mul(-f / r)
}
