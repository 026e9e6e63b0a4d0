package sim

import "math"

// MaxTemperature caps the heat proxy; everything at or above it renders as
// the hottest tier.
const MaxTemperature = 3.0

// Temperature is a visual heat proxy: faster and closer runs hotter. The
// distance is floored at 10 so near-center particles do not blow the scale.
// The result lands in [0, MaxTemperature]. It feeds coloring only, never
// the motion.
func Temperature(speed, dist float64) float64 {
	temp := speed*0.01 + 200.0/math.Max(dist, 10.0)
	return math.Min(temp, MaxTemperature)
}

// Color picks the red and green channels for a particle from its
// temperature and its distance to the center. The blue channel belongs to
// the renderer: 1.0 inside the accretion disk, 0.2 outside.
//
// The disk tier wins outright whenever the particle is inside diskRadius,
// whatever its temperature.
func Color(temp, dist, diskRadius float64) (r, g float64) {
	if dist < diskRadius {
		// Accretion disk: brightens toward white-blue as distance shrinks.
		diskFactor := 1.0 - dist/diskRadius
		return 0.8 + 0.2*diskFactor, 0.9 + 0.1*diskFactor
	}

	switch {
	case temp > 2.0:
		// Very hot: white.
		return 1.0, 1.0
	case temp > 1.0:
		// Hot: currently the same white as the tier above. The two tiers
		// are kept separate on purpose; this mirrors the tested behavior.
		return 1.0, 1.0
	default:
		// Cool: red to orange.
		return 1.0, 0.3 + temp*0.4
	}
}
