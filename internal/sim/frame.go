package sim

// Frame is the flat vertex data for one rendered tick, shaped for direct
// upload: two floats per particle vertex, three per trail vertex. It is
// derived wholly from the field's current state and carries no rendering
// specifics of its own.
type Frame struct {
	// Positions holds x,y per particle in stable particle-index order.
	Positions []float32

	// Trails holds x,y,alpha per trail point, particles in index order,
	// each trail oldest first. Alpha ramps linearly from 0 at the oldest
	// point toward 1 at the newest: i/N for index i of current length N,
	// recomputed every frame. Empty when trails are off.
	Trails []float32

	// Colors holds r,g,b per particle, matching Positions order. Blue is
	// 1.0 inside the accretion disk and 0.2 outside. Empty when the
	// temperature visuals are off.
	Colors []float32

	// Center is the fixed marker position. It is drawn after every
	// particle so it always sits on top.
	Center [2]float32
}

// Assemble gathers the field's current state into a Frame. It is a pure
// read of the particle set; call it after Step so the frame never mixes
// pre- and post-step state.
func (f *Field) Assemble() Frame {
	frame := Frame{
		Positions: make([]float32, 0, 2*len(f.particles)),
		Center:    [2]float32{float32(f.center.X), float32(f.center.Y)},
	}
	if f.cfg.Trails {
		frame.Colors = make([]float32, 0, 3*len(f.particles))
	}

	for i := range f.particles {
		p := &f.particles[i]
		frame.Positions = append(frame.Positions, float32(p.Body.Pos.X), float32(p.Body.Pos.Y))

		if p.Trail != nil {
			n := p.Trail.Len()
			for j := 0; j < n; j++ {
				pt := p.Trail.At(j)
				alpha := float32(j) / float32(n)
				frame.Trails = append(frame.Trails, float32(pt.X), float32(pt.Y), alpha)
			}
		}

		if f.cfg.Trails {
			dist := p.Body.Pos.Sub(f.center).Len()
			r, g := Color(p.Temp, dist, f.cfg.AccretionDiskRadius)
			b := 0.2
			if dist < f.cfg.AccretionDiskRadius {
				b = 1.0
			}
			frame.Colors = append(frame.Colors, float32(r), float32(g), float32(b))
		}
	}

	return frame
}
