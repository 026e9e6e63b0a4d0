package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// Simulation holds every constant the simulation runs on. It is built once
// in main and passed by value into the components; nothing mutates it
// afterwards.
type Simulation struct {
	ScreenWidth  int
	ScreenHeight int

	// Gravitational constant and central mass. Both are tuned for visuals,
	// not for any real unit system.
	G float64
	M float64

	ParticleCount int
	Dt            float64

	// Particles spawn on a ring: radius in [MinSpawnRadius,
	// MinSpawnRadius+SpawnRadiusSpan), velocity tangential at
	// sqrt(G*M/r)*OrbitDamping. Damping below 1 gives a slow inward drift.
	MinSpawnRadius  float64
	SpawnRadiusSpan float64
	OrbitDamping    float64

	AccretionDiskRadius float64

	// Trails enables the extended visuals: fading position trails and
	// temperature-based coloring.
	Trails      bool
	TrailLength int

	// Seed for the spawn positions; 0 means seed from the clock.
	Seed int64
}

// Default is the extended variant: fewer particles, trails and
// temperature colors on.
func Default() Simulation {
	return Simulation{
		ScreenWidth:         800,
		ScreenHeight:        600,
		G:                   200,
		M:                   2000,
		ParticleCount:       100,
		Dt:                  0.008,
		MinSpawnRadius:      50,
		SpawnRadiusSpan:     250,
		OrbitDamping:        0.9,
		AccretionDiskRadius: 80,
		Trails:              true,
		TrailLength:         50,
	}
}

// DefaultClassic is the plain variant: more particles, flat white points,
// no trails.
func DefaultClassic() Simulation {
	cfg := Default()
	cfg.ParticleCount = 200
	cfg.Dt = 0.01
	cfg.Trails = false
	return cfg
}

// CenterX returns the x coordinate of the gravitational center. The center
// sits in the middle of the screen and is not itself a particle.
func (cfg Simulation) CenterX() float64 {
	return float64(cfg.ScreenWidth) / 2
}

// CenterY returns the y coordinate of the gravitational center.
func (cfg Simulation) CenterY() float64 {
	return float64(cfg.ScreenHeight) / 2
}

// Validate reports the first nonsensical value, if any.
func (cfg Simulation) Validate() error {
	switch {
	case cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", cfg.ScreenWidth, cfg.ScreenHeight)
	case cfg.ParticleCount <= 0:
		return fmt.Errorf("particle count %d must be positive", cfg.ParticleCount)
	case cfg.Dt <= 0:
		return fmt.Errorf("timestep %g must be positive", cfg.Dt)
	case cfg.G <= 0 || cfg.M <= 0:
		return fmt.Errorf("G=%g M=%g must be positive", cfg.G, cfg.M)
	case cfg.MinSpawnRadius <= 0 || cfg.SpawnRadiusSpan < 0:
		return fmt.Errorf("spawn ring [%g, %g) is invalid", cfg.MinSpawnRadius, cfg.MinSpawnRadius+cfg.SpawnRadiusSpan)
	case cfg.OrbitDamping <= 0:
		return fmt.Errorf("orbit damping %g must be positive", cfg.OrbitDamping)
	case cfg.AccretionDiskRadius <= 0:
		return fmt.Errorf("accretion disk radius %g must be positive", cfg.AccretionDiskRadius)
	case cfg.Trails && cfg.TrailLength <= 0:
		return fmt.Errorf("trail length %d must be positive when trails are on", cfg.TrailLength)
	}
	return nil
}

// Load reads overrides from a gcfg-style file on top of cfg. Keys live in
// a [simulation] section and use the struct field names, e.g.
//
//	[simulation]
//	particlecount = 150
//	trails = true
//
// Fields absent from the file keep their incoming values.
func Load(path string, cfg Simulation) (Simulation, error) {
	var file struct {
		Simulation Simulation
	}
	file.Simulation = cfg
	if err := gcfg.ReadFileInto(&file, path); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := file.Simulation.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return file.Simulation, nil
}
