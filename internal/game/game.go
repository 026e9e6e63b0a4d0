package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/blackhole-visualization/internal/audio"
	"github.com/iburimskiy/blackhole-visualization/internal/config"
	"github.com/iburimskiy/blackhole-visualization/internal/sim"
)

// Game drives the simulation from Ebiten's fixed tick: one physics step
// and one gather per Update, strictly in that order, so a frame never
// mixes pre- and post-step state. Everything runs on the game loop
// goroutine; only the hum crosses a goroutine boundary.
type Game struct {
	cfg   config.Simulation
	field *sim.Field
	frame sim.Frame
	hum   *audio.Hum

	paused  bool
	showHUD bool
	start   time.Time
}

func New(cfg config.Simulation) *Game {
	field := sim.NewField(cfg)
	return &Game{
		cfg:     cfg,
		field:   field,
		frame:   field.Assemble(),
		showHUD: true,
		start:   time.Now(),
	}
}

// SetHum attaches the ambient drone; nil leaves the run silent.
func (g *Game) SetHum(h *audio.Hum) { g.hum = h }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	if g.paused {
		// N advances a single tick while paused.
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.tick()
		}
		return nil
	}

	g.tick()
	return nil
}

func (g *Game) tick() {
	g.field.Step(g.cfg.Dt)
	g.frame = g.field.Assemble()
	if g.hum != nil {
		g.hum.SetTemperature(g.field.MeanTemperature())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.Trails {
		// Dark blue background for the space effect.
		screen.Fill(color.RGBA{R: 13, G: 13, B: 26, A: 255})
	} else {
		screen.Fill(color.Black)
	}

	// Trails first so the particles sit on top of them.
	for i := 0; i+3 <= len(g.frame.Trails); i += 3 {
		x, y, alpha := g.frame.Trails[i], g.frame.Trails[i+1], g.frame.Trails[i+2]
		vector.DrawFilledCircle(screen, x, y, 1.5, trailColor(alpha), false)
	}

	// Particles as point sprites; the extended variant draws them big and
	// colored, classic draws tiny flat-white dots.
	radius := float32(5)
	particle := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if !g.cfg.Trails {
		radius = 1
	}
	for i := 0; 2*i+1 < len(g.frame.Positions); i++ {
		x, y := g.frame.Positions[2*i], g.frame.Positions[2*i+1]
		if 3*i+2 < len(g.frame.Colors) {
			particle = color.RGBA{
				R: uint8(g.frame.Colors[3*i] * 255),
				G: uint8(g.frame.Colors[3*i+1] * 255),
				B: uint8(g.frame.Colors[3*i+2] * 255),
				A: 255,
			}
		}
		vector.DrawFilledCircle(screen, x, y, radius, particle, false)
	}

	// The black hole marker goes last, on top of everything.
	marker := color.RGBA{R: 255, A: 255}
	if g.cfg.Trails {
		marker = color.RGBA{R: 204, G: 51, A: 255}
	}
	vector.DrawFilledCircle(screen, g.frame.Center[0], g.frame.Center[1], radius, marker, false)

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// trailColor dims the trail tint (0.8, 0.8, 1.0) and scales it by the
// point's fade ramp. Ebiten wants premultiplied alpha, so the channels are
// scaled by the final alpha too.
func trailColor(alpha float32) color.RGBA {
	a := float64(alpha) * 0.3
	return color.RGBA{
		R: uint8(0.8 * 0.8 * a * 255),
		G: uint8(0.8 * 0.8 * a * 255),
		B: uint8(1.0 * 0.8 * a * 255),
		A: uint8(a * 255),
	}
}
