package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := "Running - Space: pause, H: hide HUD, Esc/Q: quit"
	if g.paused {
		status = "Paused - Space: resume, N: single step, Esc/Q: quit"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	variant := "extended"
	if !g.cfg.Trails {
		variant = "classic"
	}
	stats := fmt.Sprintf("%s | %d particles | dt %g | %s | %.0f fps",
		variant, g.field.Count(), g.cfg.Dt, formatDuration(time.Since(g.start)), ebiten.ActualFPS())
	text.Draw(screen, stats, basicfont.Face7x13, 12, g.cfg.ScreenHeight-12,
		color.RGBA{R: 160, G: 170, B: 200, A: 255})
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
