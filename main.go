package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/blackhole-visualization/internal/audio"
	"github.com/iburimskiy/blackhole-visualization/internal/config"
	"github.com/iburimskiy/blackhole-visualization/internal/game"
)

func main() {
	classic := flag.Bool("classic", false, "plain variant: positions only, no trails or temperature colors")
	configPath := flag.String("config", "", "optional config file overriding the simulation constants")
	pick := flag.Bool("pick", false, "choose the config file with a native open dialog instead of -config")
	mute := flag.Bool("mute", false, "disable the accretion hum")
	flag.Parse()

	cfg := config.Default()
	if *classic {
		cfg = config.DefaultClassic()
	}

	path := *configPath
	if *pick && path == "" {
		chosen, err := chooseConfigFile()
		if err != nil {
			log.Fatalf("config chooser: %v", err)
		}
		path = chosen
	}
	if path != "" {
		loaded, err := config.Load(path, cfg)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	g := game.New(cfg)

	// The hum only makes sense with the temperature model running.
	if !*mute && cfg.Trails {
		hum, err := audio.Start()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			g.SetHum(hum)
		}
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Black Hole - Space: pause, N: step, Esc/Q: quit")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// chooseConfigFile opens a native file dialog. A canceled dialog is not an
// error; it just means run with the defaults.
func chooseConfigFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Simulation Config"),
		zenity.FileFilters{{
			Name:     "Config",
			Patterns: []string{"*.conf", "*.ini", "*.gcfg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
