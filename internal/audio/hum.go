// Package audio plays a low procedural drone whose pitch follows the
// simulation, so hotter accretion sounds higher. There is no audio file;
// the streamer synthesizes a sine wave on the fly.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.08

	// Pitch range the temperature maps onto, in Hz.
	baseFreq = 40.0
	freqSpan = 60.0
)

// Hum is a beep.Streamer fed straight to the speaker. The speaker pulls
// Stream from its own goroutine, so the target frequency is guarded by a
// mutex; the phase is touched only by the speaker side.
type Hum struct {
	mu    sync.Mutex
	freq  float64
	phase float64
}

// Start initializes the speaker and begins playing a hum at the lowest
// pitch. The returned Hum keeps playing until the process exits.
func Start() (*Hum, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	h := &Hum{freq: baseFreq}
	speaker.Play(h)
	return h, nil
}

// SetTemperature retunes the drone from a field temperature in
// [0, 3]: baseFreq at zero, baseFreq+3*freqSpan at the cap.
func (h *Hum) SetTemperature(temp float64) {
	h.mu.Lock()
	h.freq = baseFreq + freqSpan*temp
	h.mu.Unlock()
}

func (h *Hum) Stream(samples [][2]float64) (int, bool) {
	h.mu.Lock()
	freq := h.freq
	h.mu.Unlock()

	step := freq / float64(sampleRate)
	for i := range samples {
		v := math.Sin(2*math.Pi*h.phase) * volume
		samples[i][0] = v
		samples[i][1] = v
		h.phase += step
		if h.phase >= 1 {
			h.phase -= 1
		}
	}
	return len(samples), true
}

func (h *Hum) Err() error { return nil }
