package sound

import (
	"errors"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
)

var ErrBadFrequency = errors.New("chime frequency must be positive")

// Chime builds the default burst: a bell-like tone with a fifth above it,
// decaying to silence over d. It fails when the fifth would reach the
// Nyquist limit of sr.
func Chime(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	if freq <= 0 {
		return nil, ErrBadFrequency
	}
	root, err := generators.SinTone(sr, int(math.Round(freq)))
	if err != nil {
		return nil, err
	}
	fifth, err := generators.SinTone(sr, int(math.Round(freq*3/2)))
	if err != nil {
		return nil, err
	}

	total := sr.N(d)
	tone := beep.Mix(root, &effects.Gain{Streamer: fifth, Gain: -0.5})
	return beep.Take(total, newEnvelope(tone, sr, total)), nil
}

// envelope applies a short linear attack and an exponential decay that
// reaches about -60dB after total samples.
type envelope struct {
	Streamer beep.Streamer
	attack   float64
	decay    float64
	pos      int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, total int) *envelope {
	e := &envelope{Streamer: s, attack: 0.005 * float64(sr)}
	if total > 0 {
		e.decay = math.Log(1000) / float64(total)
	}
	return e
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.Streamer.Stream(samples)
	for i := range samples[:n] {
		t := float64(e.pos)
		gain := 0.35 * math.Min(1, t/e.attack) * math.Exp(-e.decay*t)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.Streamer.Err() }
