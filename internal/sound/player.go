// Package sound plays the burst that accompanies a press and reports its
// loudness so the glow can pulse with it.
package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported file type")

// Options configures a Player.
type Options struct {
	SampleRate     int
	Volume         float64
	ChimeFrequency float64
	ChimeDuration  time.Duration
	RingSize       int
}

// Player mixes bursts into a single speaker stream. Load and Level may be
// called before Init; PlayBurst is a no-op until Init succeeds.
type Player struct {
	opts  Options
	rate  beep.SampleRate
	mixer *beep.Mixer
	tap   *levelTap

	mu     sync.Mutex
	custom *beep.Buffer
	name   string
	ready  bool
}

func NewPlayer(opts Options) *Player {
	if opts.RingSize <= 0 {
		opts.RingSize = 2048
	}
	mixer := &beep.Mixer{}
	return &Player{
		opts:  opts,
		rate:  beep.SampleRate(opts.SampleRate),
		mixer: mixer,
		tap:   newLevelTap(mixer, opts.RingSize),
	}
}

// Init opens the speaker and starts the mixing stream.
func (p *Player) Init() error {
	bufferSize := p.rate.N(time.Second / 20)
	if err := speaker.Init(p.rate, bufferSize); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.tap)

	p.mu.Lock()
	p.ready = true
	p.mu.Unlock()
	return nil
}

// Load decodes a wav, mp3 or flac file and makes it the burst sound.
func (p *Player) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != p.rate {
		src = beep.Resample(4, format.SampleRate, p.rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	p.mu.Lock()
	p.custom = buf
	p.name = filepath.Base(path)
	p.mu.Unlock()
	return nil
}

// Name is the loaded file's base name, or "chime" for the synthesized burst.
func (p *Player) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.custom == nil {
		return "chime"
	}
	return p.name
}

// Burst returns a fresh streamer for one burst, volume applied.
func (p *Player) Burst() (beep.Streamer, error) {
	p.mu.Lock()
	custom := p.custom
	p.mu.Unlock()

	var s beep.Streamer
	if custom != nil {
		s = custom.Streamer(0, custom.Len())
	} else {
		chime, err := Chime(p.rate, p.opts.ChimeFrequency, p.opts.ChimeDuration)
		if err != nil {
			return nil, fmt.Errorf("chime: %w", err)
		}
		s = chime
	}
	if p.opts.Volume == 0 {
		return s, nil
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: p.opts.Volume}, nil
}

// PlayBurst mixes one burst into the running stream.
func (p *Player) PlayBurst() error {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready {
		return nil
	}
	burst, err := p.Burst()
	if err != nil {
		return err
	}
	speaker.Lock()
	p.mixer.Add(burst)
	speaker.Unlock()
	return nil
}

// Level is the current loudness of the mixed stream in [0, 1].
func (p *Player) Level() float64 {
	l := p.tap.level() * 2
	if l > 1 {
		return 1
	}
	return l
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	ready := p.ready
	p.ready = false
	p.mu.Unlock()
	if ready {
		speaker.Clear()
	}
}
