package sound

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/wav"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestChimeShape(t *testing.T) {
	sr := beep.SampleRate(44100)
	chime, err := Chime(sr, 880, 200*time.Millisecond)
	if err != nil {
		t.Fatalf("Chime() error = %v", err)
	}
	samples := drain(chime)

	if want := sr.N(200 * time.Millisecond); len(samples) != want {
		t.Fatalf("chime length = %d samples, want %d", len(samples), want)
	}

	peak := func(part [][2]float64) float64 {
		var m float64
		for _, s := range part {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	head := peak(samples[:len(samples)/4])
	tail := peak(samples[3*len(samples)/4:])
	if head == 0 {
		t.Fatal("chime is silent")
	}
	if tail >= head/4 {
		t.Errorf("tail peak %v not decayed from head peak %v", tail, head)
	}
	if head > 1 {
		t.Errorf("head peak %v clips", head)
	}
}

func TestChimeZeroDuration(t *testing.T) {
	chime, err := Chime(44100, 880, 0)
	if err != nil {
		t.Fatalf("Chime() error = %v", err)
	}
	if got := drain(chime); len(got) != 0 {
		t.Errorf("zero-length chime produced %d samples", len(got))
	}
}

func TestChimeRejectsBadFrequency(t *testing.T) {
	tests := []struct {
		name string
		freq float64
	}{
		{"zero", 0},
		{"negative", -440},
		{"fifth above nyquist", 20000},
		{"root above nyquist", 30000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Chime(44100, tt.freq, 100*time.Millisecond); err == nil {
				t.Errorf("Chime(44100, %v) error = nil, want error", tt.freq)
			}
		})
	}
	if _, err := Chime(44100, 0, time.Second); !errors.Is(err, ErrBadFrequency) {
		t.Errorf("zero frequency error = %v, want ErrBadFrequency", err)
	}
}

func TestBurstPropagatesChimeError(t *testing.T) {
	p := NewPlayer(Options{SampleRate: 44100, ChimeFrequency: 20000, ChimeDuration: 50 * time.Millisecond})
	if _, err := p.Burst(); err == nil {
		t.Error("Burst() error = nil for a chime above the Nyquist limit")
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burst.ogg")
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewPlayer(Options{SampleRate: 44100})
	if err := p.Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load() error = %v, want ErrUnsupportedFormat", err)
	}
	if p.Name() != "chime" {
		t.Errorf("Name() = %q after failed load, want chime", p.Name())
	}
}

func TestLoadMissingFile(t *testing.T) {
	p := NewPlayer(Options{SampleRate: 44100})
	if err := p.Load(filepath.Join(t.TempDir(), "absent.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadWavResamples(t *testing.T) {
	src := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	path := filepath.Join(t.TempDir(), "burst.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	chime, err := Chime(src.SampleRate, 440, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("Chime() error = %v", err)
	}
	if err := wav.Encode(f, chime, src); err != nil {
		t.Fatalf("wav.Encode() error = %v", err)
	}
	f.Close()

	p := NewPlayer(Options{SampleRate: 44100})
	if err := p.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name() != "burst.wav" {
		t.Errorf("Name() = %q, want burst.wav", p.Name())
	}

	burst, err := p.Burst()
	if err != nil {
		t.Fatalf("Burst() error = %v", err)
	}
	got := len(drain(burst))
	want := beep.SampleRate(44100).N(100 * time.Millisecond)
	if math.Abs(float64(got-want)) > float64(want)/10 {
		t.Errorf("burst length = %d samples, want about %d", got, want)
	}
}

func TestBurstAppliesVolume(t *testing.T) {
	plain := NewPlayer(Options{SampleRate: 44100, ChimeFrequency: 880, ChimeDuration: 50 * time.Millisecond})
	s, err := plain.Burst()
	if err != nil {
		t.Fatalf("Burst() error = %v", err)
	}
	if _, ok := s.(*effects.Volume); ok {
		t.Error("Burst() wrapped in Volume with zero volume")
	}

	quiet := NewPlayer(Options{SampleRate: 44100, ChimeFrequency: 880, ChimeDuration: 50 * time.Millisecond, Volume: -1})
	s, err = quiet.Burst()
	if err != nil {
		t.Fatalf("Burst() error = %v", err)
	}
	v, ok := s.(*effects.Volume)
	if !ok {
		t.Fatal("Burst() not wrapped in Volume")
	}
	if v.Volume != -1 || v.Base != 2 {
		t.Errorf("volume = %+v, want base 2 volume -1", v)
	}
}

func TestPlayBurstBeforeInit(t *testing.T) {
	p := NewPlayer(Options{SampleRate: 44100, ChimeFrequency: 880, ChimeDuration: 50 * time.Millisecond})
	if err := p.PlayBurst(); err != nil {
		t.Errorf("PlayBurst() error = %v before Init, want nil", err)
	}
	if l := p.Level(); l != 0 {
		t.Errorf("Level() = %v before Init, want 0", l)
	}
}
