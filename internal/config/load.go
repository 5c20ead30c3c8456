// Package config loads the shiny button settings from YAML.
//
// Every field has a default from config.go; a file only needs the keys it
// changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/shiny-button/internal/mathx"
	"github.com/iburimskiy/shiny-button/internal/shiny"
	"github.com/iburimskiy/shiny-button/internal/style"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Button   ButtonConfig   `yaml:"button"`
	Magic    MagicConfig    `yaml:"magic"`
	Style    StyleConfig    `yaml:"style"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ButtonConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Label  string  `yaml:"label"`
}

// MagicConfig tunes the glow. Steps are per-frame interpolation factors.
type MagicConfig struct {
	BaseRadius      float64 `yaml:"baseRadius"`
	FollowStep      float64 `yaml:"followStep"`
	ActiveStep      float64 `yaml:"activeStep"`
	ScaleStep       float64 `yaml:"scaleStep"`
	ActiveScale     float64 `yaml:"activeScale"`
	ProximityRadius float64 `yaml:"proximityRadius"`
	MinScale        float64 `yaml:"minScale"`
	MaxScale        float64 `yaml:"maxScale"`
	LeaveX          float64 `yaml:"leaveX"`
	LeaveY          float64 `yaml:"leaveY"`
}

// StyleConfig holds colors as "#rrggbb".
type StyleConfig struct {
	Surface        string  `yaml:"surface"`
	Hover          string  `yaml:"hover"`
	Pressed        string  `yaml:"pressed"`
	Border         string  `yaml:"border"`
	Label          string  `yaml:"label"`
	GlowHue        float64 `yaml:"glowHue"`
	GlowSaturation float64 `yaml:"glowSaturation"`
	GlowValue      float64 `yaml:"glowValue"`
	HueDrift       float64 `yaml:"hueDrift"`
}

type AudioConfig struct {
	Enabled        bool          `yaml:"enabled"`
	SampleRate     int           `yaml:"sampleRate"`
	Volume         float64       `yaml:"volume"` // in halvings (log2), 0 = unchanged
	BurstSound     string        `yaml:"burstSound"`
	ChimeFrequency float64       `yaml:"chimeFrequency"`
	ChimeDuration  time.Duration `yaml:"chimeDuration"`
}

type TerminalConfig struct {
	FrameInterval time.Duration `yaml:"frameInterval"`
	CellWidth     float64       `yaml:"cellWidth"`
	CellHeight    float64       `yaml:"cellHeight"`
}

func Default() *Config {
	st := style.Default()
	return &Config{
		Window: WindowConfig{Width: WindowWidth, Height: WindowHeight, Title: WindowTitle},
		Button: ButtonConfig{X: ButtonX, Y: ButtonY, Width: ButtonWidth, Height: ButtonHeight, Label: ButtonLabel},
		Magic: MagicConfig{
			BaseRadius:      BaseRadius,
			FollowStep:      FollowStep,
			ActiveStep:      ActiveStep,
			ScaleStep:       ScaleStep,
			ActiveScale:     ActiveScale,
			ProximityRadius: ProximityRadius,
			MinScale:        MinScale,
			MaxScale:        MaxScale,
			LeaveX:          LeaveX,
			LeaveY:          LeaveY,
		},
		Style: StyleConfig{
			Surface:        st.Surface.Hex(),
			Hover:          st.Hover.Hex(),
			Pressed:        st.Pressed.Hex(),
			Border:         st.Border.Hex(),
			Label:          st.Label.Hex(),
			GlowHue:        st.GlowHue,
			GlowSaturation: st.GlowSaturation,
			GlowValue:      st.GlowValue,
			HueDrift:       st.HueDrift,
		},
		Audio: AudioConfig{
			Enabled:        true,
			SampleRate:     SampleRate,
			ChimeFrequency: ChimeFrequency,
			ChimeDuration:  ChimeDuration,
		},
		Terminal: TerminalConfig{
			FrameInterval: FrameInterval,
			CellWidth:     CellWidth,
			CellHeight:    CellHeight,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Button.Width <= 0 || c.Button.Height <= 0:
		return fmt.Errorf("%w: button size %vx%v", ErrInvalid, c.Button.Width, c.Button.Height)
	case c.Magic.BaseRadius <= 0:
		return fmt.Errorf("%w: magic.baseRadius must be positive", ErrInvalid)
	case c.Magic.MinScale > c.Magic.MaxScale:
		return fmt.Errorf("%w: magic.minScale %v above magic.maxScale %v", ErrInvalid, c.Magic.MinScale, c.Magic.MaxScale)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sampleRate must be positive", ErrInvalid)
	case c.Audio.Enabled && (c.Audio.ChimeFrequency <= 0 || c.Audio.ChimeFrequency*3/2 >= float64(c.Audio.SampleRate)/2):
		return fmt.Errorf("%w: audio.chimeFrequency %v needs its fifth below half of %d Hz", ErrInvalid, c.Audio.ChimeFrequency, c.Audio.SampleRate)
	case c.Terminal.FrameInterval <= 0:
		return fmt.Errorf("%w: terminal.frameInterval must be positive", ErrInvalid)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("%w: terminal cell size %vx%v", ErrInvalid, c.Terminal.CellWidth, c.Terminal.CellHeight)
	}

	steps := map[string]float64{
		"followStep": c.Magic.FollowStep,
		"activeStep": c.Magic.ActiveStep,
		"scaleStep":  c.Magic.ScaleStep,
	}
	for name, v := range steps {
		if v <= 0 || v > 1 {
			return fmt.Errorf("%w: magic.%s %v outside (0, 1]", ErrInvalid, name, v)
		}
	}

	if _, err := c.Theme(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Params converts the magic section for the widget.
func (c *Config) Params() shiny.Params {
	m := c.Magic
	return shiny.Params{
		BaseRadius:      m.BaseRadius,
		FollowStep:      m.FollowStep,
		ActiveStep:      m.ActiveStep,
		ScaleStep:       m.ScaleStep,
		ActiveScale:     m.ActiveScale,
		ProximityRadius: m.ProximityRadius,
		MinScale:        m.MinScale,
		MaxScale:        m.MaxScale,
		LeavePoint:      mathx.Pt(m.LeaveX, m.LeaveY),
	}
}

// ButtonRect is the button's bounding box in window pixels.
func (c *Config) ButtonRect() shiny.Rect {
	b := c.Button
	return shiny.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Theme parses the style section.
func (c *Config) Theme() (style.Style, error) {
	s := c.Style
	return style.Parse(style.Palette{
		Surface:        s.Surface,
		Hover:          s.Hover,
		Pressed:        s.Pressed,
		Border:         s.Border,
		Label:          s.Label,
		GlowHue:        s.GlowHue,
		GlowSaturation: s.GlowSaturation,
		GlowValue:      s.GlowValue,
		HueDrift:       s.HueDrift,
	})
}
