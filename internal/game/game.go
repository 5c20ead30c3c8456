// Package game hosts the shiny button in an Ebitengine window.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/shiny-button/internal/config"
	"github.com/iburimskiy/shiny-button/internal/frame"
	"github.com/iburimskiy/shiny-button/internal/shiny"
	"github.com/iburimskiy/shiny-button/internal/sound"
	"github.com/iburimskiy/shiny-button/internal/style"
)

const (
	smoothingFactor = 0.6
	tps             = 60.0
	charWidth       = 6 // debug font glyph width
	charHeight      = 16
)

// dialogResult carries the outcome of a file dialog back to Update.
type dialogResult struct {
	path string
	err  error
}

type Game struct {
	cfg    *config.Config
	theme  style.Style
	frames frame.Queue
	button *shiny.Button
	player *sound.Player

	// viz
	time  float64
	level float64

	dialogs    chan dialogResult
	dialogOpen bool
	showDebug  bool
	lastErr    error
}

func NewGame(cfg *config.Config) (*Game, error) {
	theme, err := cfg.Theme()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		theme:   theme,
		button:  shiny.NewButton(cfg.Button.Label, cfg.ButtonRect(), cfg.Params()),
		dialogs: make(chan dialogResult, 1),
	}
	g.button.OnPress = g.onPress

	if cfg.Audio.Enabled {
		g.player = sound.NewPlayer(sound.Options{
			SampleRate:     cfg.Audio.SampleRate,
			Volume:         cfg.Audio.Volume,
			ChimeFrequency: cfg.Audio.ChimeFrequency,
			ChimeDuration:  cfg.Audio.ChimeDuration,
			RingSize:       config.LevelRingSize,
		})
		if err := g.player.Init(); err != nil {
			// Non-fatal, the button works without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		if cfg.Audio.BurstSound != "" {
			if err := g.player.Load(cfg.Audio.BurstSound); err != nil {
				log.Printf("Failed to load burst sound: %v", err)
			}
		}
	}

	g.button.Mount(&g.frames)
	return g, nil
}

// Close unmounts the button and releases audio.
func (g *Game) Close() {
	g.button.Unmount()
	if g.player != nil {
		g.player.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openSoundDialog()
	}

	g.pollDialog()

	if !g.dialogOpen {
		g.button.Update(cursorState())
	}

	g.frames.Flush()

	g.time += 1.0 / tps
	if g.player != nil {
		g.level = smoothLevel(g.level, g.player.Level())
	}
	return nil
}

func (g *Game) onPress() {
	if g.player == nil {
		return
	}
	if err := g.player.PlayBurst(); err != nil {
		g.lastErr = err
	}
}

func (g *Game) openSoundDialog() {
	if g.player == nil || g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Choose Burst Sound"),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: []string{"*.wav", "*.mp3", "*.flac"},
			}},
		)
		g.dialogs <- dialogResult{path: path, err: err}
	}()
}

func (g *Game) pollDialog() {
	select {
	case res := <-g.dialogs:
		g.dialogOpen = false
		g.lastErr = g.applyDialog(res)
	default:
	}
}

func (g *Game) applyDialog(res dialogResult) error {
	if res.err != nil {
		if errors.Is(res.err, zenity.ErrCanceled) {
			return nil
		}
		return res.err
	}
	if err := g.player.Load(res.path); err != nil {
		return err
	}
	log.Printf("Loaded burst sound %v", res.path)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(style.RGBA(g.theme.Pressed, 1))

	g.drawButton(screen)

	status := "Press and hold the button"
	if g.player != nil {
		status += " | O: choose sound | burst: " + g.player.Name()
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	if g.showDebug {
		m := g.button.Magic()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  mode=%s  cursor=(%.0f,%.0f)",
			m.Transform(), m.Mode(), m.Cursor().X, m.Cursor().Y), 12, g.cfg.Window.Height-24)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	b := g.button
	r := b.Bounds

	bg := g.theme.SurfaceFor(b.Hovered(), b.Pressed())
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), style.RGBA(bg, 1), false)

	// Glow, clipped to the surface
	center, radius := b.GlowCircle()
	surface := clipTo(screen, r)
	glow := g.theme.Glow(g.time, g.level)
	vector.DrawFilledCircle(surface, float32(center.X), float32(center.Y), float32(radius), style.RGBA(glow, 0.85), true)

	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, style.RGBA(g.theme.Border, 1), false)

	// Label over the glow
	textWidth := len(b.Label) * charWidth
	textX := int(r.X) + (int(r.W)-textWidth)/2
	textY := int(r.Y) + (int(r.H)-charHeight)/2
	ebitenutil.DebugPrintAt(screen, b.Label, textX, textY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
