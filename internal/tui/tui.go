// Package tui hosts the shiny button in a terminal. One cell stands for a
// CellWidth x CellHeight block of pixels so the glow keeps its pixel-space
// behavior.
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/shiny-button/internal/config"
	"github.com/iburimskiy/shiny-button/internal/frame"
	"github.com/iburimskiy/shiny-button/internal/mathx"
	"github.com/iburimskiy/shiny-button/internal/shiny"
	"github.com/iburimskiy/shiny-button/internal/sound"
	"github.com/iburimskiy/shiny-button/internal/style"
)

type App struct {
	screen tcell.Screen
	cfg    *config.Config
	theme  style.Style
	frames frame.Queue
	button *shiny.Button
	player *sound.Player

	pointer   shiny.PointerState
	elapsed   time.Duration
	showDebug bool
	lastErr   error
}

// New builds the app on an initialized screen and mounts the button.
func New(screen tcell.Screen, cfg *config.Config) (*App, error) {
	theme, err := cfg.Theme()
	if err != nil {
		return nil, err
	}

	a := &App{
		screen: screen,
		cfg:    cfg,
		theme:  theme,
		button: shiny.NewButton(cfg.Button.Label, cfg.ButtonRect(), cfg.Params()),
		// Start off-screen so the first frame is not a hover.
		pointer: shiny.PointerState{Pos: mathx.Pt(-1, -1)},
	}
	a.button.OnPress = a.onPress

	if cfg.Audio.Enabled {
		a.player = sound.NewPlayer(sound.Options{
			SampleRate:     cfg.Audio.SampleRate,
			Volume:         cfg.Audio.Volume,
			ChimeFrequency: cfg.Audio.ChimeFrequency,
			ChimeDuration:  cfg.Audio.ChimeDuration,
			RingSize:       config.LevelRingSize,
		})
		if err := a.player.Init(); err != nil {
			// Non-fatal, the button works without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		if cfg.Audio.BurstSound != "" {
			if err := a.player.Load(cfg.Audio.BurstSound); err != nil {
				log.Printf("Failed to load burst sound: %v", err)
			}
		}
	}

	screen.EnableMouse()
	screen.HideCursor()
	a.layout()
	a.button.Mount(&a.frames)
	return a, nil
}

func (a *App) onPress() {
	if a.player == nil {
		return
	}
	if err := a.player.PlayBurst(); err != nil {
		a.lastErr = err
	}
}

// Close unmounts the button and releases audio. The caller finalizes the
// screen.
func (a *App) Close() {
	a.button.Unmount()
	if a.player != nil {
		a.player.Close()
	}
}

// Run drives frames at the configured interval until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(a.cfg.Terminal.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.step(a.cfg.Terminal.FrameInterval)
		}
	}
}

// step advances one frame and repaints.
func (a *App) step(dt time.Duration) {
	a.button.Update(a.pointer)
	a.frames.Flush()
	a.elapsed += dt
	a.draw()
	a.screen.Show()
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
			a.showDebug = !a.showDebug
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.pointer = shiny.PointerState{
			Pos:     a.cellCenter(x, y),
			Pressed: ev.Buttons()&tcell.Button1 != 0,
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
	}
	return true
}

// layout centers the button on the screen, snapped to whole cells.
func (a *App) layout() {
	cols, rows := a.screen.Size()
	cw, ch := a.cfg.Terminal.CellWidth, a.cfg.Terminal.CellHeight

	wCells := int(a.cfg.Button.Width / cw)
	hCells := int(a.cfg.Button.Height / ch)
	if n := len([]rune(a.button.Label)) + 2; wCells < n {
		wCells = n
	}
	if hCells < 3 {
		hCells = 3
	}
	x := (cols - wCells) / 2
	y := (rows - hCells) / 2
	if x < 0 {
		x = 0
	}
	if y < 1 {
		y = 1
	}

	a.button.Bounds = shiny.Rect{
		X: float64(x) * cw,
		Y: float64(y) * ch,
		W: float64(wCells) * cw,
		H: float64(hCells) * ch,
	}
}

func (a *App) cellCenter(x, y int) mathx.Point {
	cw, ch := a.cfg.Terminal.CellWidth, a.cfg.Terminal.CellHeight
	return mathx.Pt(float64(x)*cw+cw/2, float64(y)*ch+ch/2)
}

// cellRect returns the button's extent in cells.
func (a *App) cellRect() (x0, y0, x1, y1 int) {
	cw, ch := a.cfg.Terminal.CellWidth, a.cfg.Terminal.CellHeight
	r := a.button.Bounds
	return int(r.X / cw), int(r.Y / ch), int((r.X + r.W) / cw), int((r.Y + r.H) / ch)
}

func (a *App) draw() {
	a.screen.Clear()
	b := a.button

	level := 0.0
	if a.player != nil {
		level = a.player.Level()
	}
	seconds := a.elapsed.Seconds()
	glow := a.theme.Glow(seconds, level)
	surface := a.theme.SurfaceFor(b.Hovered(), b.Pressed())
	center, radius := b.GlowCircle()

	x0, y0, x1, y1 := a.cellRect()
	border := tcell.StyleDefault.Foreground(tcellColor(a.theme.Border))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			bg := shade(surface, glow, mathx.Distance(a.cellCenter(x, y), center), radius)
			st := border.Background(tcellColor(bg))
			a.screen.SetContent(x, y, borderRune(x, y, x0, y0, x1-1, y1-1), nil, st)
		}
	}

	// Label on the middle row, keeping the glow behind each glyph.
	label := []rune(b.Label)
	labelY := y0 + (y1-y0)/2
	labelX := x0 + (x1-x0-len(label))/2
	for i, r := range label {
		x := labelX + i
		_, _, st, _ := a.screen.GetContent(x, labelY)
		a.screen.SetContent(x, labelY, r, nil, st.Foreground(tcellColor(a.theme.Label)).Bold(true))
	}

	status := "Press and hold the button | q: quit"
	if a.player != nil {
		status += " | burst: " + a.player.Name()
	}
	if a.lastErr != nil {
		status += " | Error: " + a.lastErr.Error()
	}
	a.print(0, 0, status)

	if a.showDebug {
		m := b.Magic()
		_, rows := a.screen.Size()
		a.print(0, rows-1, fmt.Sprintf("%s  mode=%s", m.Transform(), m.Mode()))
	}
}

func (a *App) print(x, y int, s string) {
	col := x
	for _, r := range s {
		a.screen.SetContent(col, y, r, nil, tcell.StyleDefault)
		col++
	}
}

// shade blends the glow into the surface, fading toward the glow's rim.
func shade(surface, glow colorful.Color, d, radius float64) colorful.Color {
	if radius <= 0 || d >= radius {
		return surface
	}
	strength := mathx.Clamp01(1 - d/radius)
	return surface.BlendRgb(glow, 0.35+0.65*strength).Clamped()
}

func borderRune(x, y, left, top, right, bottom int) rune {
	switch {
	case x == left && y == top:
		return '┌'
	case x == right && y == top:
		return '┐'
	case x == left && y == bottom:
		return '└'
	case x == right && y == bottom:
		return '┘'
	case y == top || y == bottom:
		return '─'
	case x == left || x == right:
		return '│'
	default:
		return ' '
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
