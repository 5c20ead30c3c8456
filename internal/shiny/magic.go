// Package shiny implements the shiny button: a clickable surface whose glow
// trails the pointer and bursts toward the center while pressed.
package shiny

import (
	"fmt"
	"math"

	"github.com/iburimskiy/shiny-button/internal/frame"
	"github.com/iburimskiy/shiny-button/internal/mathx"
)

// Mode is the interaction state of the glow.
type Mode int

const (
	// Idle: the glow trails the cursor and shrinks near it.
	Idle Mode = iota
	// Active: the glow centers itself and grows.
	Active
)

func (m Mode) String() string {
	if m == Active {
		return "active"
	}
	return "idle"
}

// Rect is a measured bounding box in host pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Origin() mathx.Point {
	return mathx.Pt(r.X, r.Y)
}

// Contains reports whether p lies on the rectangle, edges included.
func (r Rect) Contains(p mathx.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Params tunes the glow animation.
type Params struct {
	BaseRadius      float64
	FollowStep      float64
	ActiveStep      float64
	ScaleStep       float64
	ActiveScale     float64
	ProximityRadius float64
	MinScale        float64
	MaxScale        float64
	LeavePoint      mathx.Point
}

func DefaultParams() Params {
	return Params{
		BaseRadius:      50,
		FollowStep:      0.03,
		ActiveStep:      0.1,
		ScaleStep:       0.1,
		ActiveScale:     15,
		ProximityRadius: 40,
		MinScale:        0.2,
		MaxScale:        1,
		LeavePoint:      mathx.Pt(150, -50),
	}
}

// Transform is the translate and scale applied to the glow element.
type Transform struct {
	Translate mathx.Point
	Scale     float64
}

func (t Transform) String() string {
	return fmt.Sprintf("translate(%.2fpx,%.2fpx) scale(%.3f)", t.Translate.X, t.Translate.Y, t.Scale)
}

// Magic owns the glow's animated state. It is not safe for concurrent use;
// every method is meant to be called from the host's frame loop.
type Magic struct {
	params Params

	cursor mathx.Point
	circle mathx.Point
	scale  float64
	mode   Mode

	// bounds returns the widget's current measurement.
	bounds func() Rect
	cancel func()
}

// NewMagic returns an unmounted glow. bounds may be nil, in which case the
// widget measures as a zero rect.
func NewMagic(params Params, bounds func() Rect) *Magic {
	m := &Magic{params: params, bounds: bounds}
	m.reset()
	return m
}

func (m *Magic) reset() {
	m.cursor = mathx.Point{}
	m.circle = mathx.Point{}
	m.scale = 1
	m.mode = Idle
}

func (m *Magic) measure() Rect {
	if m.bounds == nil {
		return Rect{}
	}
	return m.bounds()
}

// Mount starts the per-frame update on host. Mounting again re-arms the loop.
func (m *Magic) Mount(host frame.Host) {
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = frame.Start(host, m.Tick)
}

// Unmount stops the frame loop and discards the animated state.
func (m *Magic) Unmount() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.reset()
}

func (m *Magic) Mounted() bool {
	return m.cancel != nil
}

// Tick advances the animation by one frame.
func (m *Magic) Tick() {
	p := m.params
	half := m.scale * p.BaseRadius / 2
	prev := m.circle

	if m.mode == Active {
		r := m.measure()
		center := mathx.Pt(r.W/2, r.H/2).Offset(half)
		m.circle = m.circle.Lerp(center, p.ActiveStep)
		m.scale = mathx.Lerp(m.scale, p.ActiveScale, p.ScaleStep)
		return
	}

	m.circle = m.circle.Lerp(m.cursor.Offset(half), p.FollowStep)
	m.scale = mathx.Lerp(m.scale, m.proximityScale(prev), p.ScaleStep)
}

// proximityScale shrinks the glow as it nears the cursor. Coincident points
// give the largest scale, the same value clamp yields for +Inf.
func (m *Magic) proximityScale(circle mathx.Point) float64 {
	p := m.params
	d := mathx.Distance(circle, m.cursor)
	if d == 0 || math.IsNaN(d) {
		return p.MaxScale
	}
	return mathx.Clamp(p.ProximityRadius/d, p.MinScale, p.MaxScale)
}

// PointerMove records the cursor relative to bounds, clamped to its extent.
func (m *Magic) PointerMove(client mathx.Point, bounds Rect) {
	rel := client.Sub(bounds.Origin())
	m.cursor = mathx.Pt(
		mathx.Clamp(rel.X, 0, bounds.W),
		mathx.Clamp(rel.Y, 0, bounds.H),
	)
}

func (m *Magic) PointerDown() {
	m.mode = Active
}

func (m *Magic) PointerUp() {
	m.mode = Idle
}

// PointerLeave parks the cursor off the widget and forces idle mode so the
// glow drifts out of view.
func (m *Magic) PointerLeave() {
	m.cursor = m.params.LeavePoint
	m.mode = Idle
}

func (m *Magic) Cursor() mathx.Point { return m.cursor }
func (m *Magic) Circle() mathx.Point { return m.circle }
func (m *Magic) Scale() float64      { return m.scale }
func (m *Magic) Mode() Mode          { return m.mode }
func (m *Magic) Params() Params      { return m.params }

func (m *Magic) Transform() Transform {
	return Transform{Translate: m.circle, Scale: m.scale}
}
