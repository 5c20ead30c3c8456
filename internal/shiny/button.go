package shiny

import (
	"github.com/iburimskiy/shiny-button/internal/frame"
	"github.com/iburimskiy/shiny-button/internal/mathx"
)

// Button is the clickable surface carrying a label and the glow overlay.
type Button struct {
	Label  string
	Bounds Rect

	// OnClick runs when a press and release both land on the button.
	OnClick func()
	// OnPress runs on the press edge, when the burst starts.
	OnPress func()

	magic   *Magic
	tracker PointerTracker
}

func NewButton(label string, bounds Rect, params Params) *Button {
	b := &Button{Label: label, Bounds: bounds}
	b.magic = NewMagic(params, func() Rect { return b.Bounds })
	return b
}

func (b *Button) Mount(host frame.Host) {
	b.tracker.Reset()
	b.magic.Mount(host)
}

func (b *Button) Unmount() {
	b.magic.Unmount()
	b.tracker.Reset()
}

// Update routes one frame of pointer state into the glow.
func (b *Button) Update(state PointerState) {
	wasActive := b.magic.Mode() == Active
	clicked := b.tracker.Update(state, b.Bounds, b.magic)

	if !wasActive && b.magic.Mode() == Active && b.OnPress != nil {
		b.OnPress()
	}
	if clicked && b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Hovered() bool { return b.tracker.Inside() }
func (b *Button) Pressed() bool { return b.tracker.Held() }

func (b *Button) Magic() *Magic { return b.magic }

func (b *Button) Transform() Transform { return b.magic.Transform() }

// GlowCircle returns the glow's center in host pixels and its drawn radius.
// The glow element is BaseRadius wide and scales about its own center.
func (b *Button) GlowCircle() (center mathx.Point, radius float64) {
	p := b.magic.Params()
	t := b.magic.Transform()
	half := p.BaseRadius / 2
	center = b.Bounds.Origin().Add(t.Translate).Add(mathx.Pt(half, half))
	return center, half * t.Scale
}
