package shiny

import "github.com/iburimskiy/shiny-button/internal/mathx"

// PointerState is the host's pointer as polled once per frame.
type PointerState struct {
	Pos     mathx.Point
	Pressed bool
}

// PointerTracker turns polled pointer state into the move, down, up and
// leave events a Magic expects, plus click detection.
type PointerTracker struct {
	inside  bool
	pressed bool
	armed   bool
	last    mathx.Point
}

// Update feeds one frame of pointer state and reports whether a click
// (press and release both inside bounds) completed on this frame.
func (t *PointerTracker) Update(state PointerState, bounds Rect, m *Magic) (clicked bool) {
	inside := bounds.Contains(state.Pos)

	switch {
	case inside && (!t.inside || state.Pos != t.last):
		m.PointerMove(state.Pos, bounds)
	case !inside && t.inside:
		m.PointerLeave()
		t.armed = false
	}

	justPressed := state.Pressed && !t.pressed
	justReleased := !state.Pressed && t.pressed

	if justPressed && inside {
		m.PointerDown()
		t.armed = true
	}
	if justReleased {
		if inside {
			m.PointerUp()
		}
		clicked = t.armed && inside
		t.armed = false
	}

	t.inside = inside
	t.pressed = state.Pressed
	t.last = state.Pos
	return clicked
}

// Inside reports whether the pointer was over the widget on the last update.
func (t *PointerTracker) Inside() bool { return t.inside }

// Held reports whether a press that started on the widget is still down.
func (t *PointerTracker) Held() bool { return t.armed }

// Reset forgets all pointer history.
func (t *PointerTracker) Reset() {
	*t = PointerTracker{}
}
