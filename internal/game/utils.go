package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/shiny-button/internal/mathx"
	"github.com/iburimskiy/shiny-button/internal/shiny"
)

// smoothLevel eases the audio level so the glow does not flicker.
func smoothLevel(prev, next float64) float64 {
	return mathx.Clamp01(smoothingFactor*prev + (1-smoothingFactor)*next)
}

// clipTo returns the part of dst covered by r, so drawing on it behaves
// like overflow: hidden on the button surface.
func clipTo(dst *ebiten.Image, r shiny.Rect) *ebiten.Image {
	rect := image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
	return dst.SubImage(rect).(*ebiten.Image)
}

// cursorState polls Ebitengine's mouse as one frame of pointer state.
func cursorState() shiny.PointerState {
	x, y := ebiten.CursorPosition()
	return shiny.PointerState{
		Pos:     mathx.Pt(float64(x), float64(y)),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
