//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the current mode and simulation counters in the top-left corner.
type HUD struct {
	face  *basicfont.Face
	color color.Color
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	return &HUD{
		face:  basicfont.Face7x13,
		color: color.RGBA{R: 230, G: 70, B: 70, A: 255},
	}
}

// Draw paints the status line.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil {
		return
	}
	line := fmt.Sprintf("%s | gen %d | pop %d", s.Mode, s.Generation, s.Population)
	text.Draw(screen, line, h.face, 8, 16, h.color)
}
