// Package hud draws the text layer: score, enemy count, and the ready and
// game over screens.
package hud

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var overlayColor = color.RGBA{0, 0, 0, 0xa8}

type HUD struct {
	width, height int

	small  font.Face
	medium font.Face
	large  font.Face
	huge   font.Face
}

func New(width, height int) (*HUD, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	h := &HUD{width: width, height: height}
	for _, f := range []struct {
		face *font.Face
		size float64
	}{
		{&h.small, 16},
		{&h.medium, 20},
		{&h.large, 24},
		{&h.huge, 48},
	} {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font face %vpx: %w", f.size, err)
		}
		*f.face = face
	}
	return h, nil
}

// DrawStatus draws the score and the live enemy target at the top left.
func (h *HUD) DrawStatus(dst *ebiten.Image, score, enemies int) {
	text.Draw(dst, fmt.Sprintf("Score: %d", score), h.small, 10, 20, colornames.White)
	text.Draw(dst, fmt.Sprintf("Enemy: %d", enemies), h.small, 10, 50, colornames.White)
}

func (h *HUD) DrawReady(dst *ebiten.Image) {
	h.centered(dst, "Press any key to start.", h.large, h.height/2, colornames.White)
}

// DrawGameOver dims the whole field and shows the final score.
func (h *HUD) DrawGameOver(dst *ebiten.Image, score int) {
	vector.DrawFilledRect(dst, 0, 0, float32(h.width), float32(h.height), overlayColor, false)

	cy := h.height / 2
	h.centered(dst, "Game over", h.huge, cy, colornames.Red)
	h.centered(dst, "Press any key to restart.", h.medium, cy+60, colornames.White)
	h.centered(dst, fmt.Sprintf("Score: %d", score), h.large, cy-80, colornames.White)
}

// centered draws s with its baseline at y, horizontally centred.
func (h *HUD) centered(dst *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	b := text.BoundString(face, s)
	x := h.width/2 - b.Min.X - b.Dx()/2
	text.Draw(dst, s, face, x, y, clr)
}
