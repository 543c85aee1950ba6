// Package dodge implements the rules of the dodging game: entities,
// enemy spawning, collision, and the ready/playing/game-over loop.
// Nothing here draws or polls devices, so it runs headless.
package dodge

import (
	"image/color"

	"github.com/tsujio/game-util/mathutil"
)

type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// Entity is the placement shared by every sprite on the field. Pos is the
// top-left corner of the bounding box and may lie off-canvas.
type Entity struct {
	Kind     Kind
	Pos      *mathutil.Vector2D
	W, H     int
	Rotation float64
	// Tint, when set, replaces the colour of the sprite's opaque pixels.
	Tint color.Color
}

func newEntity(kind Kind, w, h int, tint color.Color) Entity {
	return Entity{
		Kind: kind,
		Pos:  mathutil.NewVector2D(0, 0),
		W:    w,
		H:    h,
		Tint: tint,
	}
}

// Spawn places the entity. With centered set, (x, y) is the desired
// centre rather than the top-left corner.
func (e *Entity) Spawn(x, y float64, centered bool) {
	if centered {
		x -= float64(e.W) / 2
		y -= float64(e.H) / 2
	}
	e.Pos = mathutil.NewVector2D(x, y)
}

func (e *Entity) Move(dx, dy float64) {
	e.Pos = e.Pos.Add(mathutil.NewVector2D(dx, dy))
}

// Rotate sets the absolute rotation in radians.
func (e *Entity) Rotate(angle float64) {
	e.Rotation = angle
}

func (e *Entity) Center() *mathutil.Vector2D {
	return mathutil.NewVector2D(e.Pos.X+float64(e.W)/2, e.Pos.Y+float64(e.H)/2)
}
