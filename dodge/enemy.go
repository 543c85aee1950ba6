package dodge

import (
	"image/color"
	"math"

	"github.com/tsujio/game-util/mathutil"
)

// spinStep is the per-tick rotation before scaling by the enemy's spin.
const spinStep = math.Pi / 2

type Enemy struct {
	Entity
	Velocity *mathutil.Vector2D
	Spin     float64
	Homing   bool
}

func NewEnemy(size int, velocity *mathutil.Vector2D, spin float64, tint color.Color) *Enemy {
	return &Enemy{
		Entity:   newEntity(KindEnemy, size, size, tint),
		Velocity: velocity,
		Spin:     spin,
	}
}

// Next advances the enemy by one tick and reports whether it is still
// inside the off-screen margin: one field size beyond the top/left edges
// and two field sizes beyond the origin on the bottom/right.
func (e *Enemy) Next(fieldWidth, fieldHeight int) bool {
	e.Rotation += spinStep * e.Spin
	e.Pos = e.Pos.Add(e.Velocity)

	w, h := float64(fieldWidth), float64(fieldHeight)
	return e.Pos.X >= -w && e.Pos.X <= 2*w &&
		e.Pos.Y >= -h && e.Pos.Y <= 2*h
}
