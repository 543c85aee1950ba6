package dodge

import (
	"image/color"
	"math/rand"

	"github.com/tsujio/game-util/mathutil"
)

type spawnMode int

const (
	spawnTop spawnMode = iota
	spawnRight
	spawnBottom
	spawnLeft
	spawnHoming

	spawnModeCount
)

// Spawner creates enemies just outside the field.
type Spawner struct {
	random      *rand.Rand
	fieldWidth  int
	fieldHeight int

	minSize, maxSize   int
	minSpeed, maxSpeed int
	minSpin, maxSpin   float64
	homingTint         color.Color
}

// RandomEnemy picks a size, a speed, and one of five equally likely
// modes: four straight lines crossing the field from an edge, or a homing
// shot from one of the eight compass points aimed at target's centre.
func (s *Spawner) RandomEnemy(target *Entity) *Enemy {
	size := s.minSize + s.random.Intn(s.maxSize-s.minSize)
	speed := float64(s.minSpeed + s.random.Intn(s.maxSpeed-s.minSpeed))
	spin := s.minSpin + s.random.Float64()*(s.maxSpin-s.minSpin)
	x := float64(s.random.Intn(s.fieldWidth))
	y := float64(s.random.Intn(s.fieldHeight))
	mode := spawnMode(s.random.Intn(int(spawnModeCount)))

	w, h, sz := float64(s.fieldWidth), float64(s.fieldHeight), float64(size)

	var pos, v *mathutil.Vector2D
	var tint color.Color
	switch mode {
	case spawnTop:
		pos, v = mathutil.NewVector2D(x, -sz), mathutil.NewVector2D(0, speed)
	case spawnRight:
		pos, v = mathutil.NewVector2D(w+sz, y), mathutil.NewVector2D(-speed, 0)
	case spawnBottom:
		pos, v = mathutil.NewVector2D(x, h+sz), mathutil.NewVector2D(0, -speed)
	case spawnLeft:
		pos, v = mathutil.NewVector2D(-sz, y), mathutil.NewVector2D(speed, 0)
	default:
		pos, v = s.homing(x, y, sz, speed, target)
		tint = s.homingTint
	}

	e := NewEnemy(size, v, spin, tint)
	e.Homing = mode == spawnHoming
	e.Spawn(pos.X, pos.Y, true)
	return e
}

// homing returns the spawn centre and the velocity aimed at target.
// The "no offset" compass point is redrawn.
func (s *Spawner) homing(x, y, size, speed float64, target *Entity) (*mathutil.Vector2D, *mathutil.Vector2D) {
	for {
		dx := s.random.Intn(3) - 1
		dy := s.random.Intn(3) - 1
		if dx == 0 && dy == 0 {
			continue
		}

		pos := mathutil.NewVector2D(
			compass(dx, x, size, float64(s.fieldWidth)),
			compass(dy, y, size, float64(s.fieldHeight)),
		)
		aim := target.Center().Sub(pos)
		if aim.Norm() == 0 {
			continue
		}
		return pos, aim.Normalize().Mul(speed)
	}
}

func compass(offset int, along, size, extent float64) float64 {
	switch offset {
	case -1:
		return -size
	case 1:
		return extent + size
	default:
		return along
	}
}
