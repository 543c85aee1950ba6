package dodge

import (
	"image/color"
)

type Player struct {
	Entity
	Speed float64
}

func NewPlayer(size int, speed float64, tint color.Color) *Player {
	return &Player{
		Entity: newEntity(KindPlayer, size, size, tint),
		Speed:  speed,
	}
}

// Walk moves the player along every pressed direction. The modifier halves
// the speed per axis, so diagonals are not normalized. If the result
// leaves the field on any side the whole move is undone.
func (p *Player) Walk(keys KeyState, fieldWidth, fieldHeight int) {
	prev := p.Pos.Clone()

	speed := p.Speed
	if keys.Modifier {
		speed /= 2
	}

	if keys.Up {
		p.Move(0, -speed)
	}
	if keys.Down {
		p.Move(0, speed)
	}
	if keys.Left {
		p.Move(-speed, 0)
	}
	if keys.Right {
		p.Move(speed, 0)
	}

	if p.Pos.X < 0 || p.Pos.X > float64(fieldWidth-p.W) ||
		p.Pos.Y < 0 || p.Pos.Y > float64(fieldHeight-p.H) {
		p.Pos = prev
	}
}
