package dodge

// Collider approximates every entity by a circle around its bounding box
// centre.
type Collider struct {
	// RadiusDivisor turns width into radius, 3 means a third of the width.
	RadiusDivisor float64
	// ModifierDivisor shrinks every radius while the modifier is held.
	ModifierDivisor float64
}

func (c Collider) Radius(e *Entity, modifier bool) float64 {
	r := float64(e.W) / c.RadiusDivisor
	if modifier {
		r /= c.ModifierDivisor
	}
	return r
}

// Collides reports whether the two circles overlap. Touching exactly at
// the sum of the radii does not count.
func (c Collider) Collides(a, b *Entity, modifier bool) bool {
	distance := a.Center().Sub(b.Center()).Norm()
	return distance < c.Radius(a, modifier)+c.Radius(b, modifier)
}
