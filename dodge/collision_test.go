package dodge

import "testing"

func TestCollides(t *testing.T) {
	c := Collider{RadiusDivisor: 3, ModifierDivisor: 2}

	cases := []struct {
		name     string
		distance float64
		modifier bool
		want     bool
	}{
		{"same centre", 0, false, true},
		{"touching exactly", 30, false, false},
		{"just inside", 30 - 1e-9, false, true},
		{"apart", 45, false, false},
		{"modifier shrinks", 20, true, false},
		{"modifier just inside", 15 - 1e-9, true, true},
		{"no modifier at same distance", 20, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// radii are 30/3=10 and 60/3=20
			a := newEntity(KindPlayer, 30, 30, nil)
			b := newEntity(KindEnemy, 60, 60, nil)
			a.Spawn(100, 100, true)
			b.Spawn(100+tc.distance, 100, true)

			if got := c.Collides(&a, &b, tc.modifier); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			if got := c.Collides(&b, &a, tc.modifier); got != tc.want {
				t.Fatalf("not symmetric: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestRadius(t *testing.T) {
	c := Collider{RadiusDivisor: 3, ModifierDivisor: 2}
	e := newEntity(KindPlayer, 42, 42, nil)

	if r := c.Radius(&e, false); r != 14 {
		t.Errorf("radius: got %v", r)
	}
	if r := c.Radius(&e, true); r != 7 {
		t.Errorf("modifier radius: got %v", r)
	}
}
