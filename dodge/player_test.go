package dodge

import "testing"

func newTestPlayer(x, y float64) *Player {
	p := NewPlayer(40, 8, nil)
	p.Spawn(x, y, false)
	return p
}

func TestPlayerWalk(t *testing.T) {
	cases := []struct {
		name         string
		x, y         float64
		keys         KeyState
		wantX, wantY float64
	}{
		{"idle", 100, 100, KeyState{}, 100, 100},
		{"up", 100, 100, KeyState{Up: true}, 100, 92},
		{"down right", 100, 100, KeyState{Down: true, Right: true}, 108, 108},
		{"up left slow", 100, 100, KeyState{Modifier: true, Up: true, Left: true}, 96, 96},
		{"all directions slow", 100, 100, KeyState{Modifier: true, Up: true, Down: true, Left: true, Right: true}, 100, 100},
		{"onto right edge", 552, 100, KeyState{Right: true}, 560, 100},
		{"past right edge", 556, 100, KeyState{Right: true}, 556, 100},
		{"past top edge", 100, 4, KeyState{Up: true}, 100, 4},
		{"diagonal into wall is rejected whole", 0, 100, KeyState{Left: true, Up: true}, 0, 100},
		{"slide along wall", 0, 100, KeyState{Up: true}, 0, 92},
		{"corner", 560, 560, KeyState{Down: true, Right: true}, 560, 560},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer(tc.x, tc.y)
			p.Walk(tc.keys, 600, 600)
			if p.Pos.X != tc.wantX || p.Pos.Y != tc.wantY {
				t.Fatalf("got (%v, %v) want (%v, %v)", p.Pos.X, p.Pos.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPlayerWalkSlowAxes(t *testing.T) {
	p := newTestPlayer(100, 100)

	p.Walk(KeyState{Modifier: true, Down: true, Right: true}, 600, 600)
	if p.Pos.X != 104 || p.Pos.Y != 104 {
		t.Fatalf("expected half speed on each axis, got (%v, %v)", p.Pos.X, p.Pos.Y)
	}
}

func TestKeyStateSet(t *testing.T) {
	var s KeyState
	s.Set(KeyModifier, true)
	s.Set(KeyLeft, true)
	s.Set(KeyOther, true)
	if s != (KeyState{Modifier: true, Left: true}) {
		t.Fatalf("unexpected state: %+v", s)
	}

	s.Set(KeyLeft, false)
	if s != (KeyState{Modifier: true}) {
		t.Fatalf("unexpected state after release: %+v", s)
	}
}
