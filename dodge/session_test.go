package dodge

import (
	"testing"

	"github.com/tsujio/game-util/mathutil"
)

func TestSessionReset(t *testing.T) {
	s := newTestSession(t, 1)
	s.Reset()

	if s.Score() != 0 {
		t.Fatalf("score: got %d", s.Score())
	}
	if len(s.Enemies()) != 10 {
		t.Fatalf("enemies: got %d want 10", len(s.Enemies()))
	}
	if p := s.Player().Pos; p.X != 280 || p.Y != 280 {
		t.Fatalf("player not centred: (%v, %v)", p.X, p.Y)
	}
}

func TestSessionPopulationFollowsScore(t *testing.T) {
	s := newTestSession(t, 3)
	s.Reset()

	for i := 0; i < 300; i++ {
		if s.Step(KeyState{}) {
			return
		}
		if got, want := len(s.Enemies()), s.TargetEnemyCount(); got != want {
			t.Fatalf("tick %d: enemies=%d target=%d", i, got, want)
		}
		if s.Score() != i+1 {
			t.Fatalf("tick %d: score=%d", i, s.Score())
		}
	}
}

func TestSessionTargetEnemyCount(t *testing.T) {
	s := newTestSession(t, 1)

	cases := []struct {
		score, want int
	}{
		{0, 10},
		{39, 10},
		{40, 11},
		{799, 29},
		{1600, 50},
	}
	for _, tc := range cases {
		s.score = tc.score
		if got := s.TargetEnemyCount(); got != tc.want {
			t.Errorf("score %d: got %d want %d", tc.score, got, tc.want)
		}
	}
}

func TestSessionScoreRaisesPopulation(t *testing.T) {
	s := newTestSession(t, 1)
	s.Reset()
	s.enemies = nil
	s.score = 1599

	if s.Step(KeyState{}) {
		t.Fatal("unexpected collision")
	}
	if s.Score() != 1600 {
		t.Fatalf("score: got %d", s.Score())
	}
	if len(s.Enemies()) != 50 {
		t.Fatalf("enemies: got %d want 50", len(s.Enemies()))
	}
}

func TestSessionCollisionFreezes(t *testing.T) {
	s := newTestSession(t, 1)
	s.Reset()

	c := s.Player().Center()
	e := NewEnemy(30, mathutil.NewVector2D(0, 0), 0.1, nil)
	e.Spawn(c.X, c.Y, true)
	s.enemies = []*Enemy{e}
	s.score = 5

	if !s.Step(KeyState{}) {
		t.Fatal("expected collision")
	}
	if s.Score() != 5 {
		t.Fatalf("score changed on collision: %d", s.Score())
	}
	if len(s.Enemies()) != 1 {
		t.Fatalf("population changed on collision: %d", len(s.Enemies()))
	}
}

func TestSessionDropsExpiredEnemies(t *testing.T) {
	s := newTestSession(t, 1)
	s.Reset()

	gone := NewEnemy(20, mathutil.NewVector2D(-10, 0), 0.1, nil)
	gone.Spawn(-595, 0, false)
	s.enemies = []*Enemy{gone}

	if s.Step(KeyState{}) {
		t.Fatal("unexpected collision")
	}
	for _, e := range s.Enemies() {
		if e == gone {
			t.Fatal("expired enemy still active")
		}
	}
	if len(s.Enemies()) != 10 {
		t.Fatalf("enemies: got %d want 10", len(s.Enemies()))
	}
}

func TestSessionModifierShrinksHitbox(t *testing.T) {
	s := newTestSession(t, 1)
	s.Reset()

	// player radius 40/3, enemy radius 30/3: touching below about 23.3,
	// halved with the modifier to about 11.7
	c := s.Player().Center()
	e := NewEnemy(30, mathutil.NewVector2D(0, 0), 0.1, nil)
	e.Spawn(c.X+18, c.Y, true)
	s.enemies = []*Enemy{e}

	if s.Step(KeyState{Modifier: true}) {
		t.Fatal("expected the modifier to avoid the hit")
	}

	s.enemies = []*Enemy{e}
	if !s.Step(KeyState{}) {
		t.Fatal("expected a hit without the modifier")
	}
}
