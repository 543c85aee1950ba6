package dodge

import (
	"math/rand"

	"github.com/samber/lo"
	"github.com/tsujio/game-dodge/config"
)

// Session is the state of one game, from start to collision. Reset
// discards everything, nothing carries over between games.
type Session struct {
	width, height int
	baseEnemies   int
	scorePerEnemy int

	spawner  *Spawner
	collider Collider

	player  *Player
	enemies []*Enemy
	score   int
}

func NewSession(cfg *config.Config, random *rand.Rand) *Session {
	playerTint, _ := config.Color(cfg.Player.Tint)
	homingTint, _ := config.Color(cfg.Enemy.HomingTint)

	return &Session{
		width:         cfg.Screen.Width,
		height:        cfg.Screen.Height,
		baseEnemies:   cfg.Enemy.BaseCount,
		scorePerEnemy: cfg.Enemy.ScorePerEnemy,
		spawner: &Spawner{
			random:      random,
			fieldWidth:  cfg.Screen.Width,
			fieldHeight: cfg.Screen.Height,
			minSize:     cfg.Enemy.MinSize,
			maxSize:     cfg.Enemy.MaxSize,
			minSpeed:    cfg.Enemy.MinSpeed,
			maxSpeed:    cfg.Enemy.MaxSpeed,
			minSpin:     cfg.Enemy.MinSpin,
			maxSpin:     cfg.Enemy.MaxSpin,
			homingTint:  homingTint,
		},
		collider: Collider{
			RadiusDivisor:   cfg.Collision.RadiusDivisor,
			ModifierDivisor: cfg.Collision.ModifierDivisor,
		},
		player: NewPlayer(cfg.Player.Size, cfg.Player.Speed, playerTint),
	}
}

// Reset starts a fresh game: score 0, player centred, a full population.
func (s *Session) Reset() {
	s.score = 0
	s.enemies = nil
	s.player.Rotate(0)
	s.player.Spawn(float64(s.width)/2, float64(s.height)/2, true)
	s.replenish()
}

// Step runs one simulation pass and reports whether the player was hit.
// A hit leaves score and population as they were before the pass.
func (s *Session) Step(keys KeyState) bool {
	s.player.Walk(keys, s.width, s.height)

	collided := false
	s.enemies = lo.Filter(s.enemies, func(e *Enemy, _ int) bool {
		alive := e.Next(s.width, s.height)
		if !collided && s.collider.Collides(&s.player.Entity, &e.Entity, keys.Modifier) {
			collided = true
		}
		return alive
	})
	if collided {
		return true
	}

	s.score++
	s.replenish()
	return false
}

// TargetEnemyCount is the population the spawner maintains for the
// current score.
func (s *Session) TargetEnemyCount() int {
	return s.score/s.scorePerEnemy + s.baseEnemies
}

func (s *Session) replenish() {
	missing := s.TargetEnemyCount() - len(s.enemies)
	if missing <= 0 {
		return
	}
	s.enemies = append(s.enemies, lo.Times(missing, func(_ int) *Enemy {
		return s.spawner.RandomEnemy(&s.player.Entity)
	})...)
}

func (s *Session) Player() *Player {
	return s.player
}

func (s *Session) Enemies() []*Enemy {
	return s.enemies
}

func (s *Session) Score() int {
	return s.score
}
