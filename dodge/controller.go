package dodge

import (
	"log"
	"math/rand"
	"time"

	"github.com/tsujio/game-dodge/config"
)

type Mode int

const (
	ModeReady Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeReady:
		return "ready"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Controller drives a Session through ready -> playing -> game over ->
// playing. Key events come in through KeyDown/KeyUp at any time; Update is
// called once per host frame with the current time.
type Controller struct {
	session *Session
	events  *Dispatcher
	pacer   *Pacer
	logger  *log.Logger

	restartCooldown time.Duration

	keys KeyState
	mode Mode

	loaded     <-chan struct{}
	startKey   <-chan struct{}
	restartKey <-chan struct{}
	gameOverAt time.Time
}

// NewController returns a controller in ModeReady. It waits for loaded to
// be closed before it starts listening for the first key.
func NewController(cfg *config.Config, random *rand.Rand, loaded <-chan struct{}, logger *log.Logger, now time.Time) *Controller {
	logger.Println("init")
	return &Controller{
		session:         NewSession(cfg, random),
		events:          NewDispatcher(),
		pacer:           NewPacer(cfg.Timing.FrameInterval, now),
		logger:          logger,
		restartCooldown: cfg.Timing.RestartCooldown,
		mode:            ModeReady,
		loaded:          loaded,
	}
}

func (c *Controller) KeyDown(k Key) {
	c.keys.Set(k, true)
	c.events.Dispatch(k)
}

func (c *Controller) KeyUp(k Key) {
	c.keys.Set(k, false)
}

// Update advances the mode machine and reports whether a simulation pass
// ran.
func (c *Controller) Update(now time.Time) bool {
	switch c.mode {
	case ModeReady:
		if c.startKey == nil {
			if !fired(c.loaded) {
				return false
			}
			c.logger.Println("images loaded, ready")
			c.startKey, _ = c.events.Once(AnyKey)
		}
		if fired(c.startKey) {
			c.start(now)
		}
		return false

	case ModePlaying:
		if !c.pacer.Due(now) {
			return false
		}
		if c.session.Step(c.keys) {
			c.logger.Printf("collided, score=%d", c.session.Score())
			c.mode = ModeGameOver
			c.gameOverAt = now
		}
		return true

	case ModeGameOver:
		if c.restartKey == nil {
			if now.Sub(c.gameOverAt) < c.restartCooldown {
				return false
			}
			c.logger.Println("restart armed")
			c.restartKey, _ = c.events.Once(AnyKey)
		}
		if fired(c.restartKey) {
			c.start(now)
		}
		return false
	}
	return false
}

func (c *Controller) start(now time.Time) {
	c.logger.Println("start")
	c.keys = KeyState{}
	c.session.Reset()
	c.pacer.Reset(now)
	c.startKey = nil
	c.restartKey = nil
	c.mode = ModePlaying
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Keys() KeyState {
	return c.keys
}

func (c *Controller) Session() *Session {
	return c.session
}

// RestartArmed reports whether a key press would restart the game.
func (c *Controller) RestartArmed() bool {
	return c.restartKey != nil
}
