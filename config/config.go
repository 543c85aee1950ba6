// Package config holds the game's tunables.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Screen struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Player struct {
	Size          int     `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	Tint          string  `yaml:"tint"`
	ModifierScale float64 `yaml:"modifierScale"`
}

type Enemy struct {
	MinSize       int     `yaml:"minSize"`
	MaxSize       int     `yaml:"maxSize"`
	MinSpeed      int     `yaml:"minSpeed"`
	MaxSpeed      int     `yaml:"maxSpeed"`
	HomingTint    string  `yaml:"homingTint"`
	MinSpin       float64 `yaml:"minSpin"`
	MaxSpin       float64 `yaml:"maxSpin"`
	BaseCount     int     `yaml:"baseCount"`
	ScorePerEnemy int     `yaml:"scorePerEnemy"`
}

type Collision struct {
	RadiusDivisor   float64 `yaml:"radiusDivisor"`
	ModifierDivisor float64 `yaml:"modifierDivisor"`
}

type Timing struct {
	FrameInterval   time.Duration `yaml:"frameInterval"`
	RestartCooldown time.Duration `yaml:"restartCooldown"`
}

type Config struct {
	Screen    Screen    `yaml:"screen"`
	Player    Player    `yaml:"player"`
	Enemy     Enemy     `yaml:"enemy"`
	Collision Collision `yaml:"collision"`
	Timing    Timing    `yaml:"timing"`

	// Seed and Debug come from the environment only.
	Seed  int64 `yaml:"-"`
	Debug bool  `yaml:"-"`
}

// Default returns the embedded defaults. It panics if they do not parse,
// which can only happen if default.yml itself is broken.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load overlays the YAML document read from r on top of the defaults.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds the runtime config. A .env file in the working
// directory is loaded first if present. Recognized variables:
//
//	GAME_CONFIG     path to a YAML overlay
//	GAME_RAND_SEED  random seed (time based when unset)
//	GAME_DEBUG      enable lifecycle tracing
func FromEnv() (*Config, error) {
	// Browsers have no file system to read .env from.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[config] skipping .env: %v", err)
	}

	var overlay []byte
	if path := os.Getenv("GAME_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		overlay = b
		log.Printf("[config] using %s", path)
	}

	cfg, err := Load(bytes.NewReader(overlay))
	if err != nil {
		return nil, err
	}

	cfg.Seed = time.Now().UnixNano()
	if s := os.Getenv("GAME_RAND_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("GAME_RAND_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if s := os.Getenv("GAME_DEBUG"); s != "" {
		debug, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("GAME_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Player.Size <= 0 || c.Player.Size > c.Screen.Width || c.Player.Size > c.Screen.Height {
		return fmt.Errorf("%w: player size %d does not fit the screen", ErrInvalid, c.Player.Size)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("%w: player speed must be positive", ErrInvalid)
	}
	if c.Enemy.MinSize <= 0 || c.Enemy.MaxSize <= c.Enemy.MinSize {
		return fmt.Errorf("%w: enemy size range [%d,%d)", ErrInvalid, c.Enemy.MinSize, c.Enemy.MaxSize)
	}
	if c.Enemy.MinSpeed <= 0 || c.Enemy.MaxSpeed <= c.Enemy.MinSpeed {
		return fmt.Errorf("%w: enemy speed range [%d,%d)", ErrInvalid, c.Enemy.MinSpeed, c.Enemy.MaxSpeed)
	}
	if c.Enemy.MaxSpin < c.Enemy.MinSpin {
		return fmt.Errorf("%w: enemy spin range [%g,%g)", ErrInvalid, c.Enemy.MinSpin, c.Enemy.MaxSpin)
	}
	if c.Enemy.BaseCount < 0 || c.Enemy.ScorePerEnemy <= 0 {
		return fmt.Errorf("%w: enemy count base=%d per=%d", ErrInvalid, c.Enemy.BaseCount, c.Enemy.ScorePerEnemy)
	}
	if c.Collision.RadiusDivisor <= 0 || c.Collision.ModifierDivisor <= 0 {
		return fmt.Errorf("%w: collision divisors must be positive", ErrInvalid)
	}
	if c.Timing.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive", ErrInvalid)
	}
	if c.Timing.RestartCooldown < 0 {
		return fmt.Errorf("%w: restart cooldown must not be negative", ErrInvalid)
	}
	for _, name := range []string{c.Player.Tint, c.Enemy.HomingTint} {
		if _, err := Color(name); err != nil {
			return err
		}
	}
	return nil
}

// Color resolves an SVG colour name. The empty name means no colour.
func Color(name string) (color.Color, error) {
	if name == "" {
		return nil, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown colour %q", ErrInvalid, name)
	}
	return c, nil
}
