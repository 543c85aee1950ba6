package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/samber/lo"
	"github.com/tsujio/game-dodge/config"
	"github.com/tsujio/game-dodge/dodge"
	"github.com/tsujio/game-dodge/hud"
	"github.com/tsujio/game-dodge/keyutil"
	"github.com/tsujio/game-dodge/resources"
	"github.com/tsujio/game-dodge/sprite"
)

const gameName = "dodge"

var backgroundColor = color.RGBA{0x16, 0x18, 0x24, 0xff}

type Game struct {
	cfg        *config.Config
	controller *dodge.Controller
	sprites    *sprite.Sheet
	hud        *hud.HUD
	events     []keyutil.Event
}

func (g *Game) Update() error {
	g.events = keyutil.AppendEvents(g.events[:0])
	for _, e := range g.events {
		if e.Down {
			g.controller.KeyDown(e.Key)
		} else {
			g.controller.KeyUp(e.Key)
		}
	}

	g.controller.Update(time.Now())

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	session := g.controller.Session()

	if g.controller.Mode() == dodge.ModeReady {
		g.hud.DrawReady(screen)
		return
	}

	var shrink func(*ebiten.GeoM)
	if g.controller.Keys().Modifier {
		scale := g.cfg.Player.ModifierScale
		shrink = func(geoM *ebiten.GeoM) {
			geoM.Scale(scale, scale)
		}
	}
	g.sprites.Draw(screen, &session.Player().Entity, shrink)

	lo.ForEach(session.Enemies(), func(e *dodge.Enemy, _ int) {
		g.sprites.Draw(screen, &e.Entity, nil)
	})

	g.hud.DrawStatus(screen, session.Score(), session.TargetEnemyCount())

	if g.controller.Mode() == dodge.ModeGameOver {
		g.hud.DrawGameOver(screen, session.Score())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

func newGame(cfg *config.Config) (*Game, error) {
	h, err := hud.New(cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		return nil, fmt.Errorf("hud: %w", err)
	}

	var logOut io.Writer = io.Discard
	if cfg.Debug {
		logOut = os.Stderr
	}
	logger := log.New(logOut, "["+gameName+"] ", log.LstdFlags|log.Lmicroseconds)

	sprites := sprite.OpenSheet(resources.FS)
	random := rand.New(rand.NewSource(cfg.Seed))

	return &Game{
		cfg:        cfg,
		controller: dodge.NewController(cfg, random, sprites.Load(), logger, time.Now()),
		sprites:    sprites,
		hud:        h,
	}, nil
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	game, err := newGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
