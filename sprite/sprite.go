// Package sprite draws dodge entities with ebiten.
package sprite

import (
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/tsujio/game-dodge/dodge"
)

// Image is an image resource decoded in the background. Until it has
// loaded, drawing it is a no-op.
type Image struct {
	path   string
	loaded chan struct{}

	mu      sync.Mutex
	decoded image.Image
	img     *ebiten.Image
}

// Open starts decoding path from fsys. A source that cannot be decoded is
// logged and never finishes loading.
func Open(fsys fs.FS, path string) *Image {
	i := &Image{
		path:   path,
		loaded: make(chan struct{}),
	}

	go func() {
		f, err := fsys.Open(path)
		if err != nil {
			log.Printf("[sprite] open %s: %v", path, err)
			return
		}
		defer f.Close()

		decoded, _, err := image.Decode(f)
		if err != nil {
			log.Printf("[sprite] decode %s: %v", path, err)
			return
		}

		i.mu.Lock()
		i.decoded = decoded
		i.mu.Unlock()
		close(i.loaded)
	}()

	return i
}

// Load returns a channel closed once the image has loaded. It is already
// closed if loading finished earlier.
func (i *Image) Load() <-chan struct{} {
	return i.loaded
}

func (i *Image) IsLoaded() bool {
	select {
	case <-i.loaded:
		return true
	default:
		return false
	}
}

// texture converts the decoded image on first use, on the game goroutine.
func (i *Image) texture() *ebiten.Image {
	if i.img != nil {
		return i.img
	}
	if !i.IsLoaded() {
		return nil
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.img = ebiten.NewImageFromImage(i.decoded)
	i.decoded = nil
	return i.img
}

// Draw renders e centred on its bounding box, rotated by e.Rotation. pre,
// if given, is applied around the entity's centre before rotation, e.g. to
// shrink it. A tint replaces the colour of every opaque pixel.
func (i *Image) Draw(dst *ebiten.Image, e *dodge.Entity, pre func(geoM *ebiten.GeoM)) {
	img := i.texture()
	if img == nil {
		return
	}

	b := img.Bounds()
	w, h := float64(e.W), float64(e.H)

	var geoM ebiten.GeoM
	geoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	geoM.Translate(-w/2, -h/2)
	if pre != nil {
		pre(&geoM)
	}
	geoM.Rotate(e.Rotation)
	geoM.Translate(e.Pos.X+w/2, e.Pos.Y+h/2)

	if e.Tint == nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = geoM
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
		return
	}

	op := &colorm.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	colorm.DrawImage(dst, img, tint(e.Tint), op)
}

func tint(c color.Color) colorm.ColorM {
	r, g, b, _ := c.RGBA()

	var cm colorm.ColorM
	cm.Scale(0, 0, 0, 1)
	cm.Translate(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, 0)
	return cm
}

// Sheet holds the two sprites of the game.
type Sheet struct {
	Player *Image
	Enemy  *Image
}

func OpenSheet(fsys fs.FS) *Sheet {
	return &Sheet{
		Player: Open(fsys, "player.png"),
		Enemy:  Open(fsys, "enemy.png"),
	}
}

// Load is closed once every sprite of the sheet has loaded.
func (s *Sheet) Load() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		<-s.Player.Load()
		<-s.Enemy.Load()
		close(done)
	}()
	return done
}

func (s *Sheet) Draw(dst *ebiten.Image, e *dodge.Entity, pre func(geoM *ebiten.GeoM)) {
	switch e.Kind {
	case dodge.KindPlayer:
		s.Player.Draw(dst, e, pre)
	case dodge.KindEnemy:
		s.Enemy.Draw(dst, e, pre)
	}
}
