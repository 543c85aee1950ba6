//go:build ignore

// Renders the sprite PNGs. Run with `go generate ./resources`.
package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"golang.org/x/image/vector"
)

const size = 64

func main() {
	save("player.png", player())
	save("enemy.png", enemy())
}

// player is a round ship with a notch pointing up.
func player() image.Image {
	r := vector.NewRasterizer(size, size)
	polygon(r, 32, 32, 28, 0, 32)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{0x40, 0xa0, 0xff, 0xff}), image.Point{})

	r.Reset(size, size)
	r.MoveTo(32, 8)
	r.LineTo(42, 30)
	r.LineTo(22, 30)
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{})
	return dst
}

// enemy is an eight-pointed star.
func enemy() image.Image {
	r := vector.NewRasterizer(size, size)
	const points = 8
	for i := 0; i < points*2; i++ {
		radius := 30.0
		if i%2 == 1 {
			radius = 14
		}
		a := float64(i) * math.Pi / points
		x, y := float32(32+radius*math.Cos(a)), float32(32+radius*math.Sin(a))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{0xe0, 0x30, 0x40, 0xff}), image.Point{})
	return dst
}

func polygon(r *vector.Rasterizer, cx, cy, radius float64, phase float64, n int) {
	for i := 0; i < n; i++ {
		a := phase + float64(i)*2*math.Pi/float64(n)
		x, y := float32(cx+radius*math.Cos(a)), float32(cy+radius*math.Sin(a))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}

func save(name string, img image.Image) {
	f, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
}
