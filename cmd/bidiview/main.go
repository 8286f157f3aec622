// Command bidiview renders a paragraph's resolved visual order one glyph
// per grid cell, the way spec.md's PURPOSE section frames the whole
// system's consumer: "the renderer that draws glyphs left-to-right."
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"gobidi/pkg/bidi"
	"gobidi/pkg/chartables"
	"gobidi/pkg/grid"
)

const (
	cols      = 64
	charWidth = 10
	charHigh  = 16
)

type Game struct {
	visual []rune
	levels []bidi.Level
}

func (g *Game) Update() error { return nil }

func (g *Game) Draw(screen *ebiten.Image) {
	for i, r := range g.visual {
		x, y := grid.GetGridCoords(i, cols)
		px := x * charWidth
		py := y * charHigh
		msg := fmt.Sprintf("%c", r)
		ebitenutil.DebugPrintAt(screen, msg, px, py)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows := (len(g.visual) / cols) + 1
	return cols * charWidth, rows * charHigh
}

// snapshotPNG renders the same grid layout Game.Draw produces to a PNG file
// without opening a window, for headless environments (CI, this module's own
// test suite) where an ebiten display is unavailable.
func snapshotPNG(path string, visual []rune) error {
	rows := (len(visual) / cols) + 1
	img := image.NewRGBA(image.Rect(0, 0, cols*charWidth, rows*charHigh))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	for i, r := range visual {
		x, y := grid.GetGridCoords(i, cols)
		d.Dot = fixed.P(x*charWidth, y*charHigh+charHigh-4)
		d.DrawString(string(r))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: bidiview [--snapshot out.png] <text>")
	}

	var snapshot string
	args := os.Args[1:]
	if args[0] == "--snapshot" {
		if len(args) < 3 {
			log.Fatal("usage: bidiview --snapshot out.png <text>")
		}
		snapshot = args[1]
		args = args[2:]
	}
	text := args[0]

	runes := []rune(text)
	types := chartables.ClassifyString(text)
	result, err := bidi.LogToVisual(runes, types, bidi.DirectionAuto, nil)
	if err != nil {
		log.Fatalf("bidi analysis failed: %v", err)
	}

	if snapshot != "" {
		if err := snapshotPNG(snapshot, result.VisualText); err != nil {
			log.Fatalf("snapshot failed: %v", err)
		}
		return
	}

	ebiten.SetWindowSize(cols*charWidth, 256)
	ebiten.SetWindowTitle("bidiview")

	game := &Game{visual: result.VisualText, levels: result.Levels}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
