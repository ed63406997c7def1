// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mshview opens an interactive window showing a rasterised mesh with a field
// and its streamlines, and wires the cell browser to the mouse and keyboard:
//
//	click       select / deselect the cell under the cursor
//	up / down   scroll through cell ids
//	escape      hide the info overlay
//
// With no arguments a demo grid and potential field are generated.
package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/ivek1312/gimli/browser"
	"github.com/ivek1312/gimli/msh"
	"github.com/ivek1312/gimli/raster"
	"github.com/ivek1312/gimli/streamline"
)

const (
	winW = 800
	winH = 600
)

// Game owns the render surface and the cell browser and replays ebiten input
// events into browser picks and key presses.
type Game struct {
	m     *msh.Mesh
	data  []float64
	lines []*streamline.Streamline
	ren   *raster.Renderer
	brw   *browser.Browser
	tex   *ebiten.Image
	shown int // selection baked into tex, -1 for none
}

func NewGame(m *msh.Mesh, data []float64, lines []*streamline.Streamline) *Game {
	g := &Game{
		m:     m,
		data:  data,
		lines: lines,
		ren:   raster.New(m, winW, winH),
		brw:   browser.New(m, data),
		shown: -2, // force first render
	}
	return g
}

// render redraws the whole scene, including the current highlight, into tex
func (g *Game) render() {
	g.ren.Clear()
	g.ren.RenderModel(g.data)
	g.ren.RenderMesh()
	g.ren.RenderStreams(g.lines, 0)
	if c := g.brw.Cell(); c != nil {
		g.ren.RenderHighlight(c)
	}
	g.tex = ebiten.NewImageFromImage(g.ren.Image())
	g.shown = g.brw.Current()
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		x, y := g.ren.Mesh(float64(px), float64(py))
		g.brw.OnPick(browser.Pick{X: x, Y: y, Button: 1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.brw.OnKey(browser.KeyUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.brw.OnKey(browser.KeyDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.brw.OnKey(browser.KeyEscape)
	}
	if g.brw.Current() != g.shown {
		g.render()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.tex != nil {
		screen.DrawImage(g.tex, nil)
	}
	if msg := g.brw.Annotation(); msg != "" {
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return winW, winH }

// demoMesh builds a grid over [-2,2]x[-1,1] with a point-source potential and
// traces its streamlines
func demoMesh(nx, ny int) (m *msh.Mesh, u []float64, lines []*streamline.Streamline) {
	m = msh.NewGrid(utl.LinSpace(-2, 2, nx), utl.LinSpace(-1, 1, ny))
	u = make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		r := math.Hypot(v.C[0]+1, v.C[1])
		u[i] = -math.Log(math.Max(r, 1e-3))
	}
	lines = streamline.Seed(m, streamline.NewGradField(m, u), &streamline.SeedOpts{
		Mode: streamline.SeedVertLine,
	})
	return
}

func main() {
	// input data
	nx := io.ArgToInt(0, 21)
	ny := io.ArgToInt(1, 11)
	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"number of divisions along x", "nx", nx,
		"number of divisions along y", "ny", ny,
	))

	m, u, lines := demoMesh(nx, ny)
	g := NewGame(m, u, lines)
	defer g.brw.Close()
	defer g.ren.Close()

	ebiten.SetWindowSize(winW, winH)
	ebiten.SetWindowTitle("gimli mesh viewer")
	if err := ebiten.RunGame(g); err != nil {
		chk.Panic("viewer failed: %v", err)
	}
}
