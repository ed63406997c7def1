// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/ivek1312/gimli/msh"
	"github.com/ivek1312/gimli/streamline"
)

func Test_raster01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("raster01. coordinate mapping roundtrip")

	m := msh.NewGrid(utl.LinSpace(0, 4, 5), utl.LinSpace(0, 2, 3))
	r := New(m, 400, 300)
	defer r.Close()

	for _, p := range [][]float64{{0, 0}, {4, 2}, {1.3, 0.7}} {
		px, py := r.Pix(p[0], p[1])
		x, y := r.Mesh(px, py)
		chk.Float64(tst, "x", 1e-12, x, p[0])
		chk.Float64(tst, "y", 1e-12, y, p[1])
	}

	// corners stay within the canvas
	px, py := r.Pix(m.Xmax, m.Ymax)
	if px > float64(r.W) || py < 0 {
		tst.Errorf("corner mapped outside canvas: %g %g\n", px, py)
	}
}

func Test_raster02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("raster02. mesh and streams touch the canvas")

	m := msh.NewGrid(utl.LinSpace(0, 4, 5), utl.LinSpace(0, 4, 5))
	r := New(m, 200, 200)
	defer r.Close()

	u := make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		u[i] = v.C[0]
	}
	r.RenderModel(u)
	r.RenderMesh()
	r.RenderStreams(streamline.Seed(m, streamline.NewGradField(m, u), nil), 0)
	r.RenderHighlight(m.Cells[0])

	img := r.Image()
	nonWhite := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if c.R != 255 || c.G != 255 || c.B != 255 {
				nonWhite++
			}
		}
	}
	if nonWhite == 0 {
		tst.Errorf("nothing was drawn\n")
	}
}
