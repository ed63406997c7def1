// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"

	"github.com/ivek1312/gimli/msh"
	"github.com/ivek1312/gimli/streamline"
)

// DrawStreams seeds and draws streamlines for the given field. Every cell
// contributes to exactly one line. Segments with magnitude below
// Args.DropTol are suppressed; each sufficiently long line gets a small
// arrow head at its midpoint
func DrawStreams(m *msh.Mesh, fld streamline.FieldLike, sopts *streamline.SeedOpts, a *Args) (lines []*streamline.Streamline) {
	checkDrawable(m)
	lines = streamline.Seed(m, fld, sopts)
	for _, l := range lines {
		DrawStreamLine(m, l, a)
	}
	fitView(m, a)
	return
}

// DrawStreamLine draws a single traced streamline
func DrawStreamLine(m *msh.Mesh, l *streamline.Streamline, a *Args) {
	if l.Len() < 3 {
		return
	}
	dropTol := 0.0
	if a != nil {
		dropTol = a.DropTol
	}
	args := &plt.A{C: a.color("k"), Lw: a.lw(1.0), NoClip: true}

	// draw contiguous runs of segments above the drop tolerance
	run := 0
	flush := func(end int) {
		if end-run >= 2 {
			plt.Plot(l.X[run:end], l.Y[run:end], args)
		}
		run = end
	}
	for i := 0; i < l.Len()-1; i++ {
		if l.V[i] < dropTol {
			flush(i + 1)
		}
	}
	flush(l.Len())

	if l.Len() > 3 {
		drawArrowHead(l, dropTol, args)
	}
}

// drawArrowHead puts a small polygon head at the line's midpoint, pointing
// along the local direction
func drawArrowHead(l *streamline.Streamline, dropTol float64, args *plt.A) {
	mid := l.Len() / 2
	if l.V[mid] <= dropTol && dropTol > 0 {
		return
	}
	dx := l.X[mid+1] - l.X[mid]
	dy := l.Y[mid+1] - l.Y[mid]
	dx90, dy90 := -dy, dx
	aLen, aWid := 3.0, 1.0
	P := [][]float64{
		{l.X[mid] + dx90*aWid, l.Y[mid] + dy90*aWid},
		{l.X[mid] + dx*aLen, l.Y[mid] + dy*aLen},
		{l.X[mid] - dx90*aWid, l.Y[mid] - dy90*aWid},
	}
	plt.Polyline(P, &plt.A{Fc: args.C, Ec: args.C, Closed: true, NoClip: true})
}

// DrawQuiver draws one arrow per sample position of a cell-, node- or
// boundary-sized vector field instead of streamlines
func DrawQuiver(m *msh.Mesh, vx, vy []float64, a *Args) {
	checkDrawable(m)
	var px, py []float64
	switch len(vx) {
	case len(m.Verts):
		for _, v := range m.Verts {
			px = append(px, v.C[0])
			py = append(py, v.C[1])
		}
	case len(m.Cells):
		for _, c := range m.Cells {
			x, y := c.Center(m)
			px = append(px, x)
			py = append(py, y)
		}
	case len(m.Bdrys):
		for _, b := range m.Bdrys {
			va, vb := m.Verts[b.V[0]], m.Verts[b.V[1]]
			px = append(px, (va.C[0]+vb.C[0])/2.0)
			py = append(py, (va.C[1]+vb.C[1])/2.0)
		}
	default:
		chk.Panic("quiver data must be node-, cell- or boundary-sized. len=%d", len(vx))
	}
	scale := quiverScale(m, vx, vy)
	for i := range px {
		plt.Arrow(px[i], py[i], px[i]+vx[i]*scale, py[i]+vy[i]*scale, &plt.A{C: a.color("k")})
	}
	fitView(m, a)
}

func quiverScale(m *msh.Mesh, vx, vy []float64) float64 {
	vmax := 0.0
	for i := range vx {
		if v := math.Hypot(vx[i], vy[i]); v > vmax {
			vmax = v
		}
	}
	if vmax < 1e-15 {
		return 1
	}
	ref := (m.Xmax - m.Xmin + m.Ymax - m.Ymin) / 2.0
	return ref / vmax / 20.0
}
