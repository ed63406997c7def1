// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/ivek1312/gimli/msh"
)

// Triangulate splits the mesh into triangles for drawing: quads become two
// triangles referring to the same cell. DataIdx maps each triangle back to
// its cell id
type Triangulation struct {
	X, Y    []float64 // node positions
	Tris    [][3]int  // vertex ids, 3 per triangle
	DataIdx []int     // [ntris] cell id of each triangle
}

// Triangulate generates triangles for later drawing
func Triangulate(m *msh.Mesh) (t *Triangulation) {
	t = &Triangulation{
		X: make([]float64, len(m.Verts)),
		Y: make([]float64, len(m.Verts)),
	}
	for i, v := range m.Verts {
		t.X[i] = v.C[0]
		t.Y[i] = v.C[1]
	}
	for _, c := range m.Cells {
		t.Tris = append(t.Tris, [3]int{c.V[0], c.V[1], c.V[2]})
		t.DataIdx = append(t.DataIdx, c.Id)
		if len(c.V) == 4 {
			t.Tris = append(t.Tris, [3]int{c.V[0], c.V[2], c.V[3]})
			t.DataIdx = append(t.DataIdx, c.Id)
		}
	}
	return
}

// DrawField draws a scalar field on the mesh. Cell data is drawn as flat
// colored triangles; node data additionally gets contour lines on the
// triangulation. Filled rendering and contour lines can be switched off
// separately via Args
func DrawField(m *msh.Mesh, data []float64, a *Args) {
	checkDrawable(m)
	t := Triangulate(m)

	nodal := len(data) == len(m.Verts)
	var cvals, nvals []float64
	if nodal {
		nvals = data
		cvals = msh.NodeDataToCellData(m, data)
	} else {
		cvals = msh.FitCellData(m, data)
		if a != nil && a.Gouraud {
			nvals = msh.CellDataToNodeData(m, cvals)
			nodal = true
		}
	}

	lo, hi := minmax(cvals)
	if a == nil || !a.NoFill {
		for it, tri := range t.Tris {
			v := cvals[t.DataIdx[it]]
			if nodal {
				v = (nvals[tri[0]] + nvals[tri[1]] + nvals[tri[2]]) / 3.0
			}
			col := cmapColor(v, lo, hi)
			P := [][]float64{
				{t.X[tri[0]], t.Y[tri[0]]},
				{t.X[tri[1]], t.Y[tri[1]]},
				{t.X[tri[2]], t.Y[tri[2]]},
			}
			plt.Polyline(P, &plt.A{Fc: col, Ec: col, Lw: 0.1, Closed: true, NoClip: true})
		}
	}

	if nodal && (a == nil || !a.NoLines) {
		for _, level := range autolevel(nvals, a.nlevels()) {
			for _, seg := range contourSegments(t, nvals, level) {
				plt.Plot([]float64{seg[0], seg[2]}, []float64{seg[1], seg[3]},
					&plt.A{C: a.color("grey"), Lw: a.lw(0.8), NoClip: true})
			}
		}
	}

	fitView(m, a)
}

// autolevel returns nlevs contour levels strictly inside the data range
func autolevel(vals []float64, nlevs int) []float64 {
	lo, hi := minmax(vals)
	if hi-lo < 1e-15 {
		return nil
	}
	all := utl.LinSpace(lo, hi, nlevs+2)
	return all[1 : nlevs+1]
}

// contourSegments computes the iso-line segments {x1,y1,x2,y2} of a node
// field at the given level by linear interpolation over each triangle
func contourSegments(t *Triangulation, u []float64, level float64) (segs [][4]float64) {
	for _, tri := range t.Tris {
		var px, py []float64
		for e := 0; e < 3; e++ {
			i, j := tri[e], tri[(e+1)%3]
			ui, uj := u[i], u[j]
			if (ui < level) == (uj < level) {
				continue
			}
			if math.Abs(uj-ui) < 1e-15 {
				continue
			}
			s := (level - ui) / (uj - ui)
			px = append(px, t.X[i]+s*(t.X[j]-t.X[i]))
			py = append(py, t.Y[i]+s*(t.Y[j]-t.Y[i]))
		}
		if len(px) == 2 {
			segs = append(segs, [4]float64{px[0], py[0], px[1], py[1]})
		}
	}
	return
}
