// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/ivek1312/gimli/msh"
	"github.com/ivek1312/gimli/streamline"
)

func Test_tri01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tri01. quads split into triangle pairs")

	m := msh.NewGrid(utl.LinSpace(0, 2, 3), utl.LinSpace(0, 2, 3))
	t := Triangulate(m)

	chk.IntAssert(len(t.Tris), 2*len(m.Cells))
	chk.IntAssert(len(t.DataIdx), len(t.Tris))
	for it, cid := range t.DataIdx {
		chk.IntAssert(cid, it/2)
	}

	// triangle pair of cell 0 references its four vertices
	chk.Ints(tst, "tri0", []int{t.Tris[0][0], t.Tris[0][1], t.Tris[0][2]}, []int{0, 1, 4})
	chk.Ints(tst, "tri1", []int{t.Tris[1][0], t.Tris[1][1], t.Tris[1][2]}, []int{0, 4, 3})
}

func Test_contour01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contour01. iso-lines of u = x")

	m := msh.NewGrid(utl.LinSpace(0, 1, 11), utl.LinSpace(0, 1, 11))
	t := Triangulate(m)

	u := make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		u[i] = v.C[0]
	}

	// iso-line x = 0.55 is vertical: all segment points at that x
	segs := contourSegments(t, u, 0.55)
	if len(segs) == 0 {
		tst.Errorf("no contour segments found\n")
		return
	}
	for _, s := range segs {
		chk.Float64(tst, "x1", 1e-13, s[0], 0.55)
		chk.Float64(tst, "x2", 1e-13, s[2], 0.55)
	}

	// levels stay inside the data range
	levels := autolevel(u, 5)
	chk.IntAssert(len(levels), 5)
	for _, l := range levels {
		if l <= 0 || l >= 1 {
			tst.Errorf("level %g outside open range (0,1)\n", l)
			return
		}
	}

	// constant field has no levels
	if lv := autolevel([]float64{3, 3, 3}, 5); lv != nil {
		tst.Errorf("constant data produced levels: %v\n", lv)
	}
}

func Test_constraints01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constraints01. lines between region centers")

	m := msh.NewGrid(utl.LinSpace(0, 2, 3), utl.LinSpace(0, 1, 2))
	m.Cells[0].Marker = 0
	m.Cells[1].Marker = 1

	// one constraint coupling regions 0 and 1
	T := new(la.Triplet)
	T.Init(1, 2, 2)
	T.Put(0, 0, 1)
	T.Put(0, 1, -1)

	start, end := ConstraintLines(m, T, nil)
	chk.IntAssert(len(start), 1)
	chk.Array(tst, "start", 1e-14, start[0], []float64{0.5, 0.5})
	chk.Array(tst, "end", 1e-14, end[0], []float64{1.5, 0.5})

	// full weight keeps the endpoints at the centers
	start, end = ConstraintLines(m, T, []float64{1})
	chk.Array(tst, "start w=1", 1e-14, start[0], []float64{0.5, 0.5})
	chk.Array(tst, "end w=1", 1e-14, end[0], []float64{1.5, 0.5})
}

func Test_draw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("draw01. full drawing pass (plots only with -verbose)")

	m := msh.NewGrid(utl.LinSpace(0, 1, 10), utl.LinSpace(0, 1, 10))
	u := make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		u[i] = v.C[0]*v.C[0] + v.C[1]*v.C[1]
	}

	if !chk.Verbose {
		// rendering helpers must still not panic on valid input
		lines := streamline.Seed(m, streamline.NewGradField(m, u), nil)
		if len(lines) == 0 {
			tst.Errorf("no streamlines traced\n")
		}
		return
	}

	plt.Reset(false, nil)
	DrawMesh(m, nil)
	DrawField(m, u, &Args{NLevels: 7})
	DrawStreams(m, streamline.NewGradField(m, u), nil, &Args{Color: "k", DropTol: 1e-3})
	err := plt.Save("/tmp/gimli", "draw01")
	if err != nil {
		tst.Errorf("cannot save figure:\n%v", err)
	}
}
