// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/ivek1312/gimli/msh"
)

func Test_trace01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trace01. uniform field exits through the boundary")

	m := msh.NewGrid(utl.LinSpace(0, 10, 11), utl.LinSpace(0, 5, 6))
	fld := UniformField{Dx: 1, Dy: 0}

	l := Trace(m, fld, []float64{5.2, 2.6}, nil)
	if l.Len() < 3 {
		tst.Errorf("streamline too short: %d points\n", l.Len())
		return
	}

	// terminal condition is the mesh exit, not the step budget
	if l.Len() >= 10000 {
		tst.Errorf("step budget exhausted\n")
		return
	}

	// both ends reach within one cell of the left and right boundaries
	chk.Float64(tst, "x first", 1.1, l.X[0], m.Xmin)
	chk.Float64(tst, "x last", 1.1, l.X[l.Len()-1], m.Xmax)
	for i := range l.Y {
		chk.Float64(tst, "y", 1e-12, l.Y[i], 2.6)
		chk.Float64(tst, "v", 1e-12, l.V[i], 1)
	}
}

func Test_trace02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trace02. zero field gives a degenerate line")

	m := msh.NewGrid(utl.LinSpace(0, 1, 4), utl.LinSpace(0, 1, 4))
	fld := UniformField{}

	l := Trace(m, fld, []float64{0.5, 0.5}, nil)
	chk.IntAssert(l.Len(), 1)
	chk.Float64(tst, "v", 1e-15, l.V[0], 0)
}

func Test_trace03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trace03. seed outside the mesh gives an empty line")

	m := msh.NewGrid(utl.LinSpace(0, 1, 3), utl.LinSpace(0, 1, 3))
	l := Trace(m, UniformField{Dx: 1}, []float64{5, 5}, nil)
	chk.IntAssert(l.Len(), 0)
	chk.IntAssert(len(l.Cells), 0)
}

func Test_trace04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trace04. gradient flow goes downhill")

	m := msh.NewGrid(utl.LinSpace(0, 4, 9), utl.LinSpace(0, 1, 3))

	// u = x  =>  flow direction is -grad u = (-1, 0)
	u := make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		u[i] = v.C[0]
	}
	fld := NewGradField(m, u)

	l := Trace(m, fld, []float64{2.1, 0.4}, &TraceOpts{Dir: DirDown})
	if l.Len() < 2 {
		tst.Errorf("streamline too short: %d points\n", l.Len())
		return
	}
	// downstream means decreasing x
	if l.X[l.Len()-1] >= l.X[0] {
		tst.Errorf("streamline does not go downhill: x0=%g xlast=%g\n", l.X[0], l.X[l.Len()-1])
		return
	}
	for i := range l.V {
		chk.Float64(tst, "v", 1e-12, l.V[i], 1)
	}
}

func Test_trace05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trace05. lines stop at consumed cells")

	m := msh.NewGrid(utl.LinSpace(0, 10, 11), utl.LinSpace(0, 2, 3))
	fld := UniformField{Dx: 1, Dy: 0}

	first := Trace(m, fld, []float64{5.3, 0.5}, nil)
	if len(first.Cells) < 5 {
		tst.Errorf("first line consumed too few cells: %d\n", len(first.Cells))
		return
	}

	// a second seed on the same row hits consumed territory immediately
	second := Trace(m, fld, []float64{5.3, 0.5}, nil)
	if len(second.Cells) != 0 {
		tst.Errorf("second line consumed %d cells of the first\n", len(second.Cells))
	}
}

func Test_trace06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trace06. coarse view mesh with fine data mesh")

	data := msh.NewGrid(utl.LinSpace(0, 4, 21), utl.LinSpace(0, 2, 11))
	view := msh.NewGrid(utl.LinSpace(0, 4, 5), utl.LinSpace(0, 2, 3))

	u := make([]float64, len(data.Verts))
	for i, v := range data.Verts {
		u[i] = -v.C[0] // flow towards +x
	}
	fld := NewGradField(data, u)

	l := Trace(view, fld, []float64{2.1, 1.1}, &TraceOpts{DataMesh: data})
	if l.Len() < 3 {
		tst.Errorf("streamline too short: %d points\n", l.Len())
		return
	}
	chk.Float64(tst, "x first", 1.2, l.X[0], view.Xmin)
	chk.Float64(tst, "x last", 1.2, l.X[l.Len()-1], view.Xmax)
	for _, cid := range l.Cells {
		if cid < 0 || cid >= len(view.Cells) {
			tst.Errorf("consumed cell id %d is not a view mesh cell\n", cid)
			return
		}
	}
}
