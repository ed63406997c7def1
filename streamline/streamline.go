// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package streamline traces flow lines of scalar-gradient or vector fields
// across a 2D unstructured mesh, one cell at a time. A seeding driver covers
// the whole mesh such that every cell belongs to exactly one streamline
package streamline

import (
	"math"

	"github.com/ivek1312/gimli/msh"
)

// Streamline is one traced flow line: an ordered polyline with the local
// field magnitude at each point and the ids of the cells it consumed
type Streamline struct {
	X, Y  []float64 // points
	V     []float64 // field magnitude at each point
	Cells []int     // ids of cells consumed by this line
}

// Len returns the number of points
func (o *Streamline) Len() int { return len(o.X) }

// direction selector for Trace
type TraceDir int

const (
	DirBoth TraceDir = iota // trace backward and forward and merge (default)
	DirDown                 // only along the flow direction
	DirUp                   // only against the flow direction
)

// TraceOpts holds tracing parameters with their defaults
type TraceOpts struct {
	MaxSteps int       // maximum number of emitted samples per direction [10000]
	SubSteps int       // sub-advances per emitted sample [5]
	Dir      TraceDir  // direction policy [DirBoth]
	DataMesh *msh.Mesh // optional fine mesh carrying the data; walking happens on the view mesh
}

func (o *TraceOpts) withDefaults() (r TraceOpts) {
	r = TraceOpts{MaxSteps: 10000, SubSteps: 5, Dir: DirBoth}
	if o != nil {
		if o.MaxSteps > 0 {
			r.MaxSteps = o.MaxSteps
		}
		if o.SubSteps > 0 {
			r.SubSteps = o.SubSteps
		}
		r.Dir = o.Dir
		r.DataMesh = o.DataMesh
	}
	return
}

// Trace walks from start along the field's flow line, cell by cell,
// and returns the resulting streamline. It consumes the Valid flag of every
// cell it passes through and ends when it leaves the mesh, enters an already
// consumed cell, exhausts the step budget, or the field vanishes. A start
// point outside the mesh yields an empty line; a vanishing field at the seed
// yields a degenerate single-point line
func Trace(m *msh.Mesh, fld FieldLike, start []float64, opts *TraceOpts) (line *Streamline) {
	o := opts.withDefaults()
	line = &Streamline{}
	seed := m.FindCell(start[0], start[1])
	if seed == nil {
		return
	}
	if seed.Valid {
		seed.Valid = false
		line.Cells = append(line.Cells, seed.Id)
	}

	if o.Dir == DirDown || o.Dir == DirUp {
		sign := 1.0
		if o.Dir == DirUp {
			sign = -1
		}
		traceDir(m, fld, seed, start[0], start[1], sign, &o, line)
		return
	}

	// backward branch first, then release the seed cell so the forward
	// branch may leave it again, and merge reversed-backward + forward
	var down, up Streamline
	down.Cells = line.Cells
	traceDir(m, fld, seed, start[0], start[1], -1, &o, &down)
	seed.Valid = true
	traceDir(m, fld, seed, start[0], start[1], 1, &o, &up)
	seed.Valid = false

	n := len(down.X)
	line.X = make([]float64, 0, n+len(up.X))
	line.Y = make([]float64, 0, n)
	line.V = make([]float64, 0, n)
	for i := n - 1; i >= 0; i-- {
		line.X = append(line.X, down.X[i])
		line.Y = append(line.Y, down.Y[i])
		line.V = append(line.V, down.V[i])
	}
	if len(up.X) > 0 {
		line.X = append(line.X, up.X[1:]...)
		line.Y = append(line.Y, up.Y[1:]...)
		line.V = append(line.V, up.V[1:]...)
	}
	line.Cells = down.Cells
	for _, cid := range up.Cells {
		if cid != seed.Id {
			line.Cells = append(line.Cells, cid)
		}
	}
	return
}

// traceDir walks one direction, appending samples to line. sign=+1 follows
// the field direction, sign=-1 goes against it
func traceDir(m *msh.Mesh, fld FieldLike, seed *msh.Cell, x0, y0, sign float64, o *TraceOpts, line *Streamline) {

	locate := func(x, y float64) *msh.Cell { return m.FindCell(x, y) }
	dataCell := func(c *msh.Cell, x, y float64) *msh.Cell {
		if o.DataMesh == nil {
			return c
		}
		return o.DataMesh.FindCell(x, y)
	}

	c := seed
	x, y := x0, y0
	dc := dataCell(c, x, y)
	if dc == nil {
		return
	}
	dx, dy := fld.Dir(dc, x, y)
	line.X = append(line.X, x)
	line.Y = append(line.Y, y)
	line.V = append(line.V, mag(dx, dy))
	if mag(dx, dy) == 0 {
		return // degenerate: vanishing field at the seed
	}

	for len(line.X) < o.MaxSteps {

		// advance: SubSteps small moves along the normalized direction.
		// the step length scales with the current cell size so path
		// smoothness is independent of the number of emitted points
		dLength := c.Size(m) / float64(o.SubSteps)
		xp, yp := x, y
		dead := false
		for i := 0; i < o.SubSteps; i++ {
			v := mag(dx, dy)
			if v == 0 {
				dead = true
				break
			}
			x += sign * dx / v * dLength
			y += sign * dy / v * dLength
			if dc = dataCell(c, x, y); dc == nil {
				break
			}
			dx, dy = fld.Dir(dc, x, y)
		}
		if dead {
			break
		}
		if math.Hypot(x-xp, y-yp) < msh.TolC {
			break // stalled at a singular point
		}

		// re-locate; leaving the mesh is the ordinary terminal condition
		cNew := locate(x, y)
		if cNew == nil {
			break
		}
		if cNew.Id != c.Id {
			if !cNew.Valid {
				break // territory of another streamline
			}
			cNew.Valid = false
			line.Cells = append(line.Cells, cNew.Id)
			c = cNew
		}

		if dc = dataCell(c, x, y); dc == nil {
			break
		}
		dx, dy = fld.Dir(dc, x, y)
		line.X = append(line.X, x)
		line.Y = append(line.Y, y)
		line.V = append(line.V, mag(dx, dy))
		if mag(dx, dy) == 0 {
			break
		}
	}
}
