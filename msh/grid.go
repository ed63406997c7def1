// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
)

// markers assigned by NewGrid to the exterior boundaries
const (
	MarkerLeft   = 1
	MarkerRight  = 2
	MarkerBottom = 3
	MarkerTop    = 4
)

// NewGrid creates a tensor-product grid of quad cells with the given x and y
// coordinates. The exterior boundaries are tagged with MarkerLeft, MarkerRight,
// MarkerBottom and MarkerTop; interior boundaries keep marker 0
func NewGrid(x, y []float64) (o *Mesh) {
	nx, ny := len(x), len(y)
	if nx < 2 || ny < 2 {
		chk.Panic("grid needs at least 2 coordinates per direction. nx=%d ny=%d", nx, ny)
	}
	o = &Mesh{Ndim: 2}

	// vertices, row-major bottom to top
	o.Verts = make([]*Vert, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			id := j*nx + i
			o.Verts[id] = &Vert{Id: id, C: []float64{x[i], y[j]}}
		}
	}

	// quad cells, counter-clockwise
	o.Cells = make([]*Cell, 0, (nx-1)*(ny-1))
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			a := j*nx + i
			c := &Cell{
				Id:    len(o.Cells),
				V:     []int{a, a + 1, a + 1 + nx, a + nx},
				Valid: true,
			}
			o.Cells = append(o.Cells, c)
		}
	}

	o.CreateNeighbourInfos()

	// tag exterior boundaries
	for _, b := range o.Bdrys {
		if b.Right != -1 {
			continue
		}
		xa, xb := o.Verts[b.V[0]].C, o.Verts[b.V[1]].C
		switch {
		case xa[0] == x[0] && xb[0] == x[0]:
			b.Marker = MarkerLeft
		case xa[0] == x[nx-1] && xb[0] == x[nx-1]:
			b.Marker = MarkerRight
		case xa[1] == y[0] && xb[1] == y[0]:
			b.Marker = MarkerBottom
		case xa[1] == y[ny-1] && xb[1] == y[ny-1]:
			b.Marker = MarkerTop
		}
	}
	return
}
