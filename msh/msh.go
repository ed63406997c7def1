// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements a 2D unstructured mesh made of triangle and
// quadrilateral cells, with boundary (edge) topology, marker tags, spatial
// point-to-cell search and per-cell gradient evaluation of nodal fields
package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// constants
var (
	TolC = 1e-10 // tolerance for point-in-cell tests
	Ndiv = 20    // bins n-division for spatial search
)

// markers reserved for flow boundaries. boundaries tagged within this range
// are used as streamline seeds
const (
	MarkerFlowMin = 1
	MarkerFlowMax = 99
)

// Vert holds vertex data
type Vert struct {
	Id     int       `json:"i"` // id
	Marker int       `json:"m"` // marker
	C      []float64 `json:"c"` // coordinates [2]
}

// Boundary holds edge data. an edge belongs to one cell (exterior edge) or is
// shared by two cells. Left/Right == -1 means no cell on that side
type Boundary struct {
	Id     int    `json:"-"` // id
	Marker int    `json:"m"` // marker
	V      [2]int `json:"v"` // vertex ids
	Left   int    `json:"-"` // id of cell on the left side or -1
	Right  int    `json:"-"` // id of cell on the right side or -1
}

// Cell holds cell data. V has 3 entries for triangles and 4 for quads.
// Valid is scratch state owned by callers during streamline seeding
type Cell struct {
	Id     int   `json:"i"` // id
	Marker int   `json:"m"` // marker
	V      []int `json:"v"` // vertex ids (3 or 4, counter-clockwise)
	Valid  bool  `json:"-"` // scratch flag: "not yet consumed by a streamline"
}

// Mesh holds a 2D mesh
type Mesh struct {
	Ndim  int         `json:"ndim"`            // space dimension
	Verts []*Vert     `json:"verts"`           // vertices
	Cells []*Cell     `json:"cells"`           // cells
	Bdrys []*Boundary `json:"bdrys,omitempty"` // boundaries (edges); Left/Right set by CreateNeighbourInfos

	// derived
	Xmin, Xmax float64 `json:"-"` // limits
	Ymin, Ymax float64 `json:"-"` // limits

	// auxiliary
	vertCells [][]int // [nverts] ids of cells touching each vertex
	bins      gm.Bins // bins of vertices for fast point location
}

// CalcLimits computes the bounding box of the mesh
func (o *Mesh) CalcLimits() {
	if len(o.Verts) < 1 {
		chk.Panic("mesh has no vertices")
	}
	o.Xmin, o.Xmax = o.Verts[0].C[0], o.Verts[0].C[0]
	o.Ymin, o.Ymax = o.Verts[0].C[1], o.Verts[0].C[1]
	for _, v := range o.Verts {
		o.Xmin = math.Min(o.Xmin, v.C[0])
		o.Xmax = math.Max(o.Xmax, v.C[0])
		o.Ymin = math.Min(o.Ymin, v.C[1])
		o.Ymax = math.Max(o.Ymax, v.C[1])
	}
}

// CreateNeighbourInfos builds the boundary list from cell edges and links each
// boundary to its left/right cells. Markers of pre-existing boundaries are
// kept. It also (re)builds the auxiliary search structures. Idempotent
func (o *Mesh) CreateNeighbourInfos() {

	// keep markers of previously tagged edges
	type edge struct{ a, b int }
	oldMarkers := make(map[edge]int)
	for _, b := range o.Bdrys {
		a, c := b.V[0], b.V[1]
		if a > c {
			a, c = c, a
		}
		oldMarkers[edge{a, c}] = b.Marker
	}

	// collect edges: the first cell registering an edge walks it
	// counter-clockwise and becomes the left cell
	o.Bdrys = make([]*Boundary, 0, len(o.Cells)*2)
	e2b := make(map[edge]*Boundary)
	for _, c := range o.Cells {
		nv := len(c.V)
		for i := 0; i < nv; i++ {
			a, b := c.V[i], c.V[(i+1)%nv]
			key := edge{a, b}
			if a > b {
				key = edge{b, a}
			}
			if bry, ok := e2b[key]; ok {
				bry.Right = c.Id
				continue
			}
			bry := &Boundary{Id: len(o.Bdrys), Marker: oldMarkers[key], V: [2]int{a, b}, Left: c.Id, Right: -1}
			o.Bdrys = append(o.Bdrys, bry)
			e2b[key] = bry
		}
	}

	// cells touching each vertex
	o.vertCells = make([][]int, len(o.Verts))
	for _, c := range o.Cells {
		for _, v := range c.V {
			o.vertCells[v] = append(o.vertCells[v], c.Id)
		}
	}

	// bins of vertices
	o.CalcLimits()
	δ := TolC * 2
	xi := []float64{o.Xmin - δ, o.Ymin - δ}
	xf := []float64{o.Xmax + δ, o.Ymax + δ}
	o.bins.Init(xi, xf, []int{Ndiv, Ndiv})
	for _, v := range o.Verts {
		o.bins.Append(v.C, v.Id, nil)
	}
}

// FindCell returns the cell containing point (x,y) or nil. The search first
// tests the cells around the vertex closest to the point and falls back to a
// linear scan
func (o *Mesh) FindCell(x, y float64) *Cell {
	if len(o.vertCells) != len(o.Verts) {
		o.CreateNeighbourInfos()
	}
	if x < o.Xmin-TolC || x > o.Xmax+TolC || y < o.Ymin-TolC || y > o.Ymax+TolC {
		return nil
	}
	vid, _ := o.bins.FindClosest([]float64{x, y})
	if vid >= 0 {
		for _, cid := range o.vertCells[vid] {
			if o.Cells[cid].Contains(o, x, y) {
				return o.Cells[cid]
			}
		}
	}
	for _, c := range o.Cells {
		if c.Contains(o, x, y) {
			return c
		}
	}
	return nil
}

// FindBoundaryByMarker returns all boundaries with lo <= marker <= hi
func (o *Mesh) FindBoundaryByMarker(lo, hi int) (res []*Boundary) {
	for _, b := range o.Bdrys {
		if b.Marker >= lo && b.Marker <= hi {
			res = append(res, b)
		}
	}
	return
}

// SetAllValid sets the scratch Valid flag of every cell
func (o *Mesh) SetAllValid(flag bool) {
	for _, c := range o.Cells {
		c.Valid = flag
	}
}

// Center returns the centroid of a cell
func (o *Cell) Center(m *Mesh) (x, y float64) {
	for _, vid := range o.V {
		x += m.Verts[vid].C[0]
		y += m.Verts[vid].C[1]
	}
	n := float64(len(o.V))
	return x / n, y / n
}

// Polygon returns the closed polygon of a cell as [][]float64{{x,y},...}
func (o *Cell) Polygon(m *Mesh) (P [][]float64) {
	P = make([][]float64, len(o.V))
	for i, vid := range o.V {
		P[i] = []float64{m.Verts[vid].C[0], m.Verts[vid].C[1]}
	}
	return
}

// Size returns a characteristic length of the cell: the distance from the
// centroid to the first vertex
func (o *Cell) Size(m *Mesh) float64 {
	cx, cy := o.Center(m)
	v := m.Verts[o.V[0]]
	return math.Hypot(v.C[0]-cx, v.C[1]-cy)
}

// Contains reports whether point (x,y) lies inside the cell. Quads are tested
// as two triangles
func (o *Cell) Contains(m *Mesh, x, y float64) bool {
	in, _ := o.locate(m, x, y)
	return in
}

// Grad evaluates the gradient of the node-valued scalar field u at point
// (x,y) using linear shape functions on the sub-triangle containing the
// point. len(u) must equal the number of vertices in the mesh
func (o *Cell) Grad(m *Mesh, x, y float64, u []float64) (gx, gy float64) {
	if len(u) != len(m.Verts) {
		chk.Panic("Grad needs node values. len(u)=%d must be %d", len(u), len(m.Verts))
	}
	_, t := o.locate(m, x, y)
	x1, y1 := m.Verts[t[0]].C[0], m.Verts[t[0]].C[1]
	x2, y2 := m.Verts[t[1]].C[0], m.Verts[t[1]].C[1]
	x3, y3 := m.Verts[t[2]].C[0], m.Verts[t[2]].C[1]
	det := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if math.Abs(det) < TolC {
		return 0, 0
	}
	u1, u2, u3 := u[t[0]], u[t[1]], u[t[2]]
	gx = (u1*(y2-y3) + u2*(y3-y1) + u3*(y1-y2)) / det
	gy = (u1*(x3-x2) + u2*(x1-x3) + u3*(x2-x1)) / det
	return
}

// Interp evaluates the node-valued scalar field u at point (x,y) by linear
// interpolation on the sub-triangle containing the point
func (o *Cell) Interp(m *Mesh, x, y float64, u []float64) float64 {
	_, t := o.locate(m, x, y)
	l1, l2, l3, ok := baryCoords(m, t, x, y)
	if !ok {
		return u[t[0]]
	}
	return l1*u[t[0]] + l2*u[t[1]] + l3*u[t[2]]
}

// locate returns whether (x,y) is inside the cell and the vertex ids of the
// sub-triangle used for interpolation. For points outside, the first
// sub-triangle is returned
func (o *Cell) locate(m *Mesh, x, y float64) (inside bool, tri [3]int) {
	tri = [3]int{o.V[0], o.V[1], o.V[2]}
	if triContains(m, tri, x, y) {
		return true, tri
	}
	if len(o.V) == 4 {
		alt := [3]int{o.V[0], o.V[2], o.V[3]}
		if triContains(m, alt, x, y) {
			return true, alt
		}
	}
	return false, tri
}

func triContains(m *Mesh, t [3]int, x, y float64) bool {
	l1, l2, l3, ok := baryCoords(m, t, x, y)
	if !ok {
		return false
	}
	tol := 1e-12
	return l1 >= -tol && l2 >= -tol && l3 >= -tol
}

func baryCoords(m *Mesh, t [3]int, x, y float64) (l1, l2, l3 float64, ok bool) {
	x1, y1 := m.Verts[t[0]].C[0], m.Verts[t[0]].C[1]
	x2, y2 := m.Verts[t[1]].C[0], m.Verts[t[1]].C[1]
	x3, y3 := m.Verts[t[2]].C[0], m.Verts[t[2]].C[1]
	det := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if math.Abs(det) < TolC {
		return 0, 0, 0, false
	}
	l1 = ((y2-y3)*(x-x3) + (x3-x2)*(y-y3)) / det
	l2 = ((y3-y1)*(x-x3) + (x1-x3)*(y-y3)) / det
	l3 = 1 - l1 - l2
	return l1, l2, l3, true
}
