// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package view draws meshes, models and fields with gosl/plt. All rendering
// options are enumerated in the Args structure; there is no pass-through of
// unrecognized options
package view

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/ivek1312/gimli/msh"
)

// Args holds the recognized rendering options with their defaults
type Args struct {
	Color     string  // line color [black]
	Lw        float64 // linewidth [0.3 for inner mesh edges, 1.5 for tagged boundaries]
	HideMesh  bool    // draw only tagged boundaries and omit inner edges
	NoFitView bool    // do not adjust axes limits to the mesh bounding box
	Gouraud   bool    // smooth (node-based) shading instead of flat cell fill
	NoFill    bool    // skip filled contours, draw contour lines only
	NoLines   bool    // skip contour lines
	NLevels   int     // number of contour levels [5]
	DropTol   float64 // suppress stream segments with magnitude below this [0]
	Marker    string  // point marker for sensors and nodes
}

func (a *Args) color(def string) string {
	if a != nil && a.Color != "" {
		return a.Color
	}
	return def
}

func (a *Args) lw(def float64) float64 {
	if a != nil && a.Lw > 0 {
		return a.Lw
	}
	return def
}

func (a *Args) nlevels() int {
	if a != nil && a.NLevels > 0 {
		return a.NLevels
	}
	return 5
}

// fitView adjusts the axes limits to the mesh bounding box
func fitView(m *msh.Mesh, a *Args) {
	if a != nil && a.NoFitView {
		return
	}
	plt.AxisXrange(m.Xmin, m.Xmax)
	plt.AxisYrange(m.Ymin, m.Ymax)
	plt.Equal()
}

// checkDrawable panics on geometry the renderer cannot handle (fatal tier)
func checkDrawable(m *msh.Mesh) {
	if m == nil {
		chk.Panic("invalid mesh: nil")
	}
	if m.Ndim != 2 {
		chk.Panic("can only draw 2D meshes. ndim=%d", m.Ndim)
	}
	if len(m.Verts) < 2 {
		chk.Panic("mesh has too few vertices: %d", len(m.Verts))
	}
}

// DrawMesh draws the mesh edges with boundary markers colorized and fits the
// axes to the mesh extent
func DrawMesh(m *msh.Mesh, a *Args) {
	checkDrawable(m)
	DrawMeshBoundaries(m, a)
}

// DrawMeshBoundaries draws the mesh edges. Untagged inner edges come thin and
// black (unless HideMesh), flow boundaries (markers 1..99) and strongly
// tagged boundaries (markers < -4) come thick
func DrawMeshBoundaries(m *msh.Mesh, a *Args) {
	checkDrawable(m)
	m.CreateNeighbourInfos()

	if a == nil || !a.HideMesh {
		var inner []*msh.Boundary
		for _, b := range m.Bdrys {
			if b.Marker == 0 {
				inner = append(inner, b)
			}
		}
		DrawSelectedBoundaries(m, inner, &Args{Color: a.color("k"), Lw: a.lw(0.3)})
	}

	flow := m.FindBoundaryByMarker(msh.MarkerFlowMin, msh.MarkerFlowMax)
	DrawSelectedBoundaries(m, flow, &Args{Color: a.color("k"), Lw: 1.5})

	var tagged []*msh.Boundary
	for _, b := range m.Bdrys {
		if b.Marker < -4 {
			tagged = append(tagged, b)
		}
	}
	DrawSelectedBoundaries(m, tagged, &Args{Color: a.color("k"), Lw: 1.5})

	fitView(m, a)
}

// DrawSelectedBoundaries draws a subset of boundaries as line segments
func DrawSelectedBoundaries(m *msh.Mesh, bdrys []*msh.Boundary, a *Args) {
	if len(bdrys) == 0 {
		return
	}
	args := &plt.A{C: a.color("k"), Lw: a.lw(1.0), NoClip: true}
	for _, b := range bdrys {
		va, vb := m.Verts[b.V[0]], m.Verts[b.V[1]]
		plt.Plot([]float64{va.C[0], vb.C[0]}, []float64{va.C[1], vb.C[1]}, args)
	}
}

// DrawModel draws the mesh with each cell colored by its data value. Data may
// be cell- or node-sized; any other length is re-indexed through the cell
// markers after a warning
func DrawModel(m *msh.Mesh, data []float64, a *Args) {
	checkDrawable(m)
	if len(m.Cells) == 0 {
		chk.Panic("DrawModel: the mesh has no cells")
	}
	if data == nil {
		data = make([]float64, len(m.Cells))
	}
	vals := msh.FitCellData(m, data)
	lo, hi := minmax(vals)
	for _, c := range m.Cells {
		col := cmapColor(vals[c.Id], lo, hi)
		plt.Polyline(c.Polygon(m), &plt.A{Fc: col, Ec: col, Lw: 0.1, Closed: true, NoClip: true})
	}
	fitView(m, a)
}

// DrawSensors draws sensor positions as circles of the given diameter.
// diam <= 0 uses an eighth of the first two sensors' distance
func DrawSensors(sensors [][]float64, diam float64, a *Args) {
	if len(sensors) == 0 {
		return
	}
	if diam <= 0 {
		if len(sensors) < 2 {
			chk.Panic("cannot derive sensor diameter from a single sensor")
		}
		dx := sensors[1][0] - sensors[0][0]
		dy := sensors[1][1] - sensors[0][1]
		diam = math.Hypot(dx, dy) / 8.0
	}
	for _, s := range sensors {
		plt.Circle(s[0], s[1], diam/2.0, &plt.A{Fc: a.color("k"), Ec: a.color("k")})
	}
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func minmax(v []float64) (lo, hi float64) {
	lo, hi = v[0], v[0]
	for _, x := range v {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return
}

// cmapColor maps a value within [lo,hi] to a blue-white-red ramp hex color
func cmapColor(v, lo, hi float64) string {
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	t = math.Max(0, math.Min(1, t))
	var r, g, b float64
	if t < 0.5 {
		s := t * 2
		r, g, b = s, s, 1
	} else {
		s := (t - 0.5) * 2
		r, g, b = 1, 1-s, 1-s
	}
	return io.Sf("#%02x%02x%02x", int(r*255), int(g*255), int(b*255))
}
