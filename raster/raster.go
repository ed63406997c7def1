// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package raster renders meshes, models and streamlines into an in-memory
// pixmap using gg. It backs the interactive viewer and PNG snapshots
package raster

import (
	"image"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/gogpu/gg"

	"github.com/ivek1312/gimli/msh"
	"github.com/ivek1312/gimli/streamline"
)

// Renderer maps mesh coordinates into a pixel canvas with a fixed margin
type Renderer struct {
	W, H   int // canvas size in pixels
	Margin int // margin in pixels [20]

	dc     *gg.Context
	m      *msh.Mesh
	scale  float64
	ox, oy float64
}

// New creates a renderer for the given mesh. Panics on non-drawable meshes
func New(m *msh.Mesh, w, h int) *Renderer {
	if m == nil || m.Ndim != 2 || len(m.Verts) < 2 {
		chk.Panic("raster needs a valid 2D mesh")
	}
	m.CreateNeighbourInfos()
	o := &Renderer{W: w, H: h, Margin: 20, dc: gg.NewContext(w, h), m: m}
	o.fit()
	o.Clear()
	return o
}

// Close releases the drawing context
func (o *Renderer) Close() error { return o.dc.Close() }

// Image returns the current pixmap
func (o *Renderer) Image() image.Image { return o.dc.Image() }

// SavePNG writes the current pixmap to a file
func (o *Renderer) SavePNG(path string) error { return o.dc.SavePNG(path) }

// Clear fills the canvas with white
func (o *Renderer) Clear() {
	o.dc.SetRGB(1, 1, 1)
	o.dc.DrawRectangle(0, 0, float64(o.W), float64(o.H))
	o.dc.Fill()
}

// Pix maps mesh coordinates to pixel coordinates (y axis flipped)
func (o *Renderer) Pix(x, y float64) (px, py float64) {
	return o.ox + (x-o.m.Xmin)*o.scale, o.oy - (y-o.m.Ymin)*o.scale
}

// Mesh maps pixel coordinates back to mesh coordinates
func (o *Renderer) Mesh(px, py float64) (x, y float64) {
	return o.m.Xmin + (px-o.ox)/o.scale, o.m.Ymin + (o.oy-py)/o.scale
}

// RenderMesh strokes all cell edges
func (o *Renderer) RenderMesh() {
	o.dc.SetRGB(0, 0, 0)
	for _, b := range o.m.Bdrys {
		lw := 0.5
		if b.Marker != 0 {
			lw = 1.5
		}
		o.dc.SetLineWidth(lw)
		va, vb := o.m.Verts[b.V[0]], o.m.Verts[b.V[1]]
		x1, y1 := o.Pix(va.C[0], va.C[1])
		x2, y2 := o.Pix(vb.C[0], vb.C[1])
		o.dc.DrawLine(x1, y1, x2, y2)
		o.dc.Stroke()
	}
}

// RenderModel fills each cell with a color ramp of its data value.
// Data is normalized to cell values first
func (o *Renderer) RenderModel(data []float64) {
	vals := msh.FitCellData(o.m, data)
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	for _, c := range o.m.Cells {
		r, g, b := rampRGB(vals[c.Id], lo, hi)
		o.fillPolygon(c.Polygon(o.m), r, g, b)
	}
}

// RenderStreams strokes streamlines, skipping segments below dropTol
func (o *Renderer) RenderStreams(lines []*streamline.Streamline, dropTol float64) {
	o.dc.SetRGB(0, 0, 0)
	o.dc.SetLineWidth(1)
	for _, l := range lines {
		for i := 0; i < l.Len()-1; i++ {
			if l.V[i] < dropTol {
				continue
			}
			x1, y1 := o.Pix(l.X[i], l.Y[i])
			x2, y2 := o.Pix(l.X[i+1], l.Y[i+1])
			o.dc.DrawLine(x1, y1, x2, y2)
		}
		o.dc.Stroke()
	}
}

// RenderHighlight outlines and shades one cell (the browser's selection)
func (o *Renderer) RenderHighlight(c *msh.Cell) {
	if c == nil {
		return
	}
	P := c.Polygon(o.m)
	o.fillPolygonRGBA(P, 0.9, 0.9, 0.9, 0.4)
	o.tracePolygon(P)
	o.dc.SetRGB(0, 0, 0)
	o.dc.SetLineWidth(1.5)
	o.dc.Stroke()
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func (o *Renderer) fit() {
	dx := o.m.Xmax - o.m.Xmin
	dy := o.m.Ymax - o.m.Ymin
	if dx < 1e-15 || dy < 1e-15 {
		chk.Panic("mesh bounding box is degenerate: dx=%g dy=%g", dx, dy)
	}
	sw := (float64(o.W) - 2*float64(o.Margin)) / dx
	sh := (float64(o.H) - 2*float64(o.Margin)) / dy
	o.scale = math.Min(sw, sh)
	o.ox = float64(o.Margin)
	o.oy = float64(o.H) - float64(o.Margin)
}

func (o *Renderer) tracePolygon(P [][]float64) {
	for i, p := range P {
		x, y := o.Pix(p[0], p[1])
		if i == 0 {
			o.dc.MoveTo(x, y)
		} else {
			o.dc.LineTo(x, y)
		}
	}
	o.dc.ClosePath()
}

func (o *Renderer) fillPolygon(P [][]float64, r, g, b float64) {
	o.tracePolygon(P)
	o.dc.SetRGB(r, g, b)
	o.dc.Fill()
}

func (o *Renderer) fillPolygonRGBA(P [][]float64, r, g, b, a float64) {
	o.tracePolygon(P)
	o.dc.SetRGBA(r, g, b, a)
	o.dc.Fill()
}

// rampRGB maps a value within [lo,hi] to a blue-white-red ramp
func rampRGB(v, lo, hi float64) (r, g, b float64) {
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	t = math.Max(0, math.Min(1, t))
	if t < 0.5 {
		s := t * 2
		return s, s, 1
	}
	s := (t - 0.5) * 2
	return 1, 1 - s, 1 - s
}
