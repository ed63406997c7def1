// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package browser implements an interactive cell inspector: a small state
// machine that tracks the currently selected cell of a mesh and produces the
// highlight polygon and annotation text for whatever surface renders it.
// The caller owns the browser and releases it with Close; there is no global
// registry of instances
package browser

import (
	"github.com/cpmech/gosl/io"

	"github.com/ivek1312/gimli/msh"
)

// key codes understood by the browser
type Key int

const (
	KeyUp     Key = iota // select next cell
	KeyDown              // select previous cell
	KeyEscape            // hide the info window
)

// Pick is a pointer-click event in mesh coordinates
type Pick struct {
	X, Y   float64
	Button int // 1 = primary
}

// Browser tracks the selected cell of a mesh. The zero of its state is
// "hidden" (no cell selected, current == -1)
type Browser struct {
	m       *msh.Mesh
	data    []float64
	current int
	closed  bool
}

// New creates a cell browser for the given mesh. Data may be cell- or
// node-sized; other lengths are re-indexed through cell markers after a
// warning. nil data shows zeros
func New(m *msh.Mesh, data []float64) *Browser {
	if data == nil {
		data = make([]float64, len(m.Cells))
	}
	return &Browser{m: m, data: msh.FitCellData(m, data), current: -1}
}

// Close releases the browser. Further events are ignored
func (o *Browser) Close() {
	o.closed = true
	o.current = -1
}

// Current returns the selected cell id, or -1 when hidden
func (o *Browser) Current() int { return o.current }

// OnPick handles a pointer click: locate the cell under the cursor and
// select it; clicking the selected cell again (or outside the mesh)
// hides the window
func (o *Browser) OnPick(ev Pick) {
	if o.closed || ev.Button != 1 {
		return
	}
	c := o.m.FindCell(ev.X, ev.Y)
	if c == nil || c.Id == o.current {
		o.current = -1
		return
	}
	o.current = c.Id
}

// OnKey handles a key press: up/down scroll through the cells (clamped to
// the valid range), escape hides the window
func (o *Browser) OnKey(k Key) {
	if o.closed {
		return
	}
	switch k {
	case KeyEscape:
		o.current = -1
	case KeyUp:
		if o.current >= 0 {
			o.current = clamp(o.current+1, 0, len(o.m.Cells)-1)
		}
	case KeyDown:
		if o.current >= 0 {
			o.current = clamp(o.current-1, 0, len(o.m.Cells)-1)
		}
	}
}

// Cell returns the selected cell, or nil when hidden
func (o *Browser) Cell() *msh.Cell {
	if o.current < 0 {
		return nil
	}
	return o.m.Cells[o.current]
}

// HighlightPolygon returns the polygon of the selected cell, or nil
func (o *Browser) HighlightPolygon() [][]float64 {
	c := o.Cell()
	if c == nil {
		return nil
	}
	return c.Polygon(o.m)
}

// Annotation formats the info window text for the selected cell: id,
// centroid coordinates, data value and marker. Empty when hidden
func (o *Browser) Annotation() string {
	c := o.Cell()
	if c == nil {
		return ""
	}
	x, y := c.Center(o.m)
	header := io.Sf("Cell %d:\n", c.Id)
	for i := 0; i < len(header)-1; i++ {
		header += "-"
	}
	return header + io.Sf("\nx: %.2f\ny: %.2f\ndata: %.2e\nmarker: %d", x, y, o.data[c.Id], c.Marker)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
