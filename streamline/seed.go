// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import (
	"github.com/cpmech/gosl/utl"

	"github.com/ivek1312/gimli/msh"
)

// seeding policies
type SeedMode int

const (
	SeedFlowBoundaries SeedMode = iota // from cells adjacent to boundaries with flow markers (default)
	SeedVertLine                       // from cells along a vertical line through the bounding box
	SeedHorizLine                      // from cells along a horizontal line through the bounding box
)

// SeedOpts holds parameters for the seeding driver
type SeedOpts struct {
	Mode     SeedMode  // seeding policy [SeedFlowBoundaries]
	ViewMesh *msh.Mesh // optional coarser mesh to walk on; data stays on the data mesh
	NSamples int       // samples along the line for SeedVertLine/SeedHorizLine [100]
	Trace    TraceOpts // tracing parameters
}

// Seed traces one streamline per eligible seed cell such that every cell of
// the (view) mesh is consumed by exactly one line. After the selected policy
// a fallback pass seeds every remaining cell in iteration order, so coverage
// is complete regardless of policy. Seeds whose cell lookup fails are
// silently skipped. The cells' Valid flags are used as visited marks for the
// duration of the call and are reset to all-true at the end
func Seed(m *msh.Mesh, fld FieldLike, opts *SeedOpts) (lines []*Streamline) {
	var o SeedOpts
	if opts != nil {
		o = *opts
	}
	if o.NSamples < 1 {
		o.NSamples = 100
	}

	view := m
	if o.ViewMesh != nil {
		view = o.ViewMesh
		o.Trace.DataMesh = m
	}
	view.CreateNeighbourInfos()
	view.SetAllValid(true)

	start := func(c *msh.Cell) {
		if c == nil || !c.Valid {
			return
		}
		cx, cy := c.Center(view)
		lines = append(lines, Trace(view, fld, []float64{cx, cy}, &o.Trace))
	}

	switch o.Mode {

	case SeedVertLine:
		x := (view.Xmin + view.Xmax) / 2.0
		for _, y := range utl.LinSpace(view.Ymin, view.Ymax, o.NSamples) {
			start(view.FindCell(x, y))
		}

	case SeedHorizLine:
		y := (view.Ymin + view.Ymax) / 2.0
		for _, x := range utl.LinSpace(view.Xmin, view.Xmax, o.NSamples) {
			start(view.FindCell(x, y))
		}

	default: // SeedFlowBoundaries
		for _, b := range view.FindBoundaryByMarker(msh.MarkerFlowMin, msh.MarkerFlowMax) {
			cid := b.Left
			if cid == -1 {
				cid = b.Right
			}
			if cid == -1 {
				continue
			}
			start(view.Cells[cid])
		}
	}

	// fallback pass: guarantee full coverage
	for _, c := range view.Cells {
		start(c)
	}

	// reset marks regardless of outcome
	view.SetAllValid(true)
	return
}
