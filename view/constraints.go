// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"

	"github.com/ivek1312/gimli/msh"
)

// ConstraintLines builds the start/end points of inter-parameter constraint
// lines. T is the (nconstraints x nregions) constraint matrix with exactly
// two non-zero entries per row naming the two coupled regions (cell marker
// values); weights (optional, one per constraint) shrink the lines towards
// the region centers
func ConstraintLines(m *msh.Mesh, T *la.Triplet, weights []float64) (start, end [][]float64) {

	// region centers: average of cell centroids per marker
	centers := make(map[int][]float64)
	counts := make(map[int]float64)
	for _, c := range m.Cells {
		x, y := c.Center(m)
		if _, ok := centers[c.Marker]; !ok {
			centers[c.Marker] = []float64{0, 0}
		}
		centers[c.Marker][0] += x
		centers[c.Marker][1] += y
		counts[c.Marker]++
	}
	for marker, p := range centers {
		p[0] /= counts[marker]
		p[1] /= counts[marker]
	}

	A := T.ToDense()
	nr, nc := A.M, A.N
	for i := 0; i < nr; i++ {
		idL, idR := -1, -1
		for j := 0; j < nc; j++ {
			if A.Get(i, j) != 0 {
				if idL < 0 {
					idL = j
				} else {
					idR = j
				}
			}
		}
		if idL < 0 || idR < 0 {
			continue
		}
		p1, ok1 := centers[idL]
		p2, ok2 := centers[idR]
		if !ok1 || !ok2 {
			chk.Panic("constraint %d references unknown region markers %d and %d", i, idL, idR)
		}
		pa := []float64{p1[0], p1[1]}
		pb := []float64{p2[0], p2[1]}
		if i < len(weights) {
			w := 1.0 - weights[i]
			pa[0] = p1[0] + (p2[0]-p1[0])/2.0*w
			pa[1] = p1[1] + (p2[1]-p1[1])/2.0*w
			pb[0] = p2[0] + (p1[0]-p2[0])/2.0*w
			pb[1] = p2[1] + (p1[1]-p2[1])/2.0*w
		}
		start = append(start, pa)
		end = append(end, pb)
	}
	return
}

// DrawConstraints draws inter-parameter constraint lines between region
// centers
func DrawConstraints(m *msh.Mesh, T *la.Triplet, weights []float64, a *Args) {
	checkDrawable(m)
	start, end := ConstraintLines(m, T, weights)
	args := &plt.A{C: a.color("b"), Lw: a.lw(0.5), NoClip: true}
	for i := range start {
		plt.Plot([]float64{start[i][0], end[i][0]}, []float64{start[i][1], end[i][1]}, args)
	}
	fitView(m, a)
}
