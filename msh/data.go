// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/io"
)

// CellDataToNodeData converts cell-valued data to node values by averaging
// over the cells touching each node
func CellDataToNodeData(m *Mesh, data []float64) (res []float64) {
	res = make([]float64, len(m.Verts))
	count := make([]float64, len(m.Verts))
	for _, c := range m.Cells {
		for _, vid := range c.V {
			res[vid] += data[c.Id]
			count[vid]++
		}
	}
	for i := range res {
		if count[i] > 0 {
			res[i] /= count[i]
		}
	}
	return
}

// NodeDataToCellData converts node-valued data to cell values by averaging a
// cell's node values
func NodeDataToCellData(m *Mesh, data []float64) (res []float64) {
	res = make([]float64, len(m.Cells))
	for _, c := range m.Cells {
		for _, vid := range c.V {
			res[c.Id] += data[vid]
		}
		res[c.Id] /= float64(len(c.V))
	}
	return
}

// FitCellData normalizes data to one value per cell. Node-sized data is
// converted; data of any other length is re-indexed through the cell markers
// after a warning (best-effort recovery for model vectors indexed by region)
func FitCellData(m *Mesh, data []float64) (res []float64) {
	switch len(data) {
	case len(m.Cells):
		return data
	case len(m.Verts):
		return NodeDataToCellData(m, data)
	}
	io.Pfyel("data length mismatch cellCount: %d != %d. mapping data through cell markers\n", len(data), len(m.Cells))
	res = make([]float64, len(m.Cells))
	for _, c := range m.Cells {
		if c.Marker >= 0 && c.Marker < len(data) {
			res[c.Id] = data[c.Marker]
		}
	}
	return
}
