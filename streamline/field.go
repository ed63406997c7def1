// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/ivek1312/gimli/msh"
)

// FieldLike provides the flow direction for the tracer. Dir returns the
// (unnormalized) direction and must be evaluated at a point inside cell c
type FieldLike interface {
	Dir(c *msh.Cell, x, y float64) (dx, dy float64)
}

// GradField is a scalar field whose flow direction is the negative gradient
// (flow goes downhill). Values are stored per node
type GradField struct {
	M *msh.Mesh // mesh carrying the data
	U []float64 // node values
}

// NewGradField wraps scalar data given per cell or per node. Data of any
// other length is re-indexed through cell markers (with a warning) first
func NewGradField(m *msh.Mesh, data []float64) *GradField {
	if len(data) == len(m.Verts) {
		return &GradField{M: m, U: data}
	}
	cvals := msh.FitCellData(m, data)
	return &GradField{M: m, U: msh.CellDataToNodeData(m, cvals)}
}

// Dir returns the negative gradient of the scalar field at (x,y)
func (o *GradField) Dir(c *msh.Cell, x, y float64) (dx, dy float64) {
	gx, gy := c.Grad(o.M, x, y, o.U)
	return -gx, -gy
}

// VecField is a pre-computed 2-component vector field given per cell or per
// node
type VecField struct {
	M      *msh.Mesh // mesh carrying the data
	Vx, Vy []float64 // components
	nodal  bool
}

// NewVecField wraps vector data. len(vx) must equal either the cell count
// (piecewise constant) or the node count (linear interpolation)
func NewVecField(m *msh.Mesh, vx, vy []float64) *VecField {
	if len(vx) != len(vy) {
		chk.Panic("vector field components have different lengths: %d != %d", len(vx), len(vy))
	}
	switch len(vx) {
	case len(m.Cells):
		return &VecField{M: m, Vx: vx, Vy: vy}
	case len(m.Verts):
		return &VecField{M: m, Vx: vx, Vy: vy, nodal: true}
	}
	chk.Panic("vector field needs cell- or node-sized data. len=%d ncells=%d nnodes=%d", len(vx), len(m.Cells), len(m.Verts))
	return nil
}

// Dir samples the vector field at (x,y)
func (o *VecField) Dir(c *msh.Cell, x, y float64) (dx, dy float64) {
	if o.nodal {
		return c.Interp(o.M, x, y, o.Vx), c.Interp(o.M, x, y, o.Vy)
	}
	return o.Vx[c.Id], o.Vy[c.Id]
}

// UniformField is a constant vector field; handy for tests and sanity plots
type UniformField struct {
	Dx, Dy float64
}

// Dir returns the constant direction
func (o UniformField) Dir(c *msh.Cell, x, y float64) (dx, dy float64) {
	return o.Dx, o.Dy
}

func mag(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}
