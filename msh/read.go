// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Read reads a mesh from a .msh JSON file and builds the derived data
// (limits, boundaries, search bins)
func Read(dir, fn string) (m *Mesh, err error) {

	// new mesh
	m = new(Mesh)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, m)
	if err != nil {
		return nil, err
	}

	// check
	if m.Ndim != 2 {
		return nil, chk.Err("mesh must be 2D. ndim=%d is incorrect", m.Ndim)
	}
	for i, v := range m.Verts {
		if v.Id != i {
			return nil, chk.Err("vertex ids must be sequential. %d != %d", v.Id, i)
		}
		if len(v.C) != 2 {
			return nil, chk.Err("vertex %d: need 2 coordinates. %d is incorrect", i, len(v.C))
		}
	}
	for i, c := range m.Cells {
		if c.Id != i {
			return nil, chk.Err("cell ids must be sequential. %d != %d", c.Id, i)
		}
		if len(c.V) != 3 && len(c.V) != 4 {
			return nil, chk.Err("cell %d: need 3 or 4 vertices. %d is incorrect", i, len(c.V))
		}
		for _, iv := range c.V {
			if iv < 0 || iv >= len(m.Verts) {
				return nil, chk.Err("cell %d: vertex id %d out of range", i, iv)
			}
		}
	}

	// derived
	m.CalcLimits()
	m.CreateNeighbourInfos()
	m.SetAllValid(true)
	return
}

// Write writes the mesh to a .msh JSON file under dir, creating dir if needed
func (o *Mesh) Write(dir, fn string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return
	}
	io.WriteStringToFileD(dir, fn, string(b))
	return
}
