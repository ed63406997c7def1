// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/ivek1312/gimli/msh"
)

// coveredCells collects the ids consumed by all lines and fails on duplicates
func coveredCells(tst *testing.T, lines []*Streamline) (ids []int) {
	seen := make(map[int]bool)
	for _, l := range lines {
		for _, cid := range l.Cells {
			if seen[cid] {
				tst.Errorf("cell %d consumed by more than one streamline\n", cid)
				return
			}
			seen[cid] = true
			ids = append(ids, cid)
		}
	}
	sort.Ints(ids)
	return
}

func Test_seed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("seed01. full coverage: each cell in exactly one line")

	m := msh.NewGrid(utl.LinSpace(0, 6, 7), utl.LinSpace(0, 4, 5))
	fld := UniformField{Dx: 1, Dy: 0.3}

	lines := Seed(m, fld, nil)
	ids := coveredCells(tst, lines)
	chk.Ints(tst, "covered cells", ids, utl.IntRange(len(m.Cells)))

	// quirk preserved: marks reset to all-true at the end
	for _, c := range m.Cells {
		if !c.Valid {
			tst.Errorf("cell %d not reset to valid after the pass\n", c.Id)
			return
		}
	}
}

func Test_seed02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("seed02. coverage is mode-independent")

	fld := UniformField{Dx: 0.5, Dy: 1}
	modes := []SeedMode{SeedFlowBoundaries, SeedVertLine, SeedHorizLine}

	var ref []int
	for i, mode := range modes {
		m := msh.NewGrid(utl.LinSpace(0, 3, 7), utl.LinSpace(0, 3, 7))
		lines := Seed(m, fld, &SeedOpts{Mode: mode})
		ids := coveredCells(tst, lines)
		if i == 0 {
			ref = ids
			chk.IntAssert(len(ref), len(m.Cells))
			continue
		}
		chk.Ints(tst, "covered set", ids, ref)
	}
}

func Test_seed03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("seed03. zero field: every line is degenerate, coverage holds")

	m := msh.NewGrid(utl.LinSpace(0, 2, 5), utl.LinSpace(0, 2, 5))
	lines := Seed(m, UniformField{}, nil)

	for _, l := range lines {
		chk.IntAssert(l.Len(), 1)
	}
	ids := coveredCells(tst, lines)
	chk.Ints(tst, "covered cells", ids, utl.IntRange(len(m.Cells)))
}

func Test_seed04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("seed04. scalar data seeds from flow boundaries")

	m := msh.NewGrid(utl.LinSpace(0, 4, 9), utl.LinSpace(0, 4, 9))

	// u = x + y  =>  flow direction (-1,-1)
	u := make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		u[i] = v.C[0] + v.C[1]
	}
	lines := Seed(m, NewGradField(m, u), &SeedOpts{Mode: SeedFlowBoundaries})

	ids := coveredCells(tst, lines)
	chk.Ints(tst, "covered cells", ids, utl.IntRange(len(m.Cells)))

	// at least one line actually moved
	moved := false
	for _, l := range lines {
		if l.Len() > 2 {
			moved = true
		}
	}
	if !moved {
		tst.Errorf("no streamline moved on a non-zero field\n")
	}
}
