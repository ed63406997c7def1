// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mkgallery scans the documentation examples and tutorials and writes the
// sidebar gallery carousel
package main

import (
	"github.com/cpmech/gosl/io"

	"github.com/ivek1312/gimli/gallery"
)

func main() {

	// read input parameters
	srcPath := io.ArgToString(0, ".")
	outPath := io.ArgToString(1, ".")
	verbose := io.ArgToBool(2, true)

	if verbose {
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"source path", "srcPath", srcPath,
			"output path", "outPath", outPath,
			"show messages", "verbose", verbose,
		))
	}

	items := gallery.Make(gallery.Config{SrcDir: srcPath, OutDir: outPath})

	if verbose {
		io.Pf("\nadding %d examples/tutorials to sidebar gallery\n\n", len(items))
		io.Pf("\t%-40s%s\n\t", "Title", "File")
		for i := 0; i < 80; i++ {
			io.Pf("-")
		}
		io.Pf("\n")
		for _, it := range items {
			io.Pf("\t%-40s%s\n", it.Title, it.Path)
		}
	}
}
