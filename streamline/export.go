// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// ExportGeoJSON encodes streamlines as a GeoJSON FeatureCollection.
// Lines with at least two points become LineString features with the
// magnitude samples in property "v"; degenerate single-point lines become
// Point features
func ExportGeoJSON(lines []*Streamline) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for i, l := range lines {
		if l.Len() == 0 {
			continue
		}
		var f *geojson.Feature
		if l.Len() == 1 {
			f = geojson.NewPointFeature([]float64{l.X[0], l.Y[0]})
		} else {
			coords := make([][]float64, l.Len())
			for j := range l.X {
				coords[j] = []float64{l.X[j], l.Y[j]}
			}
			f = geojson.NewLineStringFeature(coords)
		}
		f.SetProperty("sid", i)
		f.SetProperty("v", l.V)
		f.SetProperty("ncells", len(l.Cells))
		fc.AddFeature(f)
	}
	return json.Marshal(fc)
}

// ExportVTK saves streamlines as a legacy binary *.vtk file (poly-lines with
// the field magnitude as point data) for visualization
func ExportVTK(filepath string, lines []*Streamline) error {
	buf, endi, np, nl := new(bytes.Buffer), binary.BigEndian, 0, 0
	for _, l := range lines {
		if l.Len() > 0 {
			np += l.Len()
			nl++
		}
	}

	binary.Write(buf, endi, []byte("# vtk DataFile Version 3.0\n"))
	binary.Write(buf, endi, []byte(fmt.Sprintf("Streamlines: %d vertices\n", np)))
	binary.Write(buf, endi, []byte("BINARY\n"))
	binary.Write(buf, endi, []byte("DATASET UNSTRUCTURED_GRID\n"))

	binary.Write(buf, endi, []byte(fmt.Sprintf("POINTS %d float\n", np)))
	for _, l := range lines {
		for i := range l.X {
			binary.Write(buf, endi, float32(l.X[i]))
			binary.Write(buf, endi, float32(l.Y[i]))
			binary.Write(buf, endi, float32(0))
		}
	}

	binary.Write(buf, endi, []byte(fmt.Sprintf("\nCELLS %d %d\n", nl, np+nl)))
	ii := 0
	for _, l := range lines {
		if l.Len() == 0 {
			continue
		}
		binary.Write(buf, endi, int32(l.Len()))
		for i := 0; i < l.Len(); i++ {
			binary.Write(buf, endi, int32(ii+i))
		}
		ii += l.Len()
	}

	binary.Write(buf, endi, []byte(fmt.Sprintf("\nCELL_TYPES %d\n", nl)))
	for i := 0; i < nl; i++ {
		binary.Write(buf, endi, int32(4)) // VTK_POLY_LINE
	}

	binary.Write(buf, endi, []byte(fmt.Sprintf("\nPOINT_DATA %d\n", np)))
	binary.Write(buf, endi, []byte("SCALARS magnitude float\n"))
	binary.Write(buf, endi, []byte("LOOKUP_TABLE default\n"))
	for _, l := range lines {
		for i := range l.V {
			binary.Write(buf, endi, float32(l.V[i]))
		}
	}

	return os.WriteFile(filepath, buf.Bytes(), 0644)
}
