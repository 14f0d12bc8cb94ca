// Package vtk writes polygon meshes in the ASCII legacy VTK POLYDATA
// format (DataFile version 3.0).
package vtk

import (
	"bufio"
	"fmt"
	"io"
)

// Write emits the mesh to w. The layout is fixed: the version-3.0 header
// carrying the title, a POINTS block with one "x y z" line per vertex, and
// a POLYGONS block with one "<k> i0 i1 ... ik-1" line per face. The
// POLYGONS size field counts every index plus one length entry per face.
func Write(w io.Writer, title string, verts [][3]float64, faces [][]int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# vtk DataFile Version 3.0\n%s\nASCII\nDATASET POLYDATA\n", title)
	fmt.Fprintf(bw, "POINTS %d float\n", len(verts))
	for _, v := range verts {
		fmt.Fprintf(bw, "%g %g %g\n", v[0], v[1], v[2])
	}
	size := 0
	for _, face := range faces {
		size += len(face)
	}
	fmt.Fprintf(bw, "POLYGONS %d %d\n", len(faces), len(faces)+size)
	for _, face := range faces {
		fmt.Fprintf(bw, "%d", len(face))
		for _, i := range face {
			fmt.Fprintf(bw, " %d", i)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
