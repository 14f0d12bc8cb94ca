package csg

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/csg/vtk"
)

// VerticesAndPolygons exports the solid as a deduplicated vertex table
// plus per-face index lists. Vertices merge on exact position; indices are
// assigned in first-seen order and every face keeps its winding. The third
// return value is the total number of indices across all faces.
func (s *Solid) VerticesAndPolygons() (verts [][3]float64, faces [][]int, count int) {
	index := make(map[[3]float64]int)
	faces = make([][]int, 0, len(s.polygons))
	for _, poly := range s.polygons {
		face := make([]int, 0, len(poly.Vertices))
		for _, v := range poly.Vertices {
			key := [3]float64{v.Pos.X(), v.Pos.Y(), v.Pos.Z()}
			i, ok := index[key]
			if !ok {
				i = len(verts)
				index[key] = i
				verts = append(verts, key)
			}
			face = append(face, i)
			count++
		}
		faces = append(faces, face)
	}
	return verts, faces, count
}

// Bounds returns the axis-aligned min and max corners over every vertex of
// the solid. A solid without polygons reports zero bounds.
func (s *Solid) Bounds() (min, max mgl64.Vec3) {
	first := true
	for _, poly := range s.polygons {
		for _, v := range poly.Vertices {
			if first {
				min, max = v.Pos, v.Pos
				first = false
				continue
			}
			for i := 0; i < 3; i++ {
				min[i] = math.Min(min[i], v.Pos[i])
				max[i] = math.Max(max[i], v.Pos[i])
			}
		}
	}
	return min, max
}

// SaveVTK writes the solid to path as an ASCII legacy VTK POLYDATA file
// with the given title.
func (s *Solid) SaveVTK(path, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving vtk: %w", err)
	}
	verts, faces, _ := s.VerticesAndPolygons()
	if err := vtk.Write(f, title, verts, faces); err != nil {
		f.Close()
		return fmt.Errorf("saving vtk: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving vtk: %w", err)
	}
	return nil
}
