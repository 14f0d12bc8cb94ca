package csg

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/csg/geom"
)

// Refine returns a copy of the solid with every polygon subdivided: a
// midpoint is inserted on each edge plus one centroid vertex, and each
// original corner becomes a quadrilateral. The surface is unchanged; the
// polygon count multiplies by the vertex count of each face.
func (s *Solid) Refine() *Solid {
	var out []*geom.Polygon
	for _, poly := range s.polygons {
		n := len(poly.Vertices)
		var centroid mgl64.Vec3
		for _, v := range poly.Vertices {
			centroid = centroid.Add(v.Pos)
		}
		centroid = centroid.Mul(1 / float64(n))
		mid := geom.Vertex{Pos: centroid}
		if poly.Vertices[0].Normal.Len() > 0 {
			mid.Normal = poly.Plane.Normal
		}
		for i := 0; i < n; i++ {
			prev := poly.Vertices[(i+n-1)%n].Interpolate(poly.Vertices[i], 0.5)
			next := poly.Vertices[i].Interpolate(poly.Vertices[(i+1)%n], 0.5)
			out = append(out, mustPolygon([]geom.Vertex{poly.Vertices[i], next, mid, prev}, poly.Shared))
		}
	}
	return FromPolygons(out)
}
