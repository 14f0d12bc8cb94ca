package csg

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Translate moves every vertex by disp, in place. Normals are unchanged;
// each polygon's cached plane offset shifts along its normal so the plane
// keeps tracking the moved surface.
func (s *Solid) Translate(disp mgl64.Vec3) {
	for _, poly := range s.polygons {
		for i := range poly.Vertices {
			poly.Vertices[i].Pos = poly.Vertices[i].Pos.Add(disp)
		}
		poly.Plane.W += poly.Plane.Normal.Dot(disp)
	}
}

// Rotate turns the solid about an axis through the origin by angleDeg
// degrees, in place. Vertex positions and non-zero vertex normals rotate
// together, and each polygon's cached plane is recomputed so that later
// Boolean work classifies against the rotated surface.
func (s *Solid) Rotate(axis mgl64.Vec3, angleDeg float64) error {
	if axis.Len() == 0 {
		return fmt.Errorf("rotate: axis must be non-zero")
	}
	q := mgl64.QuatRotate(mgl64.DegToRad(angleDeg), axis.Normalize())
	for _, poly := range s.polygons {
		for i := range poly.Vertices {
			v := &poly.Vertices[i]
			v.Pos = q.Rotate(v.Pos)
			if v.Normal.Len() > 0 {
				v.Normal = q.Rotate(v.Normal)
			}
		}
		poly.Plane.Normal = q.Rotate(poly.Plane.Normal)
		poly.Plane.W = poly.Plane.Normal.Dot(poly.Vertices[0].Pos)
	}
	return nil
}
