// Package csg combines closed 3D polyhedral solids with Boolean set
// operations (union, subtraction, intersection, complement) using a BSP
// tree representation of each solid's boundary.
//
//	a, _ := csg.Cube(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
//	b, _ := csg.Sphere(mgl64.Vec3{}, 1.3, 16, 8)
//	polygons := a.Subtract(b).Polygons()
//
// Every operation reduces to two tree primitives: ClipTo, which removes
// the parts of one tree lying inside another, and Invert, which swaps
// solid and empty space. A naive union
//
//	a.ClipTo(b); b.ClipTo(a); a.Build(b.AllPolygons())
//
// keeps two copies of faces the solids share on a common plane. Clipping
// the complement of b against a first removes b's copy, which is why the
// scripts below carry the extra Invert/ClipTo/Invert step. Subtraction
// and intersection follow by De Morgan: A−B = ¬(¬A ∪ B) and
// A∩B = ¬(¬A ∪ ¬B), expanded in place.
//
// Boolean operations never modify their inputs. The in-place transforms
// Translate and Rotate are the one deliberate exception to that rule.
package csg

import (
	"github.com/akmonengine/csg/bsp"
	"github.com/akmonengine/csg/geom"
)

// Solid is a closed polyhedron described by its boundary: a list of convex
// polygons with outward winding.
type Solid struct {
	polygons []*geom.Polygon
}

// FromPolygons wraps a polygon list in a Solid. The solid takes ownership
// of the slice.
func FromPolygons(polygons []*geom.Polygon) *Solid {
	return &Solid{polygons: polygons}
}

// Polygons returns the solid's boundary polygons. The slice is the solid's
// own storage; Clone first if mutation is intended.
func (s *Solid) Polygons() []*geom.Polygon {
	return s.polygons
}

// Clone returns a deep copy of the solid.
func (s *Solid) Clone() *Solid {
	polygons := make([]*geom.Polygon, len(s.polygons))
	for i, p := range s.polygons {
		polygons[i] = p.Clone()
	}
	return FromPolygons(polygons)
}

// Union returns the solid covering space that is in s, in other, or in
// both. Neither input is modified.
//
//	   A.Union(B)
//
//	   +-------+            +-------+
//	   |       |            |       |
//	   |   A   |            |       |
//	   |    +--+----+   =   |       +----+
//	   +----+--+    |       +----+       |
//	        |   B   |            |       |
//	        |       |            |       |
//	        +-------+            +-------+
func (s *Solid) Union(other *Solid) *Solid {
	a := bsp.New(s.Clone().polygons)
	b := bsp.New(other.Clone().polygons)
	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	a.Build(b.AllPolygons())
	return FromPolygons(a.AllPolygons())
}

// Subtract returns the solid covering space that is in s but not in
// other. Neither input is modified.
//
//	   A.Subtract(B)
//
//	   +-------+            +-------+
//	   |       |            |       |
//	   |   A   |            |       |
//	   |    +--+----+   =   |    +--+
//	   +----+--+    |       +----+
//	        |   B   |
//	        |       |
//	        +-------+
func (s *Solid) Subtract(other *Solid) *Solid {
	a := bsp.New(s.Clone().polygons)
	b := bsp.New(other.Clone().polygons)
	a.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	a.Build(b.AllPolygons())
	a.Invert()
	return FromPolygons(a.AllPolygons())
}

// Intersect returns the solid covering space that is in both s and other.
// Neither input is modified.
//
//	   A.Intersect(B)
//
//	   +-------+
//	   |       |
//	   |   A   |
//	   |    +--+----+   =   +--+
//	   +----+--+    |       +--+
//	        |   B   |
//	        |       |
//	        +-------+
func (s *Solid) Intersect(other *Solid) *Solid {
	a := bsp.New(s.Clone().polygons)
	b := bsp.New(other.Clone().polygons)
	a.Invert()
	b.ClipTo(a)
	b.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	a.Build(b.AllPolygons())
	a.Invert()
	return FromPolygons(a.AllPolygons())
}

// Inverse returns the complement solid: solid and empty space switched.
// No tree is built; every polygon of a clone is flipped.
func (s *Solid) Inverse() *Solid {
	out := s.Clone()
	for _, p := range out.polygons {
		p.Flip()
	}
	return out
}
