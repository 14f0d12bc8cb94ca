package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used by SplitPolygon to decide whether a point
// lies on a plane. It is calibrated for unit-scale geometry; meshes at a
// radically different scale should be normalized before Boolean work.
const Epsilon = 1e-5

// Per-vertex classification codes. Front and back combine with bitwise OR,
// so a polygon holding strictly-front and strictly-back vertices aggregates
// to sideSpanning.
const (
	sideCoplanar = 0
	sideFront    = 1
	sideBack     = 2
	sideSpanning = 3
)

// Plane is an oriented plane {Normal, W} satisfying Normal·p = W for every
// point p on the plane. Normal is unit length when the plane is built from
// points.
type Plane struct {
	Normal mgl64.Vec3
	W      float64
}

// NewPlane constructs the plane through a, b and c, oriented by the
// right-hand rule on (b-a) × (c-a). Collinear points yield a degenerate
// plane; callers guarantee a valid triple.
func NewPlane(a, b, c mgl64.Vec3) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: n, W: n.Dot(a)}
}

// Flip reverses the plane's orientation. The point set is unchanged.
func (p *Plane) Flip() {
	p.Normal = p.Normal.Mul(-1)
	p.W = -p.W
}

// SplitPolygon classifies poly against the plane and appends it, or its
// fragments, to the matching sinks. Coplanar polygons go to coplanarFront
// or coplanarBack depending on their orientation relative to the plane;
// polygons entirely on one side go to front or back unchanged; spanning
// polygons are cut in two, interpolating a fresh vertex where an edge
// crosses the plane. The same slice may be passed for several sinks.
func (p *Plane) SplitPolygon(poly *Polygon, coplanarFront, coplanarBack, front, back *[]*Polygon) {
	n := len(poly.Vertices)
	polyType := sideCoplanar
	types := make([]int, n)
	for i, v := range poly.Vertices {
		t := p.Normal.Dot(v.Pos) - p.W
		side := sideCoplanar
		switch {
		case t < -Epsilon:
			side = sideBack
		case t > Epsilon:
			side = sideFront
		}
		types[i] = side
		polyType |= side
	}

	switch polyType {
	case sideCoplanar:
		if p.Normal.Dot(poly.Plane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
	case sideFront:
		*front = append(*front, poly)
	case sideBack:
		*back = append(*back, poly)
	case sideSpanning:
		var f, b []Vertex
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := poly.Vertices[i], poly.Vertices[j]
			if ti != sideBack {
				f = append(f, vi)
			}
			if ti != sideFront {
				b = append(b, vi)
			}
			if ti|tj == sideSpanning {
				// One endpoint strictly front, the other strictly back,
				// so the denominator cannot vanish.
				t := (p.W - p.Normal.Dot(vi.Pos)) / p.Normal.Dot(vj.Pos.Sub(vi.Pos))
				v := vi.Interpolate(vj, t)
				f = append(f, v)
				b = append(b, v)
			}
		}
		if len(f) >= 3 {
			*front = append(*front, newPolygon(f, poly.Shared))
		}
		if len(b) >= 3 {
			*back = append(*back, newPolygon(b, poly.Shared))
		}
	}
}
