package geom

import (
	"fmt"
)

// Polygon is a convex, coplanar loop of vertices in consistent winding
// (counter-clockwise seen from the outward side). The supporting plane is
// derived from the first three vertices at construction and cached.
//
// Shared is an opaque caller-owned tag carried unchanged onto every clone
// and split fragment; the kernel never inspects it. It can hold per-face
// metadata such as a color or a material id.
type Polygon struct {
	Vertices []Vertex
	Shared   any
	Plane    Plane
}

// NewPolygon builds a polygon from at least three vertices. Loops with
// fewer vertices, or with a collinear leading triple, have no well-defined
// supporting plane and are rejected.
func NewPolygon(vertices []Vertex, shared any) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(vertices))
	}
	a, b, c := vertices[0].Pos, vertices[1].Pos, vertices[2].Pos
	if b.Sub(a).Cross(c.Sub(a)).Len() == 0 {
		return nil, fmt.Errorf("polygon has collinear leading vertices %v %v %v", a, b, c)
	}
	return newPolygon(vertices, shared), nil
}

// newPolygon skips validation. It builds the split fragments, which inherit
// a known-good loop from the polygon being split.
func newPolygon(vertices []Vertex, shared any) *Polygon {
	return &Polygon{
		Vertices: vertices,
		Shared:   shared,
		Plane:    NewPlane(vertices[0].Pos, vertices[1].Pos, vertices[2].Pos),
	}
}

// Clone returns a deep copy of the polygon. The shared tag is carried over
// as-is.
func (p *Polygon) Clone() *Polygon {
	vertices := make([]Vertex, len(p.Vertices))
	copy(vertices, p.Vertices)
	return &Polygon{Vertices: vertices, Shared: p.Shared, Plane: p.Plane}
}

// Flip turns the polygon inside out: the winding reverses, every vertex
// normal negates and the cached plane flips.
func (p *Polygon) Flip() {
	for i, j := 0, len(p.Vertices)-1; i < j; i, j = i+1, j-1 {
		p.Vertices[i], p.Vertices[j] = p.Vertices[j], p.Vertices[i]
	}
	for i := range p.Vertices {
		p.Vertices[i].Flip()
	}
	p.Plane.Flip()
}
