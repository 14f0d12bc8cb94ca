package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a polygon corner: a position plus an optional outward normal.
// The zero normal means "unspecified". Vertices are plain values, so
// assigning one is already a deep copy.
type Vertex struct {
	Pos    mgl64.Vec3
	Normal mgl64.Vec3
}

// Flip inverts the orientation-specific data of the vertex, i.e. its
// normal. Called when the winding of the owning polygon is reversed.
func (v *Vertex) Flip() {
	v.Normal = v.Normal.Mul(-1)
}

// Interpolate returns the vertex between v and other at parameter t, with
// position and normal blended linearly.
func (v Vertex) Interpolate(other Vertex, t float64) Vertex {
	return Vertex{
		Pos:    Lerp(v.Pos, other.Pos, t),
		Normal: Lerp(v.Normal, other.Normal, t),
	}
}
