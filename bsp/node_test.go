package bsp

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/csg/geom"
)

// boxPolygons returns the six outward-wound faces of an axis-aligned box.
func boxPolygons(t *testing.T, center mgl64.Vec3, r float64) []*geom.Polygon {
	t.Helper()
	corner := func(i int) mgl64.Vec3 {
		sign := func(bit int) float64 {
			if i&bit != 0 {
				return 1
			}
			return -1
		}
		return mgl64.Vec3{
			center.X() + r*sign(1),
			center.Y() + r*sign(2),
			center.Z() + r*sign(4),
		}
	}
	faces := [6][4]int{
		{0, 4, 6, 2},
		{1, 3, 7, 5},
		{0, 1, 5, 4},
		{2, 6, 7, 3},
		{0, 2, 3, 1},
		{4, 5, 7, 6},
	}
	polygons := make([]*geom.Polygon, 0, 6)
	for _, face := range faces {
		vertices := make([]geom.Vertex, 0, 4)
		for _, c := range face {
			vertices = append(vertices, geom.Vertex{Pos: corner(c)})
		}
		poly, err := geom.NewPolygon(vertices, nil)
		if err != nil {
			t.Fatalf("building box face: %v", err)
		}
		polygons = append(polygons, poly)
	}
	return polygons
}

func triangle(t *testing.T, a, b, c mgl64.Vec3) *geom.Polygon {
	t.Helper()
	poly, err := geom.NewPolygon([]geom.Vertex{{Pos: a}, {Pos: b}, {Pos: c}}, nil)
	if err != nil {
		t.Fatalf("building triangle: %v", err)
	}
	return poly
}

func TestEmptyNode(t *testing.T) {
	n := New(nil)
	if n.Plane != nil || n.Front != nil || n.Back != nil || len(n.Polygons) != 0 {
		t.Fatal("empty build must leave the node empty")
	}

	// Nothing to clip against: the input comes back as-is.
	tri := triangle(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	out := n.ClipPolygons([]*geom.Polygon{tri})
	if len(out) != 1 || out[0] != tri {
		t.Fatalf("empty node clipped the input: got %d polygons", len(out))
	}
	if got := n.AllPolygons(); len(got) != 0 {
		t.Fatalf("empty node enumerates %d polygons", len(got))
	}
}

func TestBuildSingleTriangle(t *testing.T) {
	tri := triangle(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 0})
	n := New([]*geom.Polygon{tri})

	if n.Plane == nil {
		t.Fatal("node has no splitting plane")
	}
	if !vec3ApproxEqual(n.Plane.Normal, tri.Plane.Normal, 1e-12) {
		t.Errorf("node plane %v, want the triangle's plane %v", n.Plane.Normal, tri.Plane.Normal)
	}
	if len(n.Polygons) != 1 || n.Front != nil || n.Back != nil {
		t.Fatalf("single coplanar polygon must stay at the root: %d polygons, front=%v back=%v",
			len(n.Polygons), n.Front, n.Back)
	}
}

func TestBuildBox(t *testing.T) {
	n := New(boxPolygons(t, mgl64.Vec3{}, 1))
	if got := n.AllPolygons(); len(got) != 6 {
		t.Fatalf("box tree enumerates %d polygons, want 6", len(got))
	}
}

func TestBuildNotQuitePlanarQuad(t *testing.T) {
	// This quad is not exactly planar: built naively it keeps landing at
	// the back of its own cutting plane and the tree never stops growing.
	// It must be absorbed as coplanar instead.
	poly, err := geom.NewPolygon([]geom.Vertex{
		{Pos: mgl64.Vec3{0.12, -0.24, 1.50}},
		{Pos: mgl64.Vec3{0.01, 0.00, 1.75}},
		{Pos: mgl64.Vec3{-0.03, 0.05, 1.79}},
		{Pos: mgl64.Vec3{-0.13, -0.08, 1.5}},
	}, nil)
	if err != nil {
		t.Fatalf("building quad: %v", err)
	}

	n := New([]*geom.Polygon{poly})
	if got := n.AllPolygons(); len(got) != 1 {
		t.Fatalf("tree enumerates %d polygons, want the quad kept as coplanar", len(got))
	}
	if n.Front != nil || n.Back != nil {
		t.Error("quad must be absorbed at its own node, not split further")
	}
}

func TestInvert(t *testing.T) {
	front := triangle(t, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 1}, mgl64.Vec3{1, 1, 1})
	root := triangle(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 0})
	n := New([]*geom.Polygon{root, front})

	if n.Front == nil || n.Back != nil {
		t.Fatalf("setup: expected a front child only, front=%v back=%v", n.Front, n.Back)
	}
	rootNormal := n.Plane.Normal

	n.Invert()

	if !vec3ApproxEqual(n.Plane.Normal, rootNormal.Mul(-1), 1e-12) {
		t.Errorf("inverted plane normal = %v, want %v", n.Plane.Normal, rootNormal.Mul(-1))
	}
	if n.Back == nil || n.Front != nil {
		t.Error("invert must swap the front and back children")
	}
	if !vec3ApproxEqual(n.Polygons[0].Plane.Normal, mgl64.Vec3{0, 0, -1}, 1e-12) {
		t.Errorf("node polygon was not flipped: normal %v", n.Polygons[0].Plane.Normal)
	}

	// Double inversion restores the original sense.
	n.Invert()
	if !vec3ApproxEqual(n.Plane.Normal, rootNormal, 1e-12) || n.Front == nil {
		t.Error("double invert did not restore the tree")
	}
}

func TestClipPolygons(t *testing.T) {
	box := New(boxPolygons(t, mgl64.Vec3{}, 1))

	inside := triangle(t,
		mgl64.Vec3{-0.5, -0.5, 0},
		mgl64.Vec3{0.5, -0.5, 0},
		mgl64.Vec3{0, 0.5, 0},
	)
	if out := box.ClipPolygons([]*geom.Polygon{inside}); len(out) != 0 {
		t.Errorf("polygon inside the solid survived clipping: %d fragments", len(out))
	}

	outside := triangle(t,
		mgl64.Vec3{4.5, -0.5, 0},
		mgl64.Vec3{5.5, -0.5, 0},
		mgl64.Vec3{5, 0.5, 0},
	)
	if out := box.ClipPolygons([]*geom.Polygon{outside}); len(out) == 0 {
		t.Error("polygon outside the solid was clipped away")
	}

	// A polygon reaching through the box keeps only its outside parts.
	spanning := triangle(t,
		mgl64.Vec3{-4, -0.5, 0},
		mgl64.Vec3{4, -0.5, 0},
		mgl64.Vec3{0, 0.5, 0},
	)
	out := box.ClipPolygons([]*geom.Polygon{spanning})
	if len(out) == 0 {
		t.Fatal("spanning polygon was clipped away entirely")
	}
	for _, frag := range out {
		for _, v := range frag.Vertices {
			if v.Pos.X() > -1+geom.Epsilon && v.Pos.X() < 1-geom.Epsilon {
				t.Errorf("fragment vertex %v lies inside the solid", v.Pos)
			}
		}
	}
}

func TestClipTo(t *testing.T) {
	a := New(boxPolygons(t, mgl64.Vec3{}, 1))
	b := New(boxPolygons(t, mgl64.Vec3{0.5, 0.5, 0}, 1))

	a.ClipTo(b)

	// No polygon of a may keep a vertex strictly inside b.
	for _, poly := range a.AllPolygons() {
		for _, v := range poly.Vertices {
			if v.Pos.X() > -0.5+geom.Epsilon && v.Pos.X() < 1.5-geom.Epsilon &&
				v.Pos.Y() > -0.5+geom.Epsilon && v.Pos.Y() < 1.5-geom.Epsilon &&
				v.Pos.Z() > -1+geom.Epsilon && v.Pos.Z() < 1-geom.Epsilon {
				t.Errorf("vertex %v remains inside the clipping solid", v.Pos)
			}
		}
	}
}

func TestClone(t *testing.T) {
	n := New(boxPolygons(t, mgl64.Vec3{}, 1))
	clone := n.Clone()

	if len(clone.AllPolygons()) != len(n.AllPolygons()) {
		t.Fatal("clone has a different polygon count")
	}

	// Mutating the clone leaves the original untouched.
	clone.Invert()
	if !vec3ApproxEqual(n.Plane.Normal, clone.Plane.Normal.Mul(-1), 1e-12) {
		t.Error("inverting the clone reached the original tree")
	}
	original := n.AllPolygons()[0].Vertices[0].Pos
	clone.AllPolygons()[0].Vertices[0].Pos = mgl64.Vec3{9, 9, 9}
	if n.AllPolygons()[0].Vertices[0].Pos != original {
		t.Error("clone shares vertex storage with the original")
	}
}

func vec3ApproxEqual(a, b mgl64.Vec3, tolerance float64) bool {
	d := a.Sub(b)
	return d.Len() < tolerance
}
