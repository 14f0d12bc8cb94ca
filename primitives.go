package csg

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/csg/geom"
)

// Tessellation defaults shared with the scene loader.
const (
	DefaultSlices = 16
	DefaultStacks = 8
)

// mustPolygon builds a polygon whose vertices the factories have already
// validated to be a proper convex loop.
func mustPolygon(vertices []geom.Vertex, shared any) *geom.Polygon {
	p, err := geom.NewPolygon(vertices, shared)
	if err != nil {
		panic(err)
	}
	return p
}

// cubeCorner decodes a corner index into a position: bit 0 selects the x
// side, bit 1 the y side, bit 2 the z side.
func cubeCorner(center, radius mgl64.Vec3, i int) mgl64.Vec3 {
	sign := func(bit int) float64 {
		if i&bit != 0 {
			return 1
		}
		return -1
	}
	return mgl64.Vec3{
		center.X() + radius.X()*sign(1),
		center.Y() + radius.Y()*sign(2),
		center.Z() + radius.Z()*sign(4),
	}
}

// Cube returns an axis-aligned cuboid centered on center with half-extents
// radius: six quadrilateral faces with outward winding, vertex normals set
// to the face normal.
func Cube(center, radius mgl64.Vec3) (*Solid, error) {
	if radius.X() <= 0 || radius.Y() <= 0 || radius.Z() <= 0 {
		return nil, fmt.Errorf("cube: radius must be positive on every axis, got %v", radius)
	}
	faces := [6]struct {
		corners [4]int
		normal  mgl64.Vec3
	}{
		{[4]int{0, 4, 6, 2}, mgl64.Vec3{-1, 0, 0}},
		{[4]int{1, 3, 7, 5}, mgl64.Vec3{1, 0, 0}},
		{[4]int{0, 1, 5, 4}, mgl64.Vec3{0, -1, 0}},
		{[4]int{2, 6, 7, 3}, mgl64.Vec3{0, 1, 0}},
		{[4]int{0, 2, 3, 1}, mgl64.Vec3{0, 0, -1}},
		{[4]int{4, 5, 7, 6}, mgl64.Vec3{0, 0, 1}},
	}
	polygons := make([]*geom.Polygon, 0, len(faces))
	for _, face := range faces {
		vertices := make([]geom.Vertex, 0, 4)
		for _, c := range face.corners {
			vertices = append(vertices, geom.Vertex{
				Pos:    cubeCorner(center, radius, c),
				Normal: face.normal,
			})
		}
		polygons = append(polygons, mustPolygon(vertices, nil))
	}
	return FromPolygons(polygons), nil
}

// CubeR is Cube with a single scalar half-extent for all three axes.
func CubeR(center mgl64.Vec3, radius float64) (*Solid, error) {
	return Cube(center, mgl64.Vec3{radius, radius, radius})
}

// Sphere returns a latitude/longitude tessellated sphere. The top and
// bottom rings emit triangles, the middle rings quadrilaterals; vertex
// normals point radially outward.
func Sphere(center mgl64.Vec3, radius float64, slices, stacks int) (*Solid, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere: radius must be positive, got %g", radius)
	}
	if slices < 3 || stacks < 2 {
		return nil, fmt.Errorf("sphere: need at least 3 slices and 2 stacks, got %d/%d", slices, stacks)
	}
	vertex := func(theta, phi float64) geom.Vertex {
		d := mgl64.Vec3{
			math.Cos(theta) * math.Sin(phi),
			math.Cos(phi),
			math.Sin(theta) * math.Sin(phi),
		}
		return geom.Vertex{Pos: center.Add(d.Mul(radius)), Normal: d}
	}
	dTheta := 2 * math.Pi / float64(slices)
	dPhi := math.Pi / float64(stacks)
	var polygons []*geom.Polygon
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			vertices := make([]geom.Vertex, 0, 4)
			vertices = append(vertices, vertex(float64(i)*dTheta, float64(j)*dPhi))
			if j > 0 {
				vertices = append(vertices, vertex(float64(i+1)*dTheta, float64(j)*dPhi))
			}
			if j < stacks-1 {
				vertices = append(vertices, vertex(float64(i+1)*dTheta, float64(j+1)*dPhi))
			}
			vertices = append(vertices, vertex(float64(i)*dTheta, float64(j+1)*dPhi))
			polygons = append(polygons, mustPolygon(vertices, nil))
		}
	}
	return FromPolygons(polygons), nil
}

// axisFrame derives an orthonormal frame around the axis from start to
// end. The frame seeds the radial directions of Cylinder and Cone.
func axisFrame(ray mgl64.Vec3) (axisX, axisY, axisZ mgl64.Vec3) {
	axisZ = ray.Normalize()
	isY := 0.0
	if math.Abs(axisZ.Y()) > 0.5 {
		isY = 1
	}
	axisX = mgl64.Vec3{isY, 1 - isY, 0}.Cross(axisZ).Normalize()
	axisY = axisX.Cross(axisZ).Normalize()
	return axisX, axisY, axisZ
}

// Cylinder returns a cylinder from start to end: triangle fans capping
// both ends plus quadrilateral side strips with radial normals.
func Cylinder(start, end mgl64.Vec3, radius float64, slices int) (*Solid, error) {
	ray := end.Sub(start)
	if ray.Len() == 0 {
		return nil, fmt.Errorf("cylinder: start and end coincide at %v", start)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("cylinder: radius must be positive, got %g", radius)
	}
	if slices < 3 {
		return nil, fmt.Errorf("cylinder: need at least 3 slices, got %d", slices)
	}
	axisX, axisY, axisZ := axisFrame(ray)
	startV := geom.Vertex{Pos: start, Normal: axisZ.Mul(-1)}
	endV := geom.Vertex{Pos: end, Normal: axisZ}
	// normalBlend slides the vertex normal between the radial direction on
	// the side (0) and the cap direction at the rim (±1).
	point := func(stack, angle, normalBlend float64) geom.Vertex {
		out := axisX.Mul(math.Cos(angle)).Add(axisY.Mul(math.Sin(angle)))
		return geom.Vertex{
			Pos:    start.Add(ray.Mul(stack)).Add(out.Mul(radius)),
			Normal: out.Mul(1 - math.Abs(normalBlend)).Add(axisZ.Mul(normalBlend)),
		}
	}
	dt := 2 * math.Pi / float64(slices)
	polygons := make([]*geom.Polygon, 0, 3*slices)
	for i := 0; i < slices; i++ {
		t0 := float64(i) * dt
		t1 := float64(i+1) * dt
		polygons = append(polygons,
			mustPolygon([]geom.Vertex{startV, point(0, t0, -1), point(0, t1, -1)}, nil),
			mustPolygon([]geom.Vertex{point(0, t1, 0), point(0, t0, 0), point(1, t0, 0), point(1, t1, 0)}, nil),
			mustPolygon([]geom.Vertex{endV, point(1, t1, 1), point(1, t0, 1)}, nil),
		)
	}
	return FromPolygons(polygons), nil
}

// Cone returns a cone with its base disk at start and its tip at end: a
// triangle fan cap at the base plus triangular side faces sharing the tip.
// Side normals lean along the axis by the taper angle.
func Cone(start, end mgl64.Vec3, radius float64, slices int) (*Solid, error) {
	ray := end.Sub(start)
	if ray.Len() == 0 {
		return nil, fmt.Errorf("cone: start and end coincide at %v", start)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("cone: radius must be positive, got %g", radius)
	}
	if slices < 3 {
		return nil, fmt.Errorf("cone: need at least 3 slices, got %d", slices)
	}
	axisX, axisY, axisZ := axisFrame(ray)
	startNormal := axisZ.Mul(-1)
	startV := geom.Vertex{Pos: start, Normal: startNormal}
	taper := math.Atan2(radius, ray.Len())
	sinTaper, cosTaper := math.Sin(taper), math.Cos(taper)
	point := func(angle float64) (pos, normal mgl64.Vec3) {
		out := axisX.Mul(math.Cos(angle)).Add(axisY.Mul(math.Sin(angle)))
		pos = start.Add(out.Mul(radius))
		normal = out.Mul(cosTaper).Add(axisZ.Mul(sinTaper))
		return pos, normal
	}
	dt := 2 * math.Pi / float64(slices)
	polygons := make([]*geom.Polygon, 0, 2*slices)
	for i := 0; i < slices; i++ {
		p0, n0 := point(float64(i) * dt)
		p1, n1 := point(float64(i+1) * dt)
		tipNormal := n0.Add(n1).Mul(0.5)
		polygons = append(polygons,
			mustPolygon([]geom.Vertex{startV, {Pos: p0, Normal: startNormal}, {Pos: p1, Normal: startNormal}}, nil),
			mustPolygon([]geom.Vertex{{Pos: p0, Normal: n0}, {Pos: end, Normal: tipNormal}, {Pos: p1, Normal: n1}}, nil),
		)
	}
	return FromPolygons(polygons), nil
}
