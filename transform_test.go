package csg

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// requirePlanesTrack asserts that every polygon's cached plane still
// contains all of its vertices.
func requirePlanesTrack(t *testing.T, s *Solid) {
	t.Helper()
	for i, poly := range s.Polygons() {
		for _, v := range poly.Vertices {
			d := poly.Plane.Normal.Dot(v.Pos) - poly.Plane.W
			require.InDelta(t, 0, d, 1e-9, "polygon %d: cached plane is %g off vertex %v", i, d, v.Pos)
		}
	}
}

func TestTranslate(t *testing.T) {
	s := unitCube(t)
	s.Translate(mgl64.Vec3{1, 2, 3})

	min, max := s.Bounds()
	require.Equal(t, mgl64.Vec3{0, 1, 2}, min)
	require.Equal(t, mgl64.Vec3{2, 3, 4}, max)

	requirePlanesTrack(t, s)

	// Normals do not translate.
	require.Equal(t, mgl64.Vec3{-1, 0, 0}, s.Polygons()[0].Vertices[0].Normal)
}

func TestRotate(t *testing.T) {
	s := unitCube(t)
	require.NoError(t, s.Rotate(mgl64.Vec3{0, 0, 1}, 90))

	// (1,1,1) maps to (-1,1,1) under a quarter turn about z.
	found := false
	for _, poly := range s.Polygons() {
		for _, v := range poly.Vertices {
			if v.Pos.Sub(mgl64.Vec3{-1, 1, 1}).Len() < 1e-9 {
				found = true
			}
		}
	}
	require.True(t, found, "rotated corner not found")

	requirePlanesTrack(t, s)
}

func TestRotateKeepsNormalsUnit(t *testing.T) {
	s, err := Sphere(mgl64.Vec3{}, 1, 8, 4)
	require.NoError(t, err)
	require.NoError(t, s.Rotate(mgl64.Vec3{1, 1, 0}, 33))

	for _, poly := range s.Polygons() {
		for _, v := range poly.Vertices {
			require.InDelta(t, 1, v.Normal.Len(), 1e-9)
		}
	}
}

func TestRotateZeroAxis(t *testing.T) {
	s := unitCube(t)
	require.Error(t, s.Rotate(mgl64.Vec3{}, 45))
}

func TestBooleanAfterRotate(t *testing.T) {
	// Booleans classify against the cached planes, so a rotated solid
	// must keep them in sync with its rotated vertices.
	a := unitCube(t)
	require.NoError(t, a.Rotate(mgl64.Vec3{0, 0, 1}, 45))

	b, err := CubeR(mgl64.Vec3{8, 0, 0}, 1)
	require.NoError(t, err)

	result := a.Subtract(b)
	require.Len(t, result.Polygons(), len(a.Polygons()),
		"subtracting a far-away solid must leave the rotated faces alone")

	// The rotated cube's diagonal now spans sqrt(2) along x.
	min, max := result.Bounds()
	require.InDelta(t, -math.Sqrt2, min.X(), 1e-9)
	require.InDelta(t, math.Sqrt2, max.X(), 1e-9)
}
