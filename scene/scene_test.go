package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const pipeScene = `
title: pipe fitting
solids:
  - name: body
    cube: {center: [0, 0, 0], radius: [1, 1, 1]}
  - name: bore
    cylinder: {start: [0, -2, 0], end: [0, 2, 0], radius: 0.5, slices: 16}
ops:
  - {name: fitting, op: subtract, a: body, b: bore}
result: fitting
`

func TestParseAndBuild(t *testing.T) {
	doc, err := Parse([]byte(pipeScene))
	require.NoError(t, err)
	require.Equal(t, "pipe fitting", doc.Title)
	require.Len(t, doc.Solids, 2)
	require.Len(t, doc.Ops, 1)

	solid, err := doc.Build()
	require.NoError(t, err)
	require.NotEmpty(t, solid.Polygons())

	// The bore runs through the cube, so the result still fills the
	// cube's bounds.
	min, max := solid.Bounds()
	require.Equal(t, mgl64.Vec3{-1, -1, -1}, min)
	require.Equal(t, mgl64.Vec3{1, 1, 1}, max)
}

func TestBuildDefaults(t *testing.T) {
	doc, err := Parse([]byte(`
solids:
  - name: ball
    sphere: {}
result: ball
`))
	require.NoError(t, err)

	solid, err := doc.Build()
	require.NoError(t, err)
	// Default tessellation: 16 slices by 8 stacks, radius 1.
	require.Len(t, solid.Polygons(), 16*8)
	min, max := solid.Bounds()
	require.InDelta(t, -1, min.Y(), 1e-9)
	require.InDelta(t, 1, max.Y(), 1e-9)
}

func TestBuildTransforms(t *testing.T) {
	doc, err := Parse([]byte(`
solids:
  - name: box
    cube: {radius: [1]}
    translate: [3, 0, 0]
    rotate: {axis: [0, 0, 1], angle_deg: 90}
result: box
`))
	require.NoError(t, err)

	solid, err := doc.Build()
	require.NoError(t, err)
	// Translated along x, then turned onto the y axis.
	min, max := solid.Bounds()
	require.InDelta(t, 2, min.Y(), 1e-9)
	require.InDelta(t, 4, max.Y(), 1e-9)
	require.InDelta(t, -1, min.X(), 1e-9)
	require.InDelta(t, 1, max.X(), 1e-9)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "no solids",
			doc:  `result: x`,
		},
		{
			name: "no result",
			doc: `
solids:
  - name: a
    cube: {}
`,
		},
		{
			name: "unknown result",
			doc: `
solids:
  - name: a
    cube: {}
result: b
`,
		},
		{
			name: "solid without primitive",
			doc: `
solids:
  - name: a
result: a
`,
		},
		{
			name: "solid with two primitives",
			doc: `
solids:
  - name: a
    cube: {}
    sphere: {}
result: a
`,
		},
		{
			name: "duplicate name",
			doc: `
solids:
  - name: a
    cube: {}
  - name: a
    sphere: {}
result: a
`,
		},
		{
			name: "op references unknown solid",
			doc: `
solids:
  - name: a
    cube: {}
ops:
  - {name: c, op: union, a: a, b: missing}
result: c
`,
		},
		{
			name: "unknown op",
			doc: `
solids:
  - name: a
    cube: {}
ops:
  - {name: c, op: xor, a: a, b: a}
result: c
`,
		},
		{
			name: "inverse with two operands",
			doc: `
solids:
  - name: a
    cube: {}
ops:
  - {name: c, op: inverse, a: a, b: a}
result: c
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestBuildInvalidPrimitive(t *testing.T) {
	doc, err := Parse([]byte(`
solids:
  - name: a
    sphere: {radius: -1}
result: a
`))
	require.NoError(t, err)
	_, err = doc.Build()
	require.Error(t, err)
}
