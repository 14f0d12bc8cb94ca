// Package scene loads declarative CSG scene documents from YAML.
//
// A scene lists named primitive solids, a sequence of Boolean operations
// combining them, and the name of the solid to export:
//
//	title: pipe fitting
//	solids:
//	  - name: body
//	    cube: {center: [0, 0, 0], radius: [1, 1, 1]}
//	  - name: bore
//	    cylinder: {start: [0, -2, 0], end: [0, 2, 0], radius: 0.5, slices: 24}
//	ops:
//	  - {name: fitting, op: subtract, a: body, b: bore}
//	result: fitting
//
// Omitted primitive parameters take the library defaults (unit radius,
// csg.DefaultSlices slices, csg.DefaultStacks stacks, y-axis extents).
package scene

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/akmonengine/csg"
)

// Document is a parsed scene file.
type Document struct {
	Title  string  `yaml:"title"`
	Solids []Solid `yaml:"solids"`
	Ops    []Op    `yaml:"ops"`
	Result string  `yaml:"result"`
}

// Solid declares one named primitive, optionally transformed after
// construction. Exactly one of the primitive fields must be set.
type Solid struct {
	Name      string        `yaml:"name"`
	Cube      *CubeSpec     `yaml:"cube,omitempty"`
	Sphere    *SphereSpec   `yaml:"sphere,omitempty"`
	Cylinder  *CylinderSpec `yaml:"cylinder,omitempty"`
	Cone      *ConeSpec     `yaml:"cone,omitempty"`
	Translate []float64     `yaml:"translate,omitempty"`
	Rotate    *RotateSpec   `yaml:"rotate,omitempty"`
}

// CubeSpec mirrors csg.Cube. Radius accepts one value for all axes or one
// per axis.
type CubeSpec struct {
	Center []float64 `yaml:"center"`
	Radius []float64 `yaml:"radius"`
}

// SphereSpec mirrors csg.Sphere.
type SphereSpec struct {
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`
	Slices int       `yaml:"slices"`
	Stacks int       `yaml:"stacks"`
}

// CylinderSpec mirrors csg.Cylinder.
type CylinderSpec struct {
	Start  []float64 `yaml:"start"`
	End    []float64 `yaml:"end"`
	Radius float64   `yaml:"radius"`
	Slices int       `yaml:"slices"`
}

// ConeSpec mirrors csg.Cone.
type ConeSpec struct {
	Start  []float64 `yaml:"start"`
	End    []float64 `yaml:"end"`
	Radius float64   `yaml:"radius"`
	Slices int       `yaml:"slices"`
}

// RotateSpec is an axis/angle rotation applied after construction.
type RotateSpec struct {
	Axis     []float64 `yaml:"axis"`
	AngleDeg float64   `yaml:"angle_deg"`
}

// Op combines two previously defined solids (or one, for inverse) into a
// new named solid.
type Op struct {
	Name string `yaml:"name"`
	Op   string `yaml:"op"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
}

// Load reads and parses a scene file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	return Parse(data)
}

// Parse parses a scene document and validates its structure.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if len(d.Solids) == 0 {
		return fmt.Errorf("scene declares no solids")
	}
	if d.Result == "" {
		return fmt.Errorf("scene has no result")
	}
	names := make(map[string]bool)
	for i, s := range d.Solids {
		if s.Name == "" {
			return fmt.Errorf("solid %d has no name", i)
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate solid name %q", s.Name)
		}
		primitives := 0
		for _, set := range []bool{s.Cube != nil, s.Sphere != nil, s.Cylinder != nil, s.Cone != nil} {
			if set {
				primitives++
			}
		}
		if primitives != 1 {
			return fmt.Errorf("solid %q must declare exactly one primitive", s.Name)
		}
		names[s.Name] = true
	}
	for i, op := range d.Ops {
		if op.Name == "" {
			return fmt.Errorf("op %d has no name", i)
		}
		if names[op.Name] {
			return fmt.Errorf("duplicate solid name %q", op.Name)
		}
		switch op.Op {
		case "union", "subtract", "intersect":
			if !names[op.A] || !names[op.B] {
				return fmt.Errorf("op %q references unknown solid %q or %q", op.Name, op.A, op.B)
			}
		case "inverse":
			if !names[op.A] {
				return fmt.Errorf("op %q references unknown solid %q", op.Name, op.A)
			}
			if op.B != "" {
				return fmt.Errorf("op %q: inverse takes a single operand", op.Name)
			}
		default:
			return fmt.Errorf("op %q has unknown operation %q", op.Name, op.Op)
		}
		names[op.Name] = true
	}
	if !names[d.Result] {
		return fmt.Errorf("result references unknown solid %q", d.Result)
	}
	return nil
}

// Build constructs every declared solid, runs the operations in order and
// returns the result solid.
func (d *Document) Build() (*csg.Solid, error) {
	solids := make(map[string]*csg.Solid)
	for _, spec := range d.Solids {
		solid, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("building solid %q: %w", spec.Name, err)
		}
		solids[spec.Name] = solid
	}
	for _, op := range d.Ops {
		a := solids[op.A]
		var out *csg.Solid
		switch op.Op {
		case "union":
			out = a.Union(solids[op.B])
		case "subtract":
			out = a.Subtract(solids[op.B])
		case "intersect":
			out = a.Intersect(solids[op.B])
		case "inverse":
			out = a.Inverse()
		}
		solids[op.Name] = out
	}
	return solids[d.Result], nil
}

func (s *Solid) build() (*csg.Solid, error) {
	var solid *csg.Solid
	var err error
	switch {
	case s.Cube != nil:
		var center, radius mgl64.Vec3
		center, err = vec3(s.Cube.Center, mgl64.Vec3{})
		if err != nil {
			return nil, fmt.Errorf("cube center: %w", err)
		}
		radius, err = extent(s.Cube.Radius)
		if err != nil {
			return nil, fmt.Errorf("cube radius: %w", err)
		}
		solid, err = csg.Cube(center, radius)
	case s.Sphere != nil:
		var center mgl64.Vec3
		center, err = vec3(s.Sphere.Center, mgl64.Vec3{})
		if err != nil {
			return nil, fmt.Errorf("sphere center: %w", err)
		}
		solid, err = csg.Sphere(center,
			defaultFloat(s.Sphere.Radius, 1),
			defaultInt(s.Sphere.Slices, csg.DefaultSlices),
			defaultInt(s.Sphere.Stacks, csg.DefaultStacks))
	case s.Cylinder != nil:
		var start, end mgl64.Vec3
		start, end, err = segment(s.Cylinder.Start, s.Cylinder.End)
		if err != nil {
			return nil, fmt.Errorf("cylinder axis: %w", err)
		}
		solid, err = csg.Cylinder(start, end,
			defaultFloat(s.Cylinder.Radius, 1),
			defaultInt(s.Cylinder.Slices, csg.DefaultSlices))
	case s.Cone != nil:
		var start, end mgl64.Vec3
		start, end, err = segment(s.Cone.Start, s.Cone.End)
		if err != nil {
			return nil, fmt.Errorf("cone axis: %w", err)
		}
		solid, err = csg.Cone(start, end,
			defaultFloat(s.Cone.Radius, 1),
			defaultInt(s.Cone.Slices, csg.DefaultSlices))
	}
	if err != nil {
		return nil, err
	}
	if s.Translate != nil {
		disp, err := vec3(s.Translate, mgl64.Vec3{})
		if err != nil {
			return nil, fmt.Errorf("translate: %w", err)
		}
		solid.Translate(disp)
	}
	if s.Rotate != nil {
		axis, err := vec3(s.Rotate.Axis, mgl64.Vec3{})
		if err != nil {
			return nil, fmt.Errorf("rotate axis: %w", err)
		}
		if err := solid.Rotate(axis, s.Rotate.AngleDeg); err != nil {
			return nil, err
		}
	}
	return solid, nil
}

func vec3(v []float64, def mgl64.Vec3) (mgl64.Vec3, error) {
	if v == nil {
		return def, nil
	}
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// extent parses a cube radius: absent means the unit cube, one value is a
// uniform half-extent, three are per-axis.
func extent(v []float64) (mgl64.Vec3, error) {
	switch len(v) {
	case 0:
		return mgl64.Vec3{1, 1, 1}, nil
	case 1:
		return mgl64.Vec3{v[0], v[0], v[0]}, nil
	case 3:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	}
	return mgl64.Vec3{}, fmt.Errorf("want 1 or 3 components, got %d", len(v))
}

// segment parses an axis with the reference default of the segment along
// y from (0, -1, 0) to (0, 1, 0).
func segment(start, end []float64) (mgl64.Vec3, mgl64.Vec3, error) {
	s, err := vec3(start, mgl64.Vec3{0, -1, 0})
	if err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, fmt.Errorf("start: %w", err)
	}
	e, err := vec3(end, mgl64.Vec3{0, 1, 0})
	if err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, fmt.Errorf("end: %w", err)
	}
	return s, e, nil
}

func defaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
