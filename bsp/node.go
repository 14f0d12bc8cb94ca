// Package bsp holds the binary space partitioning tree the Boolean
// operations are built on. The tree is not leafy: every node may carry
// polygons lying on its splitting plane, which is what makes overlapping
// coplanar faces from two solids resolvable.
package bsp

import (
	"github.com/akmonengine/csg/geom"
)

// maxBuildDepth caps tree growth while building. A polygon that is not
// planar within geom.Epsilon can keep spanning its own supporting plane
// and split forever; once a branch reaches this depth its polygons are
// folded into the node's coplanar list instead of being split further.
const maxBuildDepth = 8192

// Node is one node of the tree: a splitting plane, the polygons lying on
// that plane, and optional front/back subtrees for the two half-spaces.
// The zero Node (nil Plane, no polygons, no children) is an empty tree.
type Node struct {
	Plane    *geom.Plane
	Polygons []*geom.Polygon
	Front    *Node
	Back     *Node
}

// New builds a tree from polygons. An empty input yields an empty node.
func New(polygons []*geom.Polygon) *Node {
	n := &Node{}
	n.Build(polygons)
	return n
}

type buildTask struct {
	node  *Node
	polys []*geom.Polygon
	depth int
}

// Build inserts polygons into the tree. The first polygon reaching a fresh
// node fixes that node's splitting plane; later Build calls extend the
// tree against the planes already chosen. Traversal runs on an explicit
// work stack, so tree depth never consumes goroutine stack.
func (n *Node) Build(polygons []*geom.Polygon) {
	if len(polygons) == 0 {
		return
	}
	stack := []buildTask{{node: n, polys: polygons}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := t.node
		if node.Plane == nil {
			plane := t.polys[0].Plane
			node.Plane = &plane
		}
		if t.depth >= maxBuildDepth {
			// No progress is being made against these planes; keep the
			// offenders here as coplanar rather than splitting on.
			node.Polygons = append(node.Polygons, t.polys...)
			continue
		}
		var front, back []*geom.Polygon
		for _, poly := range t.polys {
			// A polygon that is not planar within geom.Epsilon classifies
			// as spanning or behind its own supporting plane and would
			// chase itself down the tree; when the planes match exactly,
			// keep it here as coplanar.
			if poly.Plane == *node.Plane {
				node.Polygons = append(node.Polygons, poly)
				continue
			}
			node.Plane.SplitPolygon(poly, &node.Polygons, &node.Polygons, &front, &back)
		}
		if len(front) > 0 {
			if node.Front == nil {
				node.Front = &Node{}
			}
			stack = append(stack, buildTask{node.Front, front, t.depth + 1})
		}
		if len(back) > 0 {
			if node.Back == nil {
				node.Back = &Node{}
			}
			stack = append(stack, buildTask{node.Back, back, t.depth + 1})
		}
	}
}

// Invert converts solid space to empty space and empty space to solid
// space: every polygon and plane flips, and the subtrees swap sides.
func (n *Node) Invert() {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, poly := range node.Polygons {
			poly.Flip()
		}
		if node.Plane != nil {
			node.Plane.Flip()
		}
		node.Front, node.Back = node.Back, node.Front
		if node.Front != nil {
			stack = append(stack, node.Front)
		}
		if node.Back != nil {
			stack = append(stack, node.Back)
		}
	}
}

type clipTask struct {
	node  *Node
	polys []*geom.Polygon
}

// ClipPolygons removes from polygons every fragment that lies inside the
// solid this tree represents and returns the remainder. Fragments reaching
// the back half-space of a node with no back child are inside the solid
// and are dropped.
func (n *Node) ClipPolygons(polygons []*geom.Polygon) []*geom.Polygon {
	var result []*geom.Polygon
	stack := []clipTask{{node: n, polys: polygons}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := t.node
		if node.Plane == nil {
			result = append(result, t.polys...)
			continue
		}
		var front, back []*geom.Polygon
		for _, poly := range t.polys {
			node.Plane.SplitPolygon(poly, &front, &back, &front, &back)
		}
		if node.Front != nil {
			stack = append(stack, clipTask{node.Front, front})
		} else {
			result = append(result, front...)
		}
		if node.Back != nil {
			stack = append(stack, clipTask{node.Back, back})
		}
	}
	return result
}

// ClipTo removes every polygon in this tree that is inside the solid
// represented by other.
func (n *Node) ClipTo(other *Node) {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node.Polygons = other.ClipPolygons(node.Polygons)
		if node.Front != nil {
			stack = append(stack, node.Front)
		}
		if node.Back != nil {
			stack = append(stack, node.Back)
		}
	}
}

// AllPolygons flattens the tree into a single polygon list.
func (n *Node) AllPolygons() []*geom.Polygon {
	var all []*geom.Polygon
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		all = append(all, node.Polygons...)
		if node.Front != nil {
			stack = append(stack, node.Front)
		}
		if node.Back != nil {
			stack = append(stack, node.Back)
		}
	}
	return all
}

// Clone returns a structural deep copy of the tree.
func (n *Node) Clone() *Node {
	type pair struct {
		src, dst *Node
	}
	out := &Node{}
	stack := []pair{{n, out}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.src.Plane != nil {
			plane := *p.src.Plane
			p.dst.Plane = &plane
		}
		if len(p.src.Polygons) > 0 {
			p.dst.Polygons = make([]*geom.Polygon, len(p.src.Polygons))
			for i, poly := range p.src.Polygons {
				p.dst.Polygons[i] = poly.Clone()
			}
		}
		if p.src.Front != nil {
			p.dst.Front = &Node{}
			stack = append(stack, pair{p.src.Front, p.dst.Front})
		}
		if p.src.Back != nil {
			p.dst.Back = &Node{}
			stack = append(stack, pair{p.src.Back, p.dst.Back})
		}
	}
	return out
}
