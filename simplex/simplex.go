// Package simplex defines the fixed geometry used to illustrate how the
// simplex method walks the vertices of a polytope.
//
// Three panels are described: a segment in 1D, the unit square in 2D and the
// unit cube in 3D. Each maximizes the sum of its coordinates, so the optimum
// is the all-ones vertex and the path moves along one axis at a time, raising
// the objective by one per pivot.
package simplex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned when a traversal path leaves the polytope edges.
var ErrInvalidPath = errors.New("invalid simplex path")

// Vertex is a point in 1, 2 or 3 dimensions.
type Vertex []float64

// String formats the vertex as "(1, 0, 1)".
func (v Vertex) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// Objective returns the sum of the coordinates.
func (v Vertex) Objective() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c
	}

	return sum
}

// Edge connects two vertices by index.
type Edge [2]int

// Illustration is one panel of the figure.
type Illustration struct {
	// Title labels the panel.
	Title string
	// Dimension is 1, 2 or 3.
	Dimension int
	// Vertices lists the corners of the feasible region.
	Vertices []Vertex
	// Edges lists the polytope edges.
	Edges []Edge
	// Optimal is the index of the optimal vertex.
	Optimal int
	// Path lists vertex indices in the order the method visits them.
	Path []int
}

// Illustrations returns the 1D, 2D and 3D panels in display order.
func Illustrations() []Illustration {
	return []Illustration{segment(), square(), cube()}
}

func segment() Illustration {
	return Illustration{
		Title:     "1D: line segment",
		Dimension: 1,
		Vertices:  []Vertex{{0}, {1}},
		Edges:     []Edge{{0, 1}},
		Optimal:   1,
		Path:      []int{0, 1},
	}
}

func square() Illustration {
	return Illustration{
		Title:     "2D: square",
		Dimension: 2,
		Vertices:  []Vertex{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Edges:     []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		Optimal:   2,
		Path:      []int{0, 1, 2},
	}
}

// cube orders its vertices by the bits (x, y, z) of the index.
func cube() Illustration {
	vertices := make([]Vertex, 8)
	for i := range vertices {
		vertices[i] = Vertex{float64(i & 1), float64((i>>1)&1), float64((i>>2)&1)}
	}

	var edges []Edge
	for i := range vertices {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				edges = append(edges, Edge{i, j})
			}
		}
	}

	return Illustration{
		Title:     "3D: cube",
		Dimension: 3,
		Vertices:  vertices,
		Edges:     edges,
		Optimal:   7,
		// (0,0,0) -> (1,0,0) -> (1,1,0) -> (1,1,1)
		Path: []int{0, 1, 3, 7},
	}
}

// OptimalVertex returns the optimal vertex.
func (il Illustration) OptimalVertex() Vertex {
	return il.Vertices[il.Optimal]
}

// PathEdges returns the directed steps of the traversal.
func (il Illustration) PathEdges() []Edge {
	if len(il.Path) < 2 {
		return nil
	}

	steps := make([]Edge, 0, len(il.Path)-1)
	for i := 1; i < len(il.Path); i++ {
		steps = append(steps, Edge{il.Path[i-1], il.Path[i]})
	}

	return steps
}

func (il Illustration) hasEdge(a, b int) bool {
	for _, e := range il.Edges {
		if (e[0] == a && e[1] == b) || (e[0] == b && e[1] == a) {
			return true
		}
	}

	return false
}

// Validate checks that the path follows polytope edges, never lowers the
// objective, and ends at the optimal vertex.
func (il Illustration) Validate() error {
	if il.Dimension < 1 || il.Dimension > 3 {
		return fmt.Errorf("%w: %s: unsupported dimension %d", ErrInvalidPath, il.Title, il.Dimension)
	}
	for i, v := range il.Vertices {
		if len(v) != il.Dimension {
			return fmt.Errorf("%w: %s: vertex %d has %d coordinates", ErrInvalidPath, il.Title, i, len(v))
		}
	}
	if len(il.Path) == 0 {
		return fmt.Errorf("%w: %s: empty path", ErrInvalidPath, il.Title)
	}
	for _, idx := range il.Path {
		if idx < 0 || idx >= len(il.Vertices) {
			return fmt.Errorf("%w: %s: vertex index %d out of range", ErrInvalidPath, il.Title, idx)
		}
	}
	for _, step := range il.PathEdges() {
		if !il.hasEdge(step[0], step[1]) {
			return fmt.Errorf("%w: %s: %s -> %s is not an edge", ErrInvalidPath, il.Title,
				il.Vertices[step[0]], il.Vertices[step[1]])
		}
		if il.Vertices[step[1]].Objective() < il.Vertices[step[0]].Objective() {
			return fmt.Errorf("%w: %s: step %s -> %s lowers the objective", ErrInvalidPath, il.Title,
				il.Vertices[step[0]], il.Vertices[step[1]])
		}
	}
	if last := il.Path[len(il.Path)-1]; last != il.Optimal {
		return fmt.Errorf("%w: %s: path ends at %s, not the optimum %s", ErrInvalidPath, il.Title,
			il.Vertices[last], il.OptimalVertex())
	}

	return nil
}

// Explain returns the lines printed next to the figure.
func (il Illustration) Explain() []string {
	path := make([]string, len(il.Path))
	for i, idx := range il.Path {
		path[i] = il.Vertices[idx].String()
	}

	return []string{
		fmt.Sprintf("%s: the optimal point is %s (objective %g).",
			il.Title, il.OptimalVertex(), il.OptimalVertex().Objective()),
		fmt.Sprintf("  The simplex method moves along edges: %s.", strings.Join(path, " -> ")),
	}
}
