package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Direction names one of the four orthogonal neighbours of a cell.
type Direction int

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// neighborOrder is the order cells are scanned for neighbours: right, down, up, left.
var neighborOrder = []Direction{Right, Down, Up, Left}

// Edge is an undirected link between two orthogonally adjacent cells, A < B.
type Edge struct {
	A        int  `json:"a"`
	B        int  `json:"b"`
	W        int  `json:"w"`
	Active   bool `json:"active"`
	Critical bool `json:"critical"`
}

// Horizontal reports whether the edge joins two cells of the same row.
func (e Edge) Horizontal() bool {
	return e.B == e.A+1
}

type edgeKey struct {
	a, b int
}

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Graph is the rows x cols grid. Its topology never changes after NewGraph;
// only the Active flag of an edge is toggled during play.
type Graph struct {
	Rows  int
	Cols  int
	edges []Edge
	index map[edgeKey]int
}

// NewGraph builds one edge per pair of orthogonally adjacent cells with a
// random weight in [minW, maxW]. All edges start inactive.
func NewGraph(rows, cols int, rng *rand.Rand, minW, maxW int) *Graph {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid must be at least 1x1, got %dx%d", rows, cols))
	}
	g := &Graph{
		Rows:  rows,
		Cols:  cols,
		edges: make([]Edge, 0, rows*(cols-1)+cols*(rows-1)),
		index: make(map[edgeKey]int),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a := g.Index(r, c)
			// Only right and down neighbours, so every pair is seen once.
			for _, dir := range []Direction{Right, Down} {
				b, ok := g.Neighbor(a, dir)
				if !ok {
					continue
				}
				w := minW + rng.Intn(maxW-minW+1)
				g.index[keyOf(a, b)] = len(g.edges)
				g.edges = append(g.edges, Edge{A: a, B: b, W: w})
			}
		}
	}
	return g
}

// Size is the number of nodes.
func (g *Graph) Size() int {
	return g.Rows * g.Cols
}

func (g *Graph) Index(r, c int) int {
	return r*g.Cols + c
}

func (g *Graph) Coord(node int) (r, c int) {
	return node / g.Cols, node % g.Cols
}

func (g *Graph) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Neighbor returns the cell next to node in direction dir, if it is on the grid.
func (g *Graph) Neighbor(node int, dir Direction) (int, bool) {
	if dir == NoDirection {
		return 0, false
	}
	r, c := g.Coord(node)
	dr, dc := dir.delta()
	if !g.InBounds(r+dr, c+dc) {
		return 0, false
	}
	return g.Index(r+dr, c+dc), true
}

// Neighbors lists the on-grid neighbours of node in right, down, up, left order.
func (g *Graph) Neighbors(node int) []int {
	out := make([]int, 0, 4)
	for _, dir := range neighborOrder {
		if nb, ok := g.Neighbor(node, dir); ok {
			out = append(out, nb)
		}
	}
	return out
}

// Edges returns the edge arena in construction order. Callers must not modify it.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// NumEdges is the number of edges in the grid.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Edge looks up the edge between a and b in either order.
func (g *Graph) Edge(a, b int) (Edge, bool) {
	i, ok := g.index[keyOf(a, b)]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// Toggle flips the active flag of the edge between a and b. It returns false
// when no such edge exists.
func (g *Graph) Toggle(a, b int) bool {
	i, ok := g.index[keyOf(a, b)]
	if !ok {
		return false
	}
	g.edges[i].Active = !g.edges[i].Active
	return true
}

// SetActive forces the active flag of the edge between a and b.
func (g *Graph) SetActive(a, b int, active bool) bool {
	i, ok := g.index[keyOf(a, b)]
	if !ok {
		return false
	}
	g.edges[i].Active = active
	return true
}

// Activate draws the starting active flags. Each edge is active with
// probability base, or failing that, with probability critical if it is
// part of the spanning tree. The second draw happens only when needed.
func Activate(g *Graph, rng *rand.Rand, base, critical float64) {
	for i := range g.edges {
		e := &g.edges[i]
		e.Active = rng.Float64() < base || (e.Critical && rng.Float64() < critical)
	}
}

// DirectionTo returns the direction leading from one cell to an adjacent one.
func (g *Graph) DirectionTo(from, to int) (Direction, bool) {
	for _, dir := range neighborOrder {
		if nb, ok := g.Neighbor(from, dir); ok && nb == to {
			return dir, true
		}
	}
	return NoDirection, false
}
