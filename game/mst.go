package game

import "sort"

// MarkCritical runs Kruskal over the full grid and flags the spanning tree
// edges as critical. Equal weights keep construction order. It returns the
// number of critical edges, which is always Size()-1.
func MarkCritical(g *Graph) int {
	order := make([]int, len(g.edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.edges[order[i]].W < g.edges[order[j]].W
	})

	dsu := NewDSU(g.Size())
	count := 0
	for _, i := range order {
		e := &g.edges[i]
		if dsu.Union(e.A, e.B) {
			e.Critical = true
			count++
			if count == g.Size()-1 {
				break
			}
		}
	}
	return count
}

// CriticalEdges returns the spanning tree edges in construction order.
func (g *Graph) CriticalEdges() []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Critical {
			out = append(out, e)
		}
	}
	return out
}
