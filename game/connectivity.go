package game

// ActiveDSU builds a fresh union-find over the currently active edges.
func (g *Graph) ActiveDSU() *DSU {
	dsu := NewDSU(g.Size())
	for _, e := range g.edges {
		if e.Active {
			dsu.Union(e.A, e.B)
		}
	}
	return dsu
}

// ActiveConnected reports whether a path of active edges joins a and b.
// It is recomputed from scratch on every call.
func (g *Graph) ActiveConnected(a, b int) bool {
	return g.ActiveDSU().Connected(a, b)
}

// CriticalInactive counts spanning tree edges that are still inactive.
func (g *Graph) CriticalInactive() int {
	n := 0
	for _, e := range g.edges {
		if e.Critical && !e.Active {
			n++
		}
	}
	return n
}
