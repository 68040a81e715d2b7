package game

import "golang.org/x/exp/rand"

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// openGraph builds a grid with every edge active.
func openGraph(rows, cols int) *Graph {
	g := NewGraph(rows, cols, newRand(1), 1, 9)
	for _, e := range g.Edges() {
		g.SetActive(e.A, e.B, true)
	}
	return g
}

// closedGraph builds a grid with every edge inactive.
func closedGraph(rows, cols int) *Graph {
	return NewGraph(rows, cols, newRand(1), 1, 9)
}

// reachable walks active edges breadth first from a.
func reachable(g *Graph, a, b int) bool {
	seen := map[int]bool{a: true}
	queue := []int{a}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == b {
			return true
		}
		for _, v := range g.Neighbors(u) {
			e, _ := g.Edge(u, v)
			if e.Active && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

// scenario starts a game on g with the player at 0 and no randomness left.
func scenario(g *Graph, guards []int, energy int, mode PursuitMode) *GameState {
	cfg := NewConfig(WithEnergy(energy), WithPursuit(mode))
	gs, err := NewGameStateFromGraph(g, guards, cfg)
	if err != nil {
		panic(err)
	}
	return gs
}
