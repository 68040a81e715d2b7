package game

import (
	"container/heap"
	"math"
)

// Unreachable is the distance reported for nodes Dijkstra never reached.
const Unreachable = math.MaxInt

// CostFunc prices traversal of an edge. Costs must be positive.
type CostFunc func(e Edge) int

// ActivityCost charges active edges one price and inactive edges another.
func ActivityCost(active, inactive int) CostFunc {
	return func(e Edge) int {
		if e.Active {
			return active
		}
		return inactive
	}
}

// ShortestPaths runs Dijkstra from source over every edge of g. prev[v] is
// v's predecessor on its shortest path, -1 for the source and unreachable
// nodes. Among equal distances the node discovered first is settled first.
func ShortestPaths(g *Graph, source int, cost CostFunc) (dist []int, prev []int) {
	n := g.Size()
	dist = make([]int, n)
	prev = make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
		prev[i] = -1
	}
	dist[source] = 0

	visited := make([]bool, n)
	pq := make(nodePQ, 0, n)
	seq := 0
	heap.Push(&pq, &nodeItem{node: source, dist: 0, seq: seq})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.node
		if visited[u] || item.dist != dist[u] {
			continue
		}
		visited[u] = true

		for _, v := range g.Neighbors(u) {
			e, _ := g.Edge(u, v)
			nd := dist[u] + cost(e)
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			prev[v] = u
			seq++
			heap.Push(&pq, &nodeItem{node: v, dist: nd, seq: seq})
		}
	}
	return dist, prev
}

// FirstStep walks prev back from target and returns the node right after
// source on the path. It returns source when target is source or unreachable.
func FirstStep(prev []int, source, target int) int {
	if source == target || prev[target] == -1 {
		return source
	}
	step := target
	for prev[step] != source {
		step = prev[step]
		if step == -1 {
			return source
		}
	}
	return step
}

type nodeItem struct {
	node int
	dist int
	seq  int // discovery order, breaks distance ties
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
