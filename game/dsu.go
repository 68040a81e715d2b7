package game

// DSU is a disjoint-set forest over node indices 0..n-1.
type DSU struct {
	parent []int
}

func NewDSU(n int) *DSU {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DSU{parent: parent}
}

// Find returns the representative of x's component, halving the path on the way up.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the components of x and y. It returns false if they were already joined.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	d.parent[ry] = rx
	return true
}

// Connected reports whether x and y share a component.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
