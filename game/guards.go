package game

import "fmt"

// PursuitMode selects how guards pick their next cell.
type PursuitMode int

const (
	// PursuitChase steps each guard onto its shortest path to the player.
	PursuitChase PursuitMode = iota
	// PursuitHold keeps the self-distance gradient rule: a guard only moves to
	// a neighbour closer to itself than it is, which never happens, so it holds.
	PursuitHold
)

func (m PursuitMode) String() string {
	switch m {
	case PursuitChase:
		return "chase"
	case PursuitHold:
		return "hold"
	}
	return fmt.Sprintf("PursuitMode(%d)", int(m))
}

// ParsePursuitMode maps "chase" or "hold" to a mode.
func ParsePursuitMode(s string) (PursuitMode, error) {
	switch s {
	case "chase":
		return PursuitChase, nil
	case "hold":
		return PursuitHold, nil
	}
	return 0, fmt.Errorf("%w: unknown pursuit mode %q", ErrInvalidConfig, s)
}

// MoveGuards returns the guards' positions after one step. Every guard plans
// against the same pre-turn graph, so no guard's move depends on another's.
func MoveGuards(g *Graph, guards []int, player int, mode PursuitMode, cost CostFunc) []int {
	next := make([]int, len(guards))
	for i, guard := range guards {
		dist, prev := ShortestPaths(g, guard, cost)
		switch mode {
		case PursuitHold:
			next[i] = holdStep(g, guard, dist)
		default:
			next[i] = FirstStep(prev, guard, player)
		}
	}
	return next
}

// holdStep picks the neighbour with the lowest distance that is strictly
// below the guard's own distance in the guard's own field.
func holdStep(g *Graph, guard int, dist []int) int {
	best := -1
	for _, nb := range g.Neighbors(guard) {
		if dist[nb] < dist[guard] && (best == -1 || dist[nb] < dist[best]) {
			best = nb
		}
	}
	if best == -1 {
		return guard
	}
	return best
}
