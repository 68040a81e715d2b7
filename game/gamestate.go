package game

import (
	"fmt"

	"dsagame/meta"
	"dsagame/utils"

	"golang.org/x/exp/rand"
)

// GameState is everything that changes while a game is played. The graph's
// topology and critical flags are fixed in NewGameState; only edge activity,
// positions, energy and the turn counter move afterwards.
type GameState struct {
	Graph  *Graph
	Player int
	Exit   int
	Guards []int
	Energy int
	Turn   int
	Status Status
	Reason string // set when Status becomes terminal
	Config Config

	cost CostFunc
}

// NewGameState validates cfg, builds the grid, marks the spanning tree,
// draws the initial activation and places the guards, all from one
// generator seeded with cfg.Seed.
func NewGameState(cfg Config) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	g := NewGraph(cfg.Rows, cfg.Cols, rng, cfg.MinWeight, cfg.MaxWeight)
	MarkCritical(g)
	Activate(g, rng, cfg.BaseActivation, cfg.CriticalActivation)

	return &GameState{
		Graph:  g,
		Player: 0,
		Exit:   g.Size() - 1,
		Guards: placeGuards(rng, g.Size(), cfg.Guards),
		Energy: cfg.Energy,
		Status: Playing,
		Config: cfg,
		cost:   ActivityCost(cfg.ActiveCost, cfg.InactiveCost),
	}, nil
}

// NewGameStateFromGraph starts a game on a prepared graph with guards at
// fixed positions. Used for scripted scenarios.
func NewGameStateFromGraph(g *Graph, guards []int, cfg Config) (*GameState, error) {
	cfg.Rows, cfg.Cols = g.Rows, g.Cols
	cfg.Guards = len(guards)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, guard := range guards {
		if guard < 0 || guard >= g.Size() {
			return nil, fmt.Errorf("%w: guard at node %d is off the grid", ErrInvalidConfig, guard)
		}
	}
	return &GameState{
		Graph:  g,
		Player: 0,
		Exit:   g.Size() - 1,
		Guards: append([]int(nil), guards...),
		Energy: cfg.Energy,
		Status: Playing,
		Config: cfg,
		cost:   ActivityCost(cfg.ActiveCost, cfg.InactiveCost),
	}, nil
}

// Guards never start on the player's cell, except on a 1x1 grid where there
// is nowhere else. Several guards may share a cell.
func placeGuards(rng *rand.Rand, n, count int) []int {
	guards := make([]int, count)
	for i := range guards {
		if n == 1 {
			continue
		}
		guards[i] = 1 + rng.Intn(n-1)
	}
	return guards
}

// Connected reports whether the player can reach the exit over active edges.
func (gs *GameState) Connected() bool {
	return gs.Graph.ActiveConnected(gs.Player, gs.Exit)
}

// Captured reports whether any guard shares the player's cell.
func (gs *GameState) Captured() bool {
	return utils.Contains(gs.Guards, gs.Player)
}

// Evaluate checks the termination conditions in order: win, capture, energy.
// It is a no-op once the game is over.
func (gs *GameState) Evaluate() Status {
	if gs.Status.Over() {
		return gs.Status
	}
	switch {
	case gs.Player == gs.Exit && gs.Connected():
		gs.finish(Won, ReasonWon)
	case gs.Captured():
		gs.finish(LostCaptured, ReasonCaptured)
	case gs.Energy <= 0:
		gs.finish(LostNoEnergy, ReasonOutOfEnergy)
	}
	return gs.Status
}

func (gs *GameState) finish(status Status, reason string) {
	gs.Status = status
	gs.Reason = reason
}

// Play applies one command and resolves the rest of the turn: guards move,
// the turn's energy is charged and the counter advances. A non-nil error
// other than ErrGameOver is a diagnostic for an illegal command; the turn
// has still been played. Termination is checked by the next Evaluate.
func (gs *GameState) Play(cmd Command) error {
	if gs.Status.Over() {
		return ErrGameOver
	}

	var diag error
	switch cmd.Action {
	case QuitAction:
		gs.finish(Quit, ReasonQuit)
		return nil
	case ToggleAction:
		diag = gs.toggle(cmd.Dir)
	case MoveAction:
		diag = gs.move(cmd.Dir)
	default:
		diag = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Raw)
	}

	gs.Guards = MoveGuards(gs.Graph, gs.Guards, gs.Player, gs.Config.Pursuit, gs.cost)
	gs.charge(meta.TURN_COST)
	gs.Turn++
	return diag
}

func (gs *GameState) toggle(dir Direction) error {
	nb, ok := gs.Graph.Neighbor(gs.Player, dir)
	if !ok || !gs.Graph.Toggle(gs.Player, nb) {
		return fmt.Errorf("%w: cannot toggle %s", ErrNoEdge, dir)
	}
	gs.charge(meta.TOGGLE_COST)
	return nil
}

func (gs *GameState) move(dir Direction) error {
	nb, ok := gs.Graph.Neighbor(gs.Player, dir)
	if !ok {
		return fmt.Errorf("%w: cannot move %s", ErrNoEdge, dir)
	}
	e, ok := gs.Graph.Edge(gs.Player, nb)
	if !ok {
		return fmt.Errorf("%w: cannot move %s", ErrNoEdge, dir)
	}
	if !e.Active {
		return ErrEdgeInactive
	}
	gs.Player = nb
	return nil
}

// Energy bottoms out at zero.
func (gs *GameState) charge(amount int) {
	gs.Energy = max(gs.Energy-amount, 0)
}

// Copy returns a deep copy that can be played independently.
func (gs GameState) Copy() *GameState {
	graphCopy := *gs.Graph
	graphCopy.edges = append([]Edge(nil), gs.Graph.edges...)
	gs.Graph = &graphCopy
	gs.Guards = append([]int(nil), gs.Guards...)
	return &gs
}
