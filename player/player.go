package player

import (
	"dsagame/game"
	"dsagame/meta"

	"golang.org/x/exp/rand"
)

// guardPenalty is added to any edge touching a guard when the bot plans.
const guardPenalty = 20

// Bot plays a game on its own. It plans the cheapest route to the exit,
// pricing inactive edges at the cost of toggling them, and follows it one
// command at a time: toggle the next edge if needed, then step across.
type Bot struct {
	State   *game.GameState
	rng     *rand.Rand
	explore float64
}

type BotOption func(b *Bot)

// WithExplore makes the bot play a uniformly random command with probability p.
func WithExplore(p float64) BotOption {
	return func(b *Bot) {
		b.explore = p
	}
}

func NewBot(state *game.GameState, seed uint64, options ...BotOption) *Bot {
	b := &Bot{
		State: state,
		rng:   rand.New(rand.NewSource(seed)),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *Bot) NextCommand(snap game.Snapshot) (game.Command, error) {
	if b.explore > 0 && b.rng.Float64() < b.explore {
		return b.randomCommand(), nil
	}
	return b.plannedCommand(), nil
}

func (b *Bot) plannedCommand() game.Command {
	gs := b.State
	g := gs.Graph
	_, prev := game.ShortestPaths(g, gs.Player, b.cost())
	next := game.FirstStep(prev, gs.Player, gs.Exit)

	dir, ok := g.DirectionTo(gs.Player, next)
	if !ok {
		// Already on the exit: nothing left but to wait.
		return game.Command{Action: game.UnknownAction, Raw: "wait"}
	}
	if e, _ := g.Edge(gs.Player, next); !e.Active {
		return game.Toggle(dir)
	}
	return game.Move(dir)
}

func (b *Bot) cost() game.CostFunc {
	guards := make(map[int]bool, len(b.State.Guards))
	for _, guard := range b.State.Guards {
		guards[guard] = true
	}
	return func(e game.Edge) int {
		c := 1
		if !e.Active {
			c += meta.TOGGLE_COST + meta.TURN_COST
		}
		if guards[e.A] || guards[e.B] {
			c += guardPenalty
		}
		return c
	}
}

var directions = []game.Direction{game.Up, game.Down, game.Left, game.Right}

func (b *Bot) randomCommand() game.Command {
	dir := directions[b.rng.Intn(len(directions))]
	if b.rng.Intn(2) == 0 {
		return game.Toggle(dir)
	}
	return game.Move(dir)
}
