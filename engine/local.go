package engine

import (
	"errors"
	"fmt"
	"io"

	"dsagame/experiments/metrics"
	"dsagame/game"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State    *game.GameState
	Source   CommandSource
	Renderer Renderer
	metrics  metrics.Collector
}

type Option func(e *Engine)

func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		e.Renderer = r
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

func LocalEngine(state *game.GameState, source CommandSource, options ...Option) *Engine {
	if state == nil {
		panic("engine needs a game state")
	}
	if source == nil {
		panic("engine needs a command source")
	}
	e := &Engine{
		State:   state,
		Source:  source,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the turn loop until the game reaches a terminal status. The
// returned error is only set when rendering or reading input fails.
func (e *Engine) Run() (metrics.GameMetric, error) {
	e.metrics.Start(e.State.Config)
	log.Info().Msgf("game started on a %dx%d grid with %d guards and %d energy",
		e.State.Graph.Rows, e.State.Graph.Cols, len(e.State.Guards), e.State.Energy)

	var diag error
	for {
		e.State.Evaluate()

		snap := e.State.Snapshot()
		if diag != nil {
			snap.Diagnostic = diag.Error()
		}
		if err := e.render(snap); err != nil {
			return e.metrics.Complete(e.State), fmt.Errorf("failed to render turn %d: %w", e.State.Turn, err)
		}
		if e.State.Status.Over() {
			break
		}

		cmd, err := e.Source.NextCommand(snap)
		if errors.Is(err, io.EOF) {
			log.Debug().Msg("input closed, quitting")
			cmd = game.QuitCommand()
		} else if err != nil {
			return e.metrics.Complete(e.State), fmt.Errorf("failed to read command on turn %d: %w", e.State.Turn, err)
		}

		diag = e.State.Play(cmd)
		e.metrics.AddCommand(cmd, diag)
		if diag != nil {
			log.Debug().Err(diag).Msgf("turn %d: %s %s was a no-op", e.State.Turn, cmd.Action, cmd.Dir)
		}
	}

	log.Info().Msgf("game over after %d turns: %s", e.State.Turn, e.State.Status)
	return e.metrics.Complete(e.State), nil
}

func (e *Engine) render(snap game.Snapshot) error {
	if e.Renderer == nil {
		return nil
	}
	return e.Renderer.Render(snap)
}
