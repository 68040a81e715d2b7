package metrics

import (
	"errors"
	"time"

	"dsagame/game"
)

type GameMetric struct {
	Seed             uint64
	Status           string
	Turns            int
	EnergyLeft       int
	Moves            int // successful moves
	Toggles          int // successful toggles
	Diagnostics      int // commands that were no-ops
	CriticalInactive int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

type Collector interface {
	Start(cfg game.Config)
	AddCommand(cmd game.Command, diag error)
	Complete(gs *game.GameState) GameMetric
}

type collector struct {
	seed        uint64
	startTime   time.Time
	moves       int
	toggles     int
	diagnostics int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(cfg game.Config) {
	*m = collector{seed: cfg.Seed, startTime: time.Now()}
}

func (m *collector) AddCommand(cmd game.Command, diag error) {
	if diag != nil {
		if !errors.Is(diag, game.ErrGameOver) {
			m.diagnostics++
		}
		return
	}
	switch cmd.Action {
	case game.MoveAction:
		m.moves++
	case game.ToggleAction:
		m.toggles++
	}
}

func (m *collector) Complete(gs *game.GameState) GameMetric {
	end := time.Now()
	return GameMetric{
		Seed:             m.seed,
		Status:           gs.Status.String(),
		Turns:            gs.Turn,
		EnergyLeft:       gs.Energy,
		Moves:            m.moves,
		Toggles:          m.toggles,
		Diagnostics:      m.diagnostics,
		CriticalInactive: gs.Graph.CriticalInactive(),
		StartTime:        m.startTime,
		EndTime:          end,
		Duration:         end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cfg game.Config)                   {}
func (m *dummyCollector) AddCommand(cmd game.Command, diag error) {}
func (m *dummyCollector) Complete(gs *game.GameState) GameMetric  { return GameMetric{} }
