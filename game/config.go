package game

import (
	"fmt"

	"dsagame/meta"
)

// Config fixes everything about a game at construction time.
type Config struct {
	Rows               int
	Cols               int
	Guards             int
	Energy             int
	MinWeight          int
	MaxWeight          int
	BaseActivation     float64
	CriticalActivation float64
	ActiveCost         int
	InactiveCost       int
	Seed               uint64
	Pursuit            PursuitMode
}

type Option func(cfg *Config)

func DefaultConfig() Config {
	return Config{
		Rows:               meta.ROWS,
		Cols:               meta.COLS,
		Guards:             meta.GUARDS,
		Energy:             meta.ENERGY,
		MinWeight:          meta.MIN_WEIGHT,
		MaxWeight:          meta.MAX_WEIGHT,
		BaseActivation:     meta.BASE_ACTIVATION,
		CriticalActivation: meta.CRITICAL_ACTIVATION,
		ActiveCost:         meta.ACTIVE_COST,
		InactiveCost:       meta.INACTIVE_COST,
		Seed:               1,
		Pursuit:            PursuitChase,
	}
}

// NewConfig applies options over DefaultConfig.
func NewConfig(options ...Option) Config {
	cfg := DefaultConfig()
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

func WithGrid(rows, cols int) Option {
	return func(cfg *Config) {
		cfg.Rows = rows
		cfg.Cols = cols
	}
}

func WithGuards(guards int) Option {
	return func(cfg *Config) {
		cfg.Guards = guards
	}
}

func WithEnergy(energy int) Option {
	return func(cfg *Config) {
		cfg.Energy = energy
	}
}

func WithWeights(lo, hi int) Option {
	return func(cfg *Config) {
		cfg.MinWeight = lo
		cfg.MaxWeight = hi
	}
}

func WithActivation(base, critical float64) Option {
	return func(cfg *Config) {
		cfg.BaseActivation = base
		cfg.CriticalActivation = critical
	}
}

func WithCosts(active, inactive int) Option {
	return func(cfg *Config) {
		cfg.ActiveCost = active
		cfg.InactiveCost = inactive
	}
}

func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

func WithPursuit(mode PursuitMode) Option {
	return func(cfg *Config) {
		cfg.Pursuit = mode
	}
}

// Validate rejects configurations no game can be built from.
func (cfg Config) Validate() error {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, cfg.Rows, cfg.Cols)
	}
	if cfg.Energy < 0 {
		return fmt.Errorf("%w: energy must not be negative, got %d", ErrInvalidConfig, cfg.Energy)
	}
	if cfg.Guards < 0 || cfg.Guards > cfg.Rows*cfg.Cols {
		return fmt.Errorf("%w: guards must be between 0 and %d, got %d", ErrInvalidConfig, cfg.Rows*cfg.Cols, cfg.Guards)
	}
	if cfg.MinWeight < 1 || cfg.MinWeight > cfg.MaxWeight {
		return fmt.Errorf("%w: weight range [%d,%d] must satisfy 1 <= min <= max", ErrInvalidConfig, cfg.MinWeight, cfg.MaxWeight)
	}
	if !isProbability(cfg.BaseActivation) || !isProbability(cfg.CriticalActivation) {
		return fmt.Errorf("%w: activation probabilities must be in [0,1], got %v and %v", ErrInvalidConfig, cfg.BaseActivation, cfg.CriticalActivation)
	}
	if cfg.ActiveCost < 1 || cfg.InactiveCost < 1 {
		return fmt.Errorf("%w: traversal costs must be positive, got %d and %d", ErrInvalidConfig, cfg.ActiveCost, cfg.InactiveCost)
	}
	if cfg.Pursuit != PursuitChase && cfg.Pursuit != PursuitHold {
		return fmt.Errorf("%w: unknown pursuit mode %d", ErrInvalidConfig, int(cfg.Pursuit))
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
