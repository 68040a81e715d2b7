package experiments

import (
	"fmt"

	"dsagame/game"

	"github.com/rs/zerolog/log"
)

// ComparePursuit runs the same seeds once with chasing guards and once with
// holding guards, so the two guard rules can be judged on identical maps.
func ComparePursuit(opts Options) (chase, hold Summary, err error) {
	log.Info().Msg("starting pursuit comparison...")

	chaseOpts := opts
	chaseOpts.Config.Pursuit = game.PursuitChase
	chase, err = Run(chaseOpts)
	if err != nil {
		return chase, hold, fmt.Errorf("chase run: %w", err)
	}

	holdOpts := opts
	holdOpts.Config.Pursuit = game.PursuitHold
	hold, err = Run(holdOpts)
	if err != nil {
		return chase, hold, fmt.Errorf("hold run: %w", err)
	}

	log.Info().Msgf("chase: %v, hold: %v", chase.Outcomes, hold.Outcomes)
	return chase, hold, nil
}
