package experiments

import (
	"fmt"
	"io"
	"time"

	"dsagame/engine"
	"dsagame/experiments/metrics"
	"dsagame/game"
	"dsagame/player"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

const (
	DefaultGames   = 100
	DefaultExplore = 0.1
)

type Options struct {
	Games    int
	Explore  float64     // chance the bot plays a random command
	Config   game.Config // Config.Seed is the seed of the first game
	OutDir   string      // empty: keep results in memory only
	Progress io.Writer   // nil: no progress bar
}

// Summary tallies the outcomes of a run.
type Summary struct {
	RunID    string
	Records  []metrics.GameRecord
	Outcomes map[string]int // by game.Status string
	Dir      string         // where results were written, if anywhere
}

// Run plays opts.Games bot games on consecutive seeds and optionally writes
// the results under opts.OutDir/<run id>.
func Run(opts Options) (Summary, error) {
	if opts.Games <= 0 {
		return Summary{}, fmt.Errorf("experiments: games must be positive, got %d", opts.Games)
	}
	if err := opts.Config.Validate(); err != nil {
		return Summary{}, err
	}

	runID := uuid.NewString()
	summary := Summary{
		RunID:    runID,
		Records:  make([]metrics.GameRecord, 0, opts.Games),
		Outcomes: map[string]int{},
	}

	bar := newBar(opts.Progress, opts.Games)
	start := time.Now()
	log.Info().Msgf("starting run %s with %d games...", runID, opts.Games)

	for i := 0; i < opts.Games; i++ {
		cfg := opts.Config
		cfg.Seed = opts.Config.Seed + uint64(i)

		metric, err := runGame(cfg, opts.Explore)
		if err != nil {
			return summary, fmt.Errorf("game %d (seed %d): %w", i+1, cfg.Seed, err)
		}
		summary.Records = append(summary.Records, metrics.GameRecord{
			ID:         uuid.NewString(),
			Game:       i + 1,
			GameMetric: metric,
		})
		summary.Outcomes[metric.Status]++
		log.Debug().Msgf("completed game %d of %d: %s after %d turns", i+1, opts.Games, metric.Status, metric.Turns)

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	end := time.Now()

	log.Info().Msgf("completed run %s: %v", runID, summary.Outcomes)

	if opts.OutDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(opts.OutDir, runID)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteSetup(metrics.Setup{
		RunID:     runID,
		Games:     opts.Games,
		Rows:      opts.Config.Rows,
		Cols:      opts.Config.Cols,
		Guards:    opts.Config.Guards,
		Energy:    opts.Config.Energy,
		Pursuit:   opts.Config.Pursuit.String(),
		BaseSeed:  opts.Config.Seed,
		Explore:   opts.Explore,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return summary, fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	err = writer.WriteGameRecords(summary.Records)
	if err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	return summary, nil
}

// runGame plays one game with the bot and returns its metrics
func runGame(cfg game.Config, explore float64) (metrics.GameMetric, error) {
	gs, err := game.NewGameState(cfg)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	bot := player.NewBot(gs, cfg.Seed, player.WithExplore(explore))
	e := engine.LocalEngine(gs, bot, engine.WithMetrics(metrics.NewCollector()))
	return e.Run()
}

func newBar(out io.Writer, games int) *progressbar.ProgressBar {
	if out == nil {
		return nil
	}
	return progressbar.NewOptions(games,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("playing"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}
