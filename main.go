package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dsagame/engine"
	"dsagame/experiments"
	"dsagame/game"
	"dsagame/meta"
	"dsagame/player"
	"dsagame/render"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	rows := flag.Int("rows", meta.ROWS, "Grid rows")
	cols := flag.Int("cols", meta.COLS, "Grid columns")
	guards := flag.Int("guards", meta.GUARDS, "Number of guards")
	energy := flag.Int("energy", meta.ENERGY, "Starting energy")
	minWeight := flag.Int("min-weight", meta.MIN_WEIGHT, "Lowest random edge weight")
	maxWeight := flag.Int("max-weight", meta.MAX_WEIGHT, "Highest random edge weight")
	base := flag.Float64("base-activation", meta.BASE_ACTIVATION, "Chance any edge starts active")
	critical := flag.Float64("critical-activation", meta.CRITICAL_ACTIVATION, "Extra chance a critical edge starts active")
	seed := flag.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	pursuit := flag.String("pursuit", "chase", "Guard rule: chase or hold")
	jsonOut := flag.Bool("json", false, "Emit one JSON snapshot per turn instead of the map")
	noColor := flag.Bool("no-color", false, "Disable colours")
	games := flag.Int("experiment", 0, "Play this many bot games instead of an interactive game")
	compare := flag.Bool("compare", false, "With -experiment, run both guard rules on the same seeds")
	explore := flag.Float64("explore", experiments.DefaultExplore, "Bot's chance of a random command in experiments")
	outDir := flag.String("out", "experiments/runs", "Directory for experiment results")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: *noColor})

	mode, err := game.ParsePursuitMode(*pursuit)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -pursuit")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	cfg := game.NewConfig(
		game.WithGrid(*rows, *cols),
		game.WithGuards(*guards),
		game.WithEnergy(*energy),
		game.WithWeights(*minWeight, *maxWeight),
		game.WithActivation(*base, *critical),
		game.WithSeed(*seed),
		game.WithPursuit(mode),
	)

	if *games > 0 {
		runExperiments(experiments.Options{
			Games:    *games,
			Explore:  *explore,
			Config:   cfg,
			OutDir:   *outDir,
			Progress: os.Stderr,
		}, *compare)
		return
	}

	if err := play(cfg, *jsonOut, !*noColor); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func play(cfg game.Config, jsonOut, colors bool) error {
	gs, err := game.NewGameState(cfg)
	if err != nil {
		return err
	}
	log.Debug().Msgf("seed %d", cfg.Seed)

	var renderer engine.Renderer = render.NewText(os.Stdout, colors, render.WithClear())
	console := player.NewConsole(os.Stdin, os.Stdout)
	if jsonOut {
		// Prompts go to stderr so stdout stays one JSON object per line.
		renderer = render.NewJSON(os.Stdout)
		console = player.NewConsole(os.Stdin, os.Stderr)
	}

	_, err = engine.LocalEngine(gs, console, engine.WithRenderer(renderer)).Run()
	return err
}

func runExperiments(opts experiments.Options, compare bool) {
	if compare {
		chase, hold, err := experiments.ComparePursuit(opts)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		fmt.Printf("chase: %v\nhold:  %v\n", chase.Outcomes, hold.Outcomes)
		return
	}

	summary, err := experiments.Run(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	fmt.Printf("%v\nresults in %s\n", summary.Outcomes, summary.Dir)
}
