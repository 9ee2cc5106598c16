package main

import (
	"flag"
	"fmt"
	"os"
	"pacman/engine"
	"pacman/experiments"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher/agent"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	pacman := flag.String("pacman", meta.DEFAULT_PACMAN, "Pacman agent config, e.g. alphabeta:depth=3,evalFn=better")
	ghost := flag.String("ghost", agent.Random, "Ghost agent config")
	ghosts := flag.Int("ghosts", meta.DEFAULT_GHOSTS, "Number of ghosts (0 to 4)")
	games := flag.Int("games", 1, "Number of games to play")
	maxMoves := flag.Int("moves", meta.MAX_MOVES, "Maximum number of moves per game")
	experiment := flag.String("experiment", "", "Built-in experiment to run: depth, policy or throughput")
	setupPath := flag.String("setup", "", "YAML experiment setup to run")
	out := flag.String("out", "results", "Directory for experiment records")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch {
	case *setupPath != "":
		err = runSetupFile(*setupPath, *out)
	case *experiment == "throughput":
		err = runThroughput(*ghosts, *out)
	case *experiment != "":
		err = runBuiltin(*experiment, *out)
	default:
		err = playGames(*pacman, *ghost, *ghosts, *games, *maxMoves)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func runSetupFile(path, out string) error {
	setup, err := experiments.LoadSetup(path)
	if err != nil {
		return err
	}
	return runSetup(setup, out)
}

func runBuiltin(name, out string) error {
	create, ok := experiments.Setups[name]
	if !ok {
		return fmt.Errorf("unknown experiment %q", name)
	}
	return runSetup(create(), out)
}

func runSetup(setup experiments.Setup, out string) error {
	writer, err := metrics.NewWriter(out, setup.Name)
	if err != nil {
		return err
	}
	_, err = experiments.Run(setup, writer)
	return err
}

func runThroughput(ghosts int, out string) error {
	writer, err := metrics.NewWriter(out, "throughput")
	if err != nil {
		return err
	}
	_, err = experiments.RunThroughputExperiment(ghosts, 3, writer)
	return err
}

func playGames(pacman, ghost string, ghosts, games, maxMoves int) error {
	wins := 0
	for i := 0; i < games; i++ {
		agents := make([]agent.Agent, ghosts+1)
		var err error
		agents[game.Pacman], err = agent.New(game.Pacman, pacman)
		if err != nil {
			return err
		}
		for g := 1; g <= ghosts; g++ {
			agents[g], err = agent.New(g, ghost)
			if err != nil {
				return err
			}
		}

		e := engine.NewLocalEngine(agents, game.CreateState(ghosts))
		e.MaxMoves = maxMoves
		gameMetric, _ := e.Run()
		if gameMetric.Won {
			wins++
		}

		log.Info().
			Int("game", i+1).
			Bool("won", gameMetric.Won).
			Float64("score", gameMetric.Score).
			Int("moves", gameMetric.TotalMoves).
			Dur("duration", gameMetric.Duration).
			Msg("game over")
	}
	log.Info().Msgf("won %d of %d games", wins, games)
	return nil
}
