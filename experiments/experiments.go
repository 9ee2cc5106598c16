package experiments

import (
	"fmt"
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher/agent"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Setups lists the built-in experiments by name
var Setups = map[string]func() Setup{
	"depth":  DepthSetup,
	"policy": PolicySetup,
}

// DepthSetup compares minimax agents of increasing depth
func DepthSetup() Setup {
	return Setup{
		Name: "depth",
		Agents: []string{
			"minimax:depth=1,evalFn=better,metrics",
			"minimax:depth=2,evalFn=better,metrics",
			"minimax:depth=3,evalFn=better,metrics",
		},
	}.withDefaults()
}

// PolicySetup compares the search policies at equal depth against the reflex agent
func PolicySetup() Setup {
	depth := meta.DEFAULT_DEPTH
	return Setup{
		Name: "policy",
		Agents: []string{
			"reflex",
			fmt.Sprintf("minimax:depth=%d,evalFn=better,metrics", depth),
			fmt.Sprintf("alphabeta:depth=%d,evalFn=better,metrics", depth),
			fmt.Sprintf("expectimax:depth=%d,evalFn=better,metrics", depth),
		},
	}.withDefaults()
}

type result struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays every agent config of the setup NumGames times, Goroutines games
// at a time, and stores the records with writer.
func Run(setup Setup, writer *metrics.Writer) ([]metrics.GameRecord, error) {
	configs := make([]metrics.AgentConfig, len(setup.Agents))
	for i, config := range setup.Agents {
		configs[i] = metrics.AgentConfig{ID: i + 1, Config: config}
	}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	results := make([]result, len(configs)*setup.NumGames)
	g := errgroup.Group{}
	g.SetLimit(setup.Goroutines)
	for ci, config := range configs {
		for i := 0; i < setup.NumGames; i++ {
			id := ci*setup.NumGames + i + 1
			g.Go(func() error {
				r, err := runGame(setup, config, id)
				if err != nil {
					return err
				}
				results[id-1] = r
				log.Info().Msgf("completed agent %d of %d game %d of %d: won=%t score=%.0f",
					config.ID, len(configs), i+1, setup.NumGames, r.game.Won, r.game.Score)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.game)
		moveRecords = append(moveRecords, r.moves...)
	}
	summarize(configs, gameRecords)

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, errors.WithMessage(err, "failed to store agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, errors.WithMessage(err, "failed to store game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, errors.WithMessage(err, "failed to store move records")
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return gameRecords, nil
}

// runGame plays one game of the agent config against freshly seeded ghosts
func runGame(setup Setup, config metrics.AgentConfig, id int) (result, error) {
	agents := make([]agent.Agent, setup.Ghosts+1)
	pacman, err := agent.New(game.Pacman, config.Config)
	if err != nil {
		return result{}, err
	}
	agents[game.Pacman] = pacman
	for i := 1; i <= setup.Ghosts; i++ {
		ghost, err := agent.New(i, withSeed(setup.Ghost, setup.Seed+uint64(id*(setup.Ghosts+1)+i)))
		if err != nil {
			return result{}, err
		}
		agents[i] = ghost
	}

	e := engine.NewLocalEngine(agents, game.CreateState(setup.Ghosts))
	e.MaxMoves = setup.MaxMoves
	gameMetric, moveMetrics := e.Run()

	r := result{
		game: metrics.GameRecord{
			ID:         id,
			Agent:      config.ID,
			Ghosts:     setup.Ghosts,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, len(moveMetrics)),
	}
	for i, mm := range moveMetrics {
		r.moves[i] = metrics.MoveRecord{Game: id, MoveMetric: mm}
	}
	return r, nil
}

// withSeed adds a seed to an agent config that does not set one
func withSeed(config string, seed uint64) string {
	if strings.Contains(config, "seed=") {
		return config
	}
	separator := ","
	if !strings.Contains(config, ":") {
		separator = ":"
	}
	return fmt.Sprintf("%s%sseed=%d", config, separator, seed)
}

func summarize(configs []metrics.AgentConfig, records []metrics.GameRecord) {
	for _, config := range configs {
		games, wins := 0, 0
		total := 0.0
		for _, record := range records {
			if record.Agent != config.ID {
				continue
			}
			games++
			total += record.Score
			if record.Won {
				wins++
			}
		}
		if games == 0 {
			continue
		}
		log.Info().
			Str("agent", config.Config).
			Int("games", games).
			Int("wins", wins).
			Float64("average_score", total/float64(games)).
			Msg("agent summary")
	}
}
