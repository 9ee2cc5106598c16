package experiments

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RunThroughputExperiment searches the starting arena once per policy and
// depth and stores the search metrics as move records, one game per policy.
func RunThroughputExperiment(ghosts, maxDepth int, writer *metrics.Writer) ([]metrics.MoveRecord, error) {
	policies := []searcher.Policy{searcher.Exact, searcher.Pruned, searcher.Expected}
	state := game.CreateState(ghosts)

	log.Info().Msgf("starting throughput experiment with %d ghosts up to depth %d...", ghosts, maxDepth)

	records := make([]metrics.MoveRecord, len(policies)*maxDepth)
	g := errgroup.Group{}
	for pi, policy := range policies {
		for depth := 1; depth <= maxDepth; depth++ {
			i := pi*maxDepth + depth - 1
			g.Go(func() error {
				s := searcher.NewSearcher(policy,
					searcher.WithDepth(depth),
					searcher.WithEvaluationFn(game.EvaluateBetter),
					searcher.WithMetrics(),
				)
				result := s.Search(state)
				records[i] = metrics.MoveRecord{
					Game: pi + 1,
					MoveMetric: metrics.MoveMetric{
						Step:         depth,
						Agent:        game.Pacman,
						Action:       string(result.Action),
						SearchMetric: result.Metric,
					},
				}
				log.Info().
					Str("policy", policy.String()).
					Int("depth", depth).
					Int("leaves", result.Metric.Leaves).
					Dur("duration", result.Metric.Duration).
					Msg("completed search")
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msg("completed throughput experiment")

	configs := make([]metrics.AgentConfig, len(policies))
	for i, policy := range policies {
		configs[i] = metrics.AgentConfig{ID: i + 1, Config: policy.String() + ":evalFn=better,metrics"}
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, errors.WithMessage(err, "failed to store agent configs")
	}
	if err := writer.WriteMoveRecords(records); err != nil {
		return nil, errors.WithMessage(err, "failed to store move records")
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return records, nil
}
