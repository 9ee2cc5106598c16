package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"

	"github.com/rs/zerolog/log"
)

type treeAgent struct {
	searcher *searcher.Searcher
}

// NewTreeAgent returns Pacman's agent that plays the best root action of a
// full game-tree search. Root ties go to the first legal action.
func NewTreeAgent(s *searcher.Searcher) Agent {
	return treeAgent{searcher: s}
}

func (a treeAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric) {
	result := a.searcher.Search(state)
	if len(result.Predictions) == 0 {
		panic("cannot choose a move from a terminal state")
	}

	log.Debug().
		Str("policy", a.searcher.Policy().String()).
		Int("depth", a.searcher.Depth()).
		Float64("value", result.Value).
		Str("action", string(result.Action)).
		Interface("predictions", result.Predictions).
		Msg("tree search complete")

	return result.Action, result.Metric
}
