package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"

	"golang.org/x/exp/rand"
)

type reflexAgent struct {
	evaluate game.Evaluate
	rng      *rand.Rand
}

// NewReflexAgent returns Pacman's one-ply agent: it evaluates the successor
// of every legal action and picks uniformly among the best ones.
func NewReflexAgent(evaluate game.Evaluate, seed uint64) Agent {
	return &reflexAgent{
		evaluate: evaluate,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *reflexAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.LegalActions(game.Pacman)
	if len(actions) == 0 {
		panic("no legal actions for pacman")
	}

	scores := make([]float64, len(actions))
	for i, action := range actions {
		scores[i] = a.evaluate(state.Successor(game.Pacman, action))
	}

	best := scores[0]
	for _, score := range scores[1:] {
		if score > best {
			best = score
		}
	}
	ties := []game.Action{}
	for i, score := range scores {
		if score == best {
			ties = append(ties, actions[i])
		}
	}

	if len(ties) == 1 {
		return ties[0], metrics.SearchMetric{}
	}
	return ties[a.rng.Intn(len(ties))], metrics.SearchMetric{}
}
