package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	index int
	rng   *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among its legal
// actions, the ghost model expectimax assumes.
func NewRandomAgent(index int, seed uint64) Agent {
	return &randomAgent{
		index: index,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.LegalActions(a.index)
	if len(actions) == 0 {
		panic("no legal actions for agent")
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}
}
