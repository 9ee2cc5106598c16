package searcher

import (
	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/pkg/errors"
)

// Policy decides how adversary nodes back up their children's values and
// whether alpha-beta bounds are threaded through the search.
type Policy int

const (
	Exact    Policy = iota // Minimax: adversaries minimize
	Pruned                 // Minimax with alpha-beta pruning
	Expected               // Expectimax: adversaries move uniformly at random
)

func (p Policy) String() string {
	switch p {
	case Exact:
		return "minimax"
	case Pruned:
		return "alphabeta"
	case Expected:
		return "expectimax"
	default:
		return "unknown"
	}
}

func ParsePolicy(name string) (Policy, error) {
	for _, p := range []Policy{Exact, Pruned, Expected} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, errors.Errorf("unknown search policy %q", name)
}

// Prediction is the backed-up value of one root action
type Prediction struct {
	Action game.Action
	Value  float64
}

type Result struct {
	Value       float64      // Backed-up value of the root
	Action      game.Action  // Root action with the best backed-up value, "" at a terminal root
	Predictions []Prediction // One per root action, in legal-action order
	Metric      metrics.SearchMetric
}
