package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
)

type Agent interface {
	// FindMove returns the chosen action and the metrics of the search that produced it (if collected)
	FindMove(state game.State) (game.Action, metrics.SearchMetric)
}
