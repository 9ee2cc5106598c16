package game

import (
	"math"

	"github.com/pkg/errors"
)

// MinScore marks a state as unacceptable for Pacman
const MinScore = -math.MaxFloat64

const (
	// Ghosts closer than this trigger the survival cutoff
	GhostCutoffDistance = 3.0
	// Penalty per remaining food, large enough that eating always beats
	// merely approaching food
	FoodCountWeight = 500.0
)

type EvaluatorName string

const (
	ScoreEvaluator  EvaluatorName = "score"
	BetterEvaluator EvaluatorName = "better"
)

var evaluators = map[EvaluatorName]Evaluate{
	ScoreEvaluator:  EvaluateScore,
	BetterEvaluator: EvaluateBetter,
}

var aliases = map[string]EvaluatorName{
	"scoreEvaluationFunction":  ScoreEvaluator,
	"betterEvaluationFunction": BetterEvaluator,
}

// LookupEvaluator resolves an evaluator by its registered name or alias
func LookupEvaluator(name string) (Evaluate, error) {
	if alias, ok := aliases[name]; ok {
		name = string(alias)
	}
	evaluate, ok := evaluators[EvaluatorName(name)]
	if !ok {
		return nil, errors.Errorf("unknown evaluation function %q", name)
	}
	return evaluate, nil
}

// EvaluateScore returns the game score of the state
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateBetter ranks states lexicographically: any ghost within the cutoff
// distance makes the state unacceptable, otherwise fewer remaining food and
// then a closer nearest food are preferred.
func EvaluateBetter(s State) float64 {
	pacman := s.PacmanPosition()

	for _, ghost := range s.GhostPositions() {
		if ManhattanDistance(pacman, ghost) < GhostCutoffDistance {
			return MinScore
		}
	}

	food := s.Food()
	if len(food) == 0 {
		return 0
	}
	nearest := math.Inf(1)
	for _, f := range food {
		nearest = math.Min(nearest, ManhattanDistance(pacman, f))
	}
	return -(nearest + FoodCountWeight*float64(len(food)))
}
