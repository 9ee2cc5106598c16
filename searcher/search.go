package searcher

import (
	"fmt"
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
)

type Option func(s *Searcher)

// Searcher walks the game tree depth-first, alternating Pacman (agent 0,
// maximizing) with every ghost in round-robin order. A Searcher is not safe
// for concurrent use because it owns its metrics collector.
type Searcher struct {
	policy   Policy
	depth    int // Full rounds, i.e. depth * NumAgents() plies
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(policy Policy, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		policy:   policy,
		depth:    meta.DEFAULT_DEPTH,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Policy() Policy { return s.policy }
func (s *Searcher) Depth() int     { return s.depth }

// Search backs up values from the depth horizon to state and returns the
// root value together with the best root action and every root prediction.
func (s *Searcher) Search(state game.State) Result {
	s.metrics.Start(s.policy.String(), s.depth)

	agents := state.NumAgents()
	r := &run{
		Searcher: s,
		agents:   agents,
		horizon:  s.depth * agents,
	}
	value, action := r.value(state, 0, math.Inf(-1), math.Inf(1))

	return Result{
		Value:       value,
		Action:      action,
		Predictions: r.predictions,
		Metric:      s.metrics.Complete(),
	}
}

// run holds the bookkeeping of a single Search call
type run struct {
	*Searcher
	agents      int
	horizon     int
	predictions []Prediction
}

// value returns the backed-up value of state, reached after count plies,
// and at Pacman's nodes the action achieving it. alpha and beta are copies
// so each branch only sees bounds tightened by its ancestors.
func (r *run) value(state game.State, count int, alpha, beta float64) (float64, game.Action) {
	if state.IsWin() || state.IsLose() || count >= r.horizon {
		r.metrics.AddLeaf(count)
		return r.evaluate(state), ""
	}
	r.metrics.AddNode()

	agent := count % r.agents
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		panic(fmt.Sprintf("agent %d has no legal actions in a non-terminal state", agent))
	}

	switch {
	case agent == game.Pacman:
		return r.maximize(state, agent, actions, count, alpha, beta)
	case r.policy == Expected:
		return r.average(state, agent, actions, count), ""
	default:
		return r.minimize(state, agent, actions, count, alpha, beta), ""
	}
}

func (r *run) maximize(state game.State, agent int, actions []game.Action, count int, alpha, beta float64) (float64, game.Action) {
	var best float64
	var bestAction game.Action
	found := false

	for _, action := range actions {
		v, _ := r.value(state.Successor(agent, action), count+1, alpha, beta)
		if count == 0 {
			r.predictions = append(r.predictions, Prediction{Action: action, Value: v})
		}
		if !found || v > best {
			best, bestAction, found = v, action, true
		}

		// Root actions all get the full window so every prediction is exact
		if r.policy != Pruned || count == 0 {
			continue
		}
		alpha = math.Max(alpha, best)
		if beta < alpha {
			r.metrics.AddCutoff()
			break
		}
	}
	return best, bestAction
}

func (r *run) minimize(state game.State, agent int, actions []game.Action, count int, alpha, beta float64) float64 {
	var best float64
	found := false

	for _, action := range actions {
		v, _ := r.value(state.Successor(agent, action), count+1, alpha, beta)
		if !found || v < best {
			best, found = v, true
		}

		if r.policy != Pruned {
			continue
		}
		beta = math.Min(beta, best)
		if beta < alpha {
			r.metrics.AddCutoff()
			break
		}
	}
	return best
}

// average models a uniformly random ghost, so every action is explored
func (r *run) average(state game.State, agent int, actions []game.Action, count int) float64 {
	mean := 0.0
	for i, action := range actions {
		v, _ := r.value(state.Successor(agent, action), count+1, math.Inf(-1), math.Inf(1))
		// Incremental mean avoids overflow when children sit at MinScore
		mean += (v - mean) / float64(i+1)
	}
	return mean
}
