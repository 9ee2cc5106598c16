package agent

import (
	"pacman/game"
	"pacman/meta"
	"pacman/searcher"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	Reflex = "reflex"
	Random = "random"
)

// New creates the agent playing index from a config string: the agent kind
// followed by a colon and a comma-separated list of key=value parameters,
// e.g. "alphabeta:depth=3,evalFn=better" or "random:seed=7".
//
// Kinds are minimax, alphabeta, expectimax (Pacman only), reflex (Pacman
// only) and random. Parameters:
//
//	evalFn:  registered evaluation function name
//	depth:   search depth in full rounds
//	seed:    random seed for tie-breaks and random moves
//	metrics: collect search metrics (flag)
func New(index int, config string) (Agent, error) {
	kind := config
	params := map[string]string{}
	if split := strings.Index(config, ":"); split != -1 {
		kind = config[:split]
		params = splitConfigString(config[split+1:])
	}

	var a Agent
	var err error
	switch kind {
	case Reflex:
		a, err = newReflex(index, params)
	case Random:
		a, err = newRandom(index, params)
	default:
		a, err = newTree(index, kind, params)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create agent %q", config)
	}

	if len(params) > 0 {
		return nil, errors.Errorf("unknown parameters %v for agent %q", keys(params), config)
	}
	return a, nil
}

func newTree(index int, kind string, params map[string]string) (Agent, error) {
	policy, err := searcher.ParsePolicy(kind)
	if err != nil {
		return nil, errors.Errorf("unknown agent kind %q", kind)
	}
	if index != game.Pacman {
		return nil, errors.Errorf("%s agent must play pacman, not agent %d", kind, index)
	}

	evaluate, err := popEvaluator(params, game.ScoreEvaluator)
	if err != nil {
		return nil, err
	}
	depth, err := popInt(params, "depth", meta.DEFAULT_DEPTH)
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, errors.Errorf("depth must be at least 1, got %d", depth)
	}

	options := []searcher.Option{
		searcher.WithDepth(depth),
		searcher.WithEvaluationFn(evaluate),
	}
	if _, ok := params["metrics"]; ok {
		delete(params, "metrics")
		options = append(options, searcher.WithMetrics())
	}
	return NewTreeAgent(searcher.NewSearcher(policy, options...)), nil
}

func newReflex(index int, params map[string]string) (Agent, error) {
	if index != game.Pacman {
		return nil, errors.Errorf("reflex agent must play pacman, not agent %d", index)
	}
	evaluate, err := popEvaluator(params, game.BetterEvaluator)
	if err != nil {
		return nil, err
	}
	seed, err := popSeed(params)
	if err != nil {
		return nil, err
	}
	return NewReflexAgent(evaluate, seed), nil
}

func newRandom(index int, params map[string]string) (Agent, error) {
	seed, err := popSeed(params)
	if err != nil {
		return nil, err
	}
	return NewRandomAgent(index, seed), nil
}

// splitConfigString splits "k1=v1,k2,k3=v3" into a map; keys without a value map to "".
func splitConfigString(config string) map[string]string {
	params := make(map[string]string)
	for _, part := range strings.Split(config, ",") {
		if part == "" {
			continue
		}
		subParts := strings.SplitN(part, "=", 2)
		if len(subParts) == 1 {
			params[subParts[0]] = ""
		} else {
			params[subParts[0]] = subParts[1]
		}
	}
	return params
}

func popEvaluator(params map[string]string, defaultName game.EvaluatorName) (game.Evaluate, error) {
	name, ok := params["evalFn"]
	delete(params, "evalFn")
	if !ok {
		name = string(defaultName)
	}
	return game.LookupEvaluator(name)
}

func popInt(params map[string]string, key string, defaultValue int) (int, error) {
	value, ok := params[key]
	delete(params, key)
	if !ok {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
	}
	return parsed, nil
}

func popSeed(params map[string]string) (uint64, error) {
	value, ok := params["seed"]
	delete(params, "seed")
	if !ok {
		return uint64(time.Now().UnixNano()), nil
	}
	seed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse configuration seed=%q to uint", value)
	}
	return seed, nil
}

func keys(params map[string]string) []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
