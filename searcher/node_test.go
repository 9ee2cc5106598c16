package searcher

import (
	"pacman/game"

	"golang.org/x/exp/rand"
)

// mockState is an explicit game tree. Score doubles as the evaluation of
// leaves so the default evaluator can be used.
type mockState struct {
	agents   int
	score    float64
	win      bool
	lose     bool
	actions  []game.Action
	children map[game.Action]*mockState
}

func (m *mockState) LegalActions(agent int) []game.Action {
	return m.actions
}

func (m *mockState) Successor(agent int, action game.Action) game.State {
	child, ok := m.children[action]
	if !ok {
		panic("unknown action " + string(action))
	}
	return child
}

func (m *mockState) NumAgents() int                  { return m.agents }
func (m *mockState) IsWin() bool                     { return m.win }
func (m *mockState) IsLose() bool                    { return m.lose }
func (m *mockState) Score() float64                  { return m.score }
func (m *mockState) PacmanPosition() game.Position   { return game.Position{} }
func (m *mockState) GhostPositions() []game.Position { return nil }
func (m *mockState) GhostStates() []game.GhostState  { return nil }
func (m *mockState) Food() []game.Position           { return nil }

func leaf(score float64) *mockState {
	return &mockState{score: score}
}

func won(score float64) *mockState {
	return &mockState{score: score, win: true}
}

// branch names its actions A, B, C... in order
func branch(children ...*mockState) *mockState {
	m := &mockState{
		actions:  make([]game.Action, len(children)),
		children: make(map[game.Action]*mockState, len(children)),
	}
	for i, child := range children {
		action := game.Action(rune('A' + i))
		m.actions[i] = action
		m.children[action] = child
	}
	return m
}

func withAgents(agents int, root *mockState) *mockState {
	root.agents = agents
	return root
}

// randomTree builds a full tree of the given number of plies where some
// interior nodes are terminal
func randomTree(rng *rand.Rand, plies, branching int) *mockState {
	if plies == 0 {
		return leaf(float64(rng.Intn(101) - 50))
	}
	if rng.Intn(10) == 0 {
		lose := rng.Intn(2) == 0
		return &mockState{score: float64(rng.Intn(101) - 50), win: !lose, lose: lose}
	}
	children := make([]*mockState, 1+rng.Intn(branching))
	for i := range children {
		children[i] = randomTree(rng, plies-1, branching)
	}
	return branch(children...)
}
