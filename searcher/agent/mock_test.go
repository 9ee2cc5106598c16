package agent

import "pacman/game"

// mockState is an explicit game tree whose leaves are evaluated by their score
type mockState struct {
	agents   int
	score    float64
	win      bool
	actions  []game.Action
	children map[game.Action]*mockState
}

func (m *mockState) LegalActions(agent int) []game.Action { return m.actions }
func (m *mockState) Successor(agent int, action game.Action) game.State {
	return m.children[action]
}
func (m *mockState) NumAgents() int                  { return m.agents }
func (m *mockState) IsWin() bool                     { return m.win }
func (m *mockState) IsLose() bool                    { return false }
func (m *mockState) Score() float64                  { return m.score }
func (m *mockState) PacmanPosition() game.Position   { return game.Position{} }
func (m *mockState) GhostPositions() []game.Position { return nil }
func (m *mockState) GhostStates() []game.GhostState  { return nil }
func (m *mockState) Food() []game.Position           { return nil }

func leaf(score float64) *mockState {
	return &mockState{score: score}
}

// branch names its actions A, B, C... in order
func branch(children ...*mockState) *mockState {
	m := &mockState{children: make(map[game.Action]*mockState, len(children))}
	for i, child := range children {
		action := game.Action(rune('A' + i))
		m.actions = append(m.actions, action)
		m.children[action] = child
	}
	return m
}
