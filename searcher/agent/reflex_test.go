package agent

import (
	"pacman/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReflexAgentFindMove(t *testing.T) {
	t.Run("choosing a unique best action every time", func(t *testing.T) {
		// East eats a food, every other action leaves two
		state := game.NewArenaState(game.NewArena(5, 5), game.Position{X: 0, Y: 0},
			nil, []game.Position{{X: 1, Y: 0}, {X: 4, Y: 4}})

		for seed := uint64(0); seed < 20; seed++ {
			got, _ := NewReflexAgent(game.EvaluateBetter, seed).FindMove(state)

			require.Equal(t, game.East, got, "Unique best action should not depend on seed %d", seed)
		}
	})

	t.Run("avoiding an action that moves next to a ghost", func(t *testing.T) {
		// North approaches the only food but ends 1 away from the first
		// ghost; Stop stays 2 away from it
		state := game.NewArenaState(game.NewArena(7, 7), game.Position{X: 3, Y: 3},
			[]game.Position{{X: 3, Y: 5}, {X: 6, Y: 0}}, []game.Position{{X: 3, Y: 6}})

		for seed := uint64(0); seed < 20; seed++ {
			got, _ := NewReflexAgent(game.EvaluateBetter, seed).FindMove(state)

			require.Contains(t, []game.Action{game.South, game.East, game.West}, got,
				"Should avoid the ghost cutoff with seed %d", seed)
		}
	})

	t.Run("choosing among tied actions at random", func(t *testing.T) {
		// East and West each move 1 away from a food
		state := game.NewArenaState(game.NewArena(5, 5), game.Position{X: 2, Y: 2},
			nil, []game.Position{{X: 0, Y: 2}, {X: 4, Y: 2}})

		seen := map[game.Action]bool{}
		for seed := uint64(0); seed < 100; seed++ {
			got, _ := NewReflexAgent(game.EvaluateBetter, seed).FindMove(state)
			seen[got] = true
		}

		require.Equal(t, map[game.Action]bool{game.East: true, game.West: true}, seen,
			"Should only pick tied actions, and both of them")
	})

	t.Run("panicking without legal actions", func(t *testing.T) {
		state := &mockState{agents: 1}

		require.Panics(t, func() {
			NewReflexAgent(game.EvaluateScore, 1).FindMove(state)
		}, "Reflex agent needs at least one legal action")
	})
}

func TestRandomAgentFindMove(t *testing.T) {
	t.Run("choosing only legal ghost actions", func(t *testing.T) {
		state := game.CreateState(2)
		legal := state.LegalActions(2)

		agent := NewRandomAgent(2, 11)
		for i := 0; i < 50; i++ {
			got, _ := agent.FindMove(state)

			require.Contains(t, legal, got, "Random ghost should pick a legal action")
		}
	})
}
