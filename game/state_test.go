package game

import (
	"reflect"
	"testing"
)

func TestCreateState(t *testing.T) {
	state := CreateState(2)

	if state.NumAgents() != 3 {
		t.Fatalf("expected 3 agents, got %d", state.NumAgents())
	}
	if state.PacmanPosition() != (Position{X: 0, Y: 0}) {
		t.Errorf("expected Pacman at the origin, got %v", state.PacmanPosition())
	}
	want := []Position{{X: 6, Y: 4}, {X: 0, Y: 4}}
	if got := state.GhostPositions(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected ghosts in the corners %v, got %v", want, got)
	}
	if len(state.Food()) != 8 {
		t.Errorf("expected 8 food, got %d", len(state.Food()))
	}
	if state.IsWin() || state.IsLose() || state.Score() != 0 {
		t.Errorf("expected a fresh game, got win=%t lose=%t score=%v", state.IsWin(), state.IsLose(), state.Score())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for 5 ghosts")
		}
	}()
	CreateState(5)
}

func TestLegalActions(t *testing.T) {
	arena := CreateArena()

	// Corner: south and west leave the grid
	state := NewArenaState(arena, Position{X: 0, Y: 0}, []Position{{X: 6, Y: 4}}, nil)
	if got, want := state.LegalActions(Pacman), []Action{North, East, Stop}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected Pacman actions %v, got %v", want, got)
	}
	if got, want := state.LegalActions(1), []Action{South, West}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected ghost actions %v without Stop, got %v", want, got)
	}

	// Below the wall block
	state = NewArenaState(arena, Position{X: 3, Y: 1}, nil, nil)
	if got, want := state.LegalActions(Pacman), []Action{South, East, West, Stop}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected walls to block moves: want %v, got %v", want, got)
	}
}

func TestLegalActionsBoxedIn(t *testing.T) {
	arena := NewArena(3, 1, Position{X: 1, Y: 0})
	state := NewArenaState(arena, Position{X: 2, Y: 0}, []Position{{X: 0, Y: 0}}, nil)

	if got := state.LegalActions(1); !reflect.DeepEqual(got, []Action{Stop}) {
		t.Errorf("expected a boxed in ghost to only stop, got %v", got)
	}
	if got := state.LegalActions(Pacman); !reflect.DeepEqual(got, []Action{Stop}) {
		t.Errorf("expected a boxed in Pacman to only stop, got %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for an invalid agent index")
		}
	}()
	state.LegalActions(2)
}

func TestSuccessorLeavesStateUntouched(t *testing.T) {
	state := CreateState(1)
	food := state.Food()

	next := state.Successor(Pacman, North)

	if state.PacmanPosition() != (Position{X: 0, Y: 0}) {
		t.Errorf("expected Pacman to stay put in the receiver, got %v", state.PacmanPosition())
	}
	if !reflect.DeepEqual(state.Food(), food) {
		t.Errorf("expected the receiver's food to be unchanged")
	}
	if state.Score() != 0 {
		t.Errorf("expected the receiver's score to be unchanged, got %v", state.Score())
	}
	if next.PacmanPosition() != (Position{X: 0, Y: 1}) {
		t.Errorf("expected Pacman to move north, got %v", next.PacmanPosition())
	}
	if next.Score() != -TimePenalty {
		t.Errorf("expected the time penalty, got %v", next.Score())
	}
}

func TestSuccessorEatingFood(t *testing.T) {
	state := NewArenaState(NewArena(3, 1), Position{X: 0, Y: 0}, nil, []Position{{X: 1, Y: 0}, {X: 2, Y: 0}})

	next := state.Successor(Pacman, East)
	if next.Score() != FoodReward-TimePenalty {
		t.Errorf("expected food reward minus time penalty, got %v", next.Score())
	}
	if len(next.Food()) != 1 || next.IsWin() {
		t.Fatalf("expected one food left and no win, got %v win=%t", next.Food(), next.IsWin())
	}

	last := next.Successor(Pacman, East)
	if !last.IsWin() {
		t.Errorf("expected a win after eating the last food")
	}
	if want := 2*(FoodReward-TimePenalty) + WinReward; last.Score() != want {
		t.Errorf("expected score %v, got %v", want, last.Score())
	}
	if len(last.LegalActions(Pacman)) != 0 {
		t.Errorf("expected no legal actions in a terminal state")
	}
}

func TestSuccessorCollisions(t *testing.T) {
	arena := NewArena(3, 1)
	state := NewArenaState(arena, Position{X: 0, Y: 0}, []Position{{X: 1, Y: 0}}, []Position{{X: 2, Y: 0}})

	// Pacman runs into the ghost
	next := state.Successor(Pacman, East)
	if !next.IsLose() {
		t.Errorf("expected a loss when Pacman walks into a ghost")
	}
	if want := -TimePenalty - LosePenalty; next.Score() != want {
		t.Errorf("expected score %v, got %v", want, next.Score())
	}

	// The ghost catches Pacman
	next = state.Successor(1, West)
	if !next.IsLose() {
		t.Errorf("expected a loss when a ghost walks into Pacman")
	}
	if next.Score() != -LosePenalty {
		t.Errorf("expected score %v, got %v", -LosePenalty, next.Score())
	}
}

func TestSuccessorCapsules(t *testing.T) {
	state := NewArenaState(NewArena(5, 1), Position{X: 0, Y: 0}, []Position{{X: 3, Y: 0}}, []Position{{X: 4, Y: 0}})
	state.Capsules = []Position{{X: 1, Y: 0}}

	next := state.Successor(Pacman, East)
	if got := next.GhostStates()[0].ScaredTimer; got != ScaredDuration {
		t.Fatalf("expected ghosts scared for %d moves, got %d", ScaredDuration, got)
	}

	next = next.Successor(1, West)
	if got := next.GhostStates()[0].ScaredTimer; got != ScaredDuration-1 {
		t.Errorf("expected the scared timer to tick down, got %d", got)
	}

	// Pacman eats the scared ghost, which respawns at its start
	next = next.Successor(Pacman, East)
	if next.IsLose() {
		t.Fatalf("expected Pacman to survive a scared ghost")
	}
	if want := GhostReward - 2*TimePenalty; next.Score() != want {
		t.Errorf("expected score %v, got %v", want, next.Score())
	}
	if got := next.GhostPositions()[0]; got != (Position{X: 3, Y: 0}) {
		t.Errorf("expected the ghost to respawn at its start, got %v", got)
	}
}

func TestSuccessorPanics(t *testing.T) {
	tests := []struct {
		name  string
		state *ArenaState
		agent int
		move  Action
	}{
		{"illegal action", CreateState(1), Pacman, South},
		{"terminal state", &ArenaState{Arena: CreateArena(), Won: true}, Pacman, Stop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected a panic")
				}
			}()
			tt.state.Successor(tt.agent, tt.move)
		})
	}
}
