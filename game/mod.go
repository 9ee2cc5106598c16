package game

import "math"

// Pacman is always agent index 0, ghosts are >= 1
const Pacman = 0

// Action is an opaque, comparable token naming a legal move of one agent
type Action string

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"
)

type Position struct {
	X, Y int
}

type GhostState struct {
	Position    Position
	ScaredTimer int // Moves left before the ghost stops being scared
}

// State should be immutable - Successor always returns a new copy
type State interface {
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	NumAgents() int
	IsWin() bool
	IsLose() bool
	Score() float64
	PacmanPosition() Position
	GhostPositions() []Position
	GhostStates() []GhostState
	Food() []Position
}

// Evaluates the game state to a score where higher values are more favorable
// to Pacman. Must be deterministic and total over reachable states.
type Evaluate func(State) float64

// ManhattanDistance returns the sum of absolute coordinate differences
func ManhattanDistance(a, b Position) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}
