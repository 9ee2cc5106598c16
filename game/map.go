package game

// Arena is the static part of the game: grid bounds and walls. It is shared
// between all states of a game and never modified after creation.
type Arena struct {
	Width  int
	Height int
	Walls  map[Position]bool
}

var directions = map[Action]Position{
	North: {X: 0, Y: 1},
	South: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
	Stop:  {X: 0, Y: 0},
}

// Fixed enumeration order keeps legal actions deterministic
var moveOrder = []Action{North, South, East, West}

// NewArena creates an open width x height grid with the given walls
func NewArena(width, height int, walls ...Position) *Arena {
	if width <= 0 || height <= 0 {
		panic("arena must have positive dimensions")
	}
	a := &Arena{
		Width:  width,
		Height: height,
		Walls:  make(map[Position]bool, len(walls)),
	}
	for _, w := range walls {
		a.AddWall(w)
	}
	return a
}

func (a *Arena) AddWall(p Position) {
	a.Walls[p] = true
}

// IsOpen reports whether p is inside the grid and not a wall
func (a *Arena) IsOpen(p Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= a.Width || p.Y >= a.Height {
		return false
	}
	return !a.Walls[p]
}

// Neighbor returns the position reached from p by taking action
func Neighbor(p Position, action Action) Position {
	d, ok := directions[action]
	if !ok {
		panic("unknown action " + string(action))
	}
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// CreateArena builds the default 7x5 arena with a small central block
func CreateArena() *Arena {
	return NewArena(7, 5,
		Position{X: 2, Y: 2},
		Position{X: 3, Y: 2},
		Position{X: 4, Y: 2},
	)
}

// CreateState places Pacman, up to four ghosts in the corners, and a ring of
// food on the default arena
func CreateState(numGhosts int) *ArenaState {
	arena := CreateArena()
	corners := []Position{
		{X: 6, Y: 4},
		{X: 0, Y: 4},
		{X: 6, Y: 0},
		{X: 3, Y: 4},
	}
	if numGhosts < 0 || numGhosts > len(corners) {
		panic("default arena supports between 0 and 4 ghosts")
	}
	food := []Position{
		{X: 1, Y: 1}, {X: 5, Y: 1},
		{X: 1, Y: 3}, {X: 5, Y: 3},
		{X: 3, Y: 1}, {X: 3, Y: 3},
		{X: 0, Y: 2}, {X: 6, Y: 2},
	}
	return NewArenaState(arena, Position{X: 0, Y: 0}, corners[:numGhosts], food)
}
