package game

import (
	"fmt"
	"pacman/utils"
)

// Scoring rules of the pursuit game
const (
	TimePenalty    = 1.0
	FoodReward     = 10.0
	WinReward      = 500.0
	LosePenalty    = 500.0
	GhostReward    = 200.0
	ScaredDuration = 40
)

// ArenaState represents the dynamic state of a game at any point: everything
// except the arena, which is static.
type ArenaState struct {
	Arena       *Arena       // Reference to the static arena
	Pacman      Position     // Pacman's position
	Ghosts      []GhostState // Ghost states, ghost i is agent i+1
	GhostStarts []Position   // Where eaten ghosts respawn
	FoodList    []Position   // Remaining food in placement order
	Capsules    []Position   // Remaining power capsules
	Points      float64      // Accumulated game score
	Won         bool
	Lost        bool
}

// NewArenaState initializes a state with Pacman, ghosts and food placed on
// open cells of the arena.
func NewArenaState(arena *Arena, pacman Position, ghosts []Position, food []Position) *ArenaState {
	if !arena.IsOpen(pacman) {
		panic(fmt.Sprintf("pacman placed on blocked cell %v", pacman))
	}
	s := &ArenaState{
		Arena:       arena,
		Pacman:      pacman,
		Ghosts:      make([]GhostState, len(ghosts)),
		GhostStarts: make([]Position, len(ghosts)),
		FoodList:    make([]Position, 0, len(food)),
	}
	for i, g := range ghosts {
		if !arena.IsOpen(g) {
			panic(fmt.Sprintf("ghost %d placed on blocked cell %v", i+1, g))
		}
		s.Ghosts[i] = GhostState{Position: g}
		s.GhostStarts[i] = g
	}
	for _, f := range food {
		if arena.IsOpen(f) && f != pacman {
			s.FoodList = append(s.FoodList, f)
		}
	}
	return s
}

// Copy returns a deep copy of the dynamic state; the arena is shared.
func (s ArenaState) Copy() *ArenaState {
	ghosts := make([]GhostState, len(s.Ghosts))
	copy(ghosts, s.Ghosts)

	food := make([]Position, len(s.FoodList))
	copy(food, s.FoodList)

	capsules := make([]Position, len(s.Capsules))
	copy(capsules, s.Capsules)

	return &ArenaState{
		Arena:       s.Arena,
		Pacman:      s.Pacman,
		Ghosts:      ghosts,
		GhostStarts: s.GhostStarts, // Never modified
		FoodList:    food,
		Capsules:    capsules,
		Points:      s.Points,
		Won:         s.Won,
		Lost:        s.Lost,
	}
}

func (s *ArenaState) NumAgents() int {
	return len(s.Ghosts) + 1
}

func (s *ArenaState) IsWin() bool  { return s.Won }
func (s *ArenaState) IsLose() bool { return s.Lost }

func (s *ArenaState) Score() float64 {
	return s.Points
}

func (s *ArenaState) PacmanPosition() Position {
	return s.Pacman
}

func (s *ArenaState) GhostPositions() []Position {
	positions := make([]Position, len(s.Ghosts))
	for i, g := range s.Ghosts {
		positions[i] = g.Position
	}
	return positions
}

func (s *ArenaState) GhostStates() []GhostState {
	ghosts := make([]GhostState, len(s.Ghosts))
	copy(ghosts, s.Ghosts)
	return ghosts
}

func (s *ArenaState) Food() []Position {
	food := make([]Position, len(s.FoodList))
	copy(food, s.FoodList)
	return food
}

// LegalActions returns the legal actions of an agent. Pacman may always
// stop; ghosts only stop when boxed in. Terminal states have no legal actions.
func (s *ArenaState) LegalActions(agent int) []Action {
	if agent < 0 || agent >= s.NumAgents() {
		panic(fmt.Sprintf("invalid agent index %d", agent))
	}
	if s.Won || s.Lost {
		return []Action{}
	}

	from := s.agentPosition(agent)
	actions := []Action{}
	for _, action := range moveOrder {
		if s.Arena.IsOpen(Neighbor(from, action)) {
			actions = append(actions, action)
		}
	}
	if agent == Pacman || len(actions) == 0 {
		actions = append(actions, Stop)
	}
	return actions
}

// Successor returns the state after agent takes action. The receiver is
// left untouched.
func (s *ArenaState) Successor(agent int, action Action) State {
	if s.Won || s.Lost {
		panic("cannot generate a successor of a terminal state")
	}
	if !s.isLegal(agent, action) {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := s.Copy()
	if agent == Pacman {
		next.movePacman(action)
	} else {
		next.moveGhost(agent-1, action)
	}
	next.resolveCollisions()
	return next
}

func (s *ArenaState) isLegal(agent int, action Action) bool {
	return utils.Contains(s.LegalActions(agent), action)
}

func (s *ArenaState) agentPosition(agent int) Position {
	if agent == Pacman {
		return s.Pacman
	}
	return s.Ghosts[agent-1].Position
}

func (s *ArenaState) movePacman(action Action) {
	s.Pacman = Neighbor(s.Pacman, action)
	s.Points -= TimePenalty

	if i := utils.FindIndex(s.FoodList, s.Pacman); i >= 0 {
		s.FoodList = utils.RemoveAt(s.FoodList, i)
		s.Points += FoodReward
		if len(s.FoodList) == 0 {
			s.Points += WinReward
			s.Won = true
		}
	}

	if i := utils.FindIndex(s.Capsules, s.Pacman); i >= 0 {
		s.Capsules = utils.RemoveAt(s.Capsules, i)
		for g := range s.Ghosts {
			s.Ghosts[g].ScaredTimer = ScaredDuration
		}
	}
}

func (s *ArenaState) moveGhost(ghost int, action Action) {
	g := &s.Ghosts[ghost]
	g.Position = Neighbor(g.Position, action)
	if g.ScaredTimer > 0 {
		g.ScaredTimer--
	}
}

// resolveCollisions lets Pacman eat scared ghosts and lose to the others
func (s *ArenaState) resolveCollisions() {
	if s.Won {
		return
	}
	for i := range s.Ghosts {
		g := &s.Ghosts[i]
		if g.Position != s.Pacman {
			continue
		}
		if g.ScaredTimer > 0 {
			s.Points += GhostReward
			g.Position = s.GhostStarts[i]
			g.ScaredTimer = 0
			continue
		}
		s.Points -= LosePenalty
		s.Lost = true
		return
	}
}
