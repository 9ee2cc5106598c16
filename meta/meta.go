// meta/meta.go
package meta

// DEFAULT_DEPTH is the search depth in full rounds (one move per agent).
const DEFAULT_DEPTH = 2

// DEFAULT_GHOSTS is the number of ghosts in the default arena.
const DEFAULT_GHOSTS = 2

// MAX_MOVES caps the number of individual moves in one game.
const MAX_MOVES = 500

// GAMES defines the number of games per agent config in an experiment.
const GAMES = 20

// GO_ROUTINES defines the number of games played concurrently.
const GO_ROUTINES = 8

// DEFAULT_PACMAN is the agent config used when none is given.
const DEFAULT_PACMAN = "alphabeta:depth=2,evalFn=better"
