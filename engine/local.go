package engine

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher/agent"
	"pacman/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State    game.State
	Agents   []agent.Agent // Agent i plays agent index i
	MaxMoves int
}

func NewLocalEngine(agents []agent.Agent, state game.State) *LocalEngine {
	if len(agents) != state.NumAgents() {
		panic("number of agents does not match the game's number of agents")
	}
	if len(agents) < 1 {
		panic("need at least one agent")
	}

	return &LocalEngine{
		State:    state,
		Agents:   agents,
		MaxMoves: meta.MAX_MOVES,
	}
}

// Run executes the game loop, one move per agent in index order, until the
// game is over or MaxMoves moves were played.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Int("agents", len(e.Agents)).Msg("game starting")

	step := 0
	for !e.State.IsWin() && !e.State.IsLose() && step < e.MaxMoves {
		index := step % len(e.Agents)

		action, searchMetric := e.Agents[index].FindMove(e.State)
		if !utils.Contains(e.State.LegalActions(index), action) {
			fallback := e.State.LegalActions(index)
			if len(fallback) == 0 {
				panic("no legal actions at all")
			}
			log.Error().Int("agent", index).Str("action", string(action)).
				Msgf("agent returned an illegal action => playing %s", fallback[0])
			action = fallback[0]
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Agent:        index,
			Action:       string(action),
			SearchMetric: searchMetric,
		})

		e.State = e.State.Successor(index, action)

		log.Debug().
			Int("step", step).
			Int("agent", index).
			Str("action", string(action)).
			Float64("score", e.State.Score()).
			Int("food", len(e.State.Food())).
			Msg("move played")
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Won = e.State.IsWin()
	gameMetric.Lost = e.State.IsLose()
	gameMetric.Score = e.State.Score()
	gameMetric.TotalMoves = step

	if !gameMetric.Won && !gameMetric.Lost {
		log.Debug().Msgf("stopped after %d moves (game not over)", step)
	}

	return gameMetric, moveMetrics
}
