package experiments

import (
	"os"
	"pacman/meta"
	"pacman/searcher/agent"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Setup describes an experiment: every Pacman agent config plays NumGames
// games against Ghosts ghost agents on the default arena.
type Setup struct {
	Name       string   `yaml:"name"`
	Agents     []string `yaml:"agents"` // Pacman agent configs
	Ghost      string   `yaml:"ghost"`  // Ghost agent config, seeded per game
	Ghosts     int      `yaml:"ghosts"`
	NumGames   int      `yaml:"games"` // Per agent config
	Goroutines int      `yaml:"goroutines"`
	MaxMoves   int      `yaml:"maxMoves"`
	Seed       uint64   `yaml:"seed"`
}

func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, errors.Wrapf(err, "failed to read experiment setup %s", path)
	}
	return ParseSetup(data)
}

func ParseSetup(data []byte) (Setup, error) {
	setup := Setup{}
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return Setup{}, errors.Wrap(err, "failed to parse experiment setup")
	}
	setup = setup.withDefaults()
	if err := setup.Validate(); err != nil {
		return Setup{}, err
	}
	return setup, nil
}

func (s Setup) withDefaults() Setup {
	if s.Name == "" {
		s.Name = "custom"
	}
	if s.Ghost == "" {
		s.Ghost = agent.Random
	}
	if s.Ghosts == 0 {
		s.Ghosts = meta.DEFAULT_GHOSTS
	}
	if s.NumGames == 0 {
		s.NumGames = meta.GAMES
	}
	if s.Goroutines == 0 {
		s.Goroutines = meta.GO_ROUTINES
	}
	if s.MaxMoves == 0 {
		s.MaxMoves = meta.MAX_MOVES
	}
	return s
}

// Validate checks that every agent config can be built
func (s Setup) Validate() error {
	if len(s.Agents) == 0 {
		return errors.New("experiment setup has no agents")
	}
	if s.Ghosts < 0 || s.NumGames < 0 || s.Goroutines < 0 || s.MaxMoves < 0 {
		return errors.Errorf("experiment setup has negative counts: %+v", s)
	}
	for _, config := range s.Agents {
		if _, err := agent.New(0, config); err != nil {
			return errors.WithMessage(err, "invalid pacman agent")
		}
	}
	for i := 1; i <= s.Ghosts; i++ {
		if _, err := agent.New(i, s.Ghost); err != nil {
			return errors.WithMessage(err, "invalid ghost agent")
		}
	}
	return nil
}
