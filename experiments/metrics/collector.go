package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Policy   string
	Depth    int
	Duration time.Duration
	Nodes    int // Interior nodes expanded
	Leaves   int // Evaluator calls
	Cutoffs  int // Nodes that stopped enumerating actions early
	MaxPly   int // Deepest ply reached before falling back to the evaluator
}

type MoveMetric struct {
	Step   int
	Agent  int // Agent index
	Action string
	SearchMetric
}

type GameMetric struct {
	Won        bool
	Lost       bool
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(policy string, depth int)
	AddNode()
	AddLeaf(ply int)
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	policy    string
	depth     int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	cutoffs   atomic.Int32
	maxPly    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(policy string, depth int) {
	m.startTime = time.Now()
	m.policy = policy
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.maxPly.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf(ply int) {
	m.leaves.Add(1)
	for {
		current := m.maxPly.Load()
		if int32(ply) <= current || m.maxPly.CompareAndSwap(current, int32(ply)) {
			return
		}
	}
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Policy:   m.policy,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
		MaxPly:   int(m.maxPly.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(policy string, depth int) {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) AddLeaf(ply int)                {}
func (m *dummyCollector) AddCutoff()                     {}
func (m *dummyCollector) Complete() SearchMetric         { return SearchMetric{} }
