package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type TurnMetric struct {
	Step     int
	Color    int
	Roll     int
	Options  int // Number of legal moves
	Peg      int // -1 if the color could not move
	From     string
	To       string
	Captured bool
}

type GameMetric struct {
	StartingColor int
	Winner        string // "" if the turn limit was reached
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalTurns    int
	TotalMoves    int
	Captures      int
}

type Collector interface {
	Start(startingColor int)
	AddTurn(turn TurnMetric)
	Turns() []TurnMetric
	Complete(winner string) GameMetric
}

type collector struct {
	startingColor int
	startTime     time.Time
	turns         atomic.Int32
	moves         atomic.Int32
	captures      atomic.Int32

	mu      sync.Mutex
	history []TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingColor int) {
	m.startTime = time.Now()
	m.startingColor = startingColor
	m.turns.Store(0)
	m.moves.Store(0)
	m.captures.Store(0)

	m.mu.Lock()
	m.history = nil
	m.mu.Unlock()
}

func (m *collector) AddTurn(turn TurnMetric) {
	m.turns.Add(1)
	if turn.Peg >= 0 {
		m.moves.Add(1)
	}
	if turn.Captured {
		m.captures.Add(1)
	}

	m.mu.Lock()
	m.history = append(m.history, turn)
	m.mu.Unlock()
}

func (m *collector) Turns() []TurnMetric {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]TurnMetric(nil), m.history...)
}

func (m *collector) Complete(winner string) GameMetric {
	end := time.Now()
	return GameMetric{
		StartingColor: m.startingColor,
		Winner:        winner,
		StartTime:     m.startTime,
		EndTime:       end,
		Duration:      end.Sub(m.startTime),
		TotalTurns:    int(m.turns.Load()),
		TotalMoves:    int(m.moves.Load()),
		Captures:      int(m.captures.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingColor int)           {}
func (m *dummyCollector) AddTurn(turn TurnMetric)           {}
func (m *dummyCollector) Turns() []TurnMetric               { return nil }
func (m *dummyCollector) Complete(winner string) GameMetric { return GameMetric{Winner: winner} }
