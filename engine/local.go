package engine

import (
	"fmt"
	"time"

	"github.com/elh/aergere/experiments/metrics"
	"github.com/elh/aergere/game"
	"github.com/elh/aergere/meta"
	"github.com/elh/aergere/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

type Engine struct {
	Board     *game.Board
	players   [game.NumColors]player.Player
	dice      Dice
	turnLimit int
	starting  game.Color
	metrics   metrics.Collector
}

func WithTurnLimit(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.turnLimit = turns
		}
	}
}

// WithSeed rolls the dice from a seeded source so runs can be replayed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.dice = newDice(seed)
	}
}

func WithDice(dice Dice) Option {
	return func(e *Engine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

func WithStartingColor(color game.Color) Option {
	return func(e *Engine) {
		if color.Valid() {
			e.starting = color
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

func WithBoard(b *game.Board) Option {
	return func(e *Engine) {
		if b != nil {
			e.Board = b
		}
	}
}

func newDice(seed uint64) Dice {
	rng := rand.New(rand.NewSource(seed))
	return func() int {
		return game.MinRoll + rng.Intn(game.MaxRoll-game.MinRoll+1)
	}
}

// NewLocalEngine sets up a game on the initial board with one player per color.
func NewLocalEngine(players [game.NumColors]player.Player, options ...Option) *Engine {
	for c, p := range players {
		if p == nil {
			panic(fmt.Sprintf("no player for color %v", game.Color(c)))
		}
	}

	board, err := game.NewBoard()
	if err != nil {
		panic(err)
	}

	e := &Engine{ // Default values
		Board:     board,
		players:   players,
		dice:      newDice(uint64(time.Now().UnixNano())),
		turnLimit: meta.TURN_LIMIT,
		starting:  game.Yellow,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays turns in color order until a color has all pegs home or the turn
// limit is reached. A roll of 6 gives the same color another roll.
func (e *Engine) Run() (metrics.GameMetric, error) {
	e.metrics.Start(int(e.starting))
	log.Info().Msgf("%v is starting", e.starting)

	color := e.starting
	for turn := 1; turn <= e.turnLimit; turn++ {
		for {
			roll, err := e.takeTurn(turn, color)
			if err != nil {
				return e.metrics.Complete(""), fmt.Errorf("turn %d: %w", turn, err)
			}

			if winner, ok := e.Board.Winner(); ok {
				log.Info().Msgf("%v wins on turn %d", winner, turn)
				log.Debug().Msgf("final board:\n%v", e.Board)
				return e.metrics.Complete(winner.String()), nil
			}

			if roll != game.EntryRoll {
				break
			}
		}
		color = color.Next()
	}

	log.Info().Msgf("stopped after %d turns without a winner", e.turnLimit)
	return e.metrics.Complete(""), nil
}

func (e *Engine) takeTurn(turn int, color game.Color) (int, error) {
	roll := e.dice()
	moves, err := game.ValidMoves(e.Board, color, roll)
	if err != nil {
		return roll, err
	}

	record := metrics.TurnMetric{Step: turn, Color: int(color), Roll: roll, Options: len(moves), Peg: -1}
	if len(moves) == 0 {
		log.Debug().Int("turn", turn).Stringer("color", color).Int("roll", roll).Msg("no moves")
		e.metrics.AddTurn(record)
		return roll, nil
	}

	m := e.players[color].ChooseMove(e.Board, color, roll, moves)
	from := e.Board.Peg(color, m.Peg)
	capturedColor, capturedPeg, captured := game.Captured(e.Board, m)

	next, err := game.Play(e.Board, color, roll, m.Peg)
	if err != nil {
		return roll, err
	}

	event := log.Debug().
		Int("turn", turn).
		Stringer("color", color).
		Int("roll", roll).
		Int("peg", m.Peg).
		Stringer("from", from).
		Stringer("to", m.To)
	if captured {
		event = event.Stringer("captured_color", capturedColor).Int("captured_peg", capturedPeg)
	}
	event.Msg("moved")

	record.Peg = m.Peg
	record.From = from.String()
	record.To = m.To.String()
	record.Captured = captured
	e.metrics.AddTurn(record)

	e.Board = next
	return roll, nil
}
