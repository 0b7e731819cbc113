package player

import (
	"github.com/elh/aergere/game"

	"golang.org/x/exp/rand"
)

// Player picks one of the legal moves for a turn. moves is never empty.
type Player interface {
	ChooseMove(b *game.Board, color game.Color, roll int, moves []game.Move) game.Move
}

// RandomPlayer chooses uniformly among the legal moves.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) ChooseMove(_ *game.Board, _ game.Color, _ int, moves []game.Move) game.Move {
	return moves[p.rng.Intn(len(moves))]
}

// PlayerFunc adapts a plain function to the Player interface.
type PlayerFunc func(b *game.Board, color game.Color, roll int, moves []game.Move) game.Move

func (f PlayerFunc) ChooseMove(b *game.Board, color game.Color, roll int, moves []game.Move) game.Move {
	return f(b, color, roll, moves)
}
