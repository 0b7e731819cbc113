package game

import "fmt"

// Move is a legal destination for one of a color's pegs.
type Move struct {
	Peg int
	To  Peg
}

func (m Move) String() string {
	return fmt.Sprintf("peg:%d->%v", m.Peg, m.To)
}

// ValidMoves returns every legal move for color with the given roll, ordered
// by peg index. Each peg has at most one move. An empty result means the color
// cannot move this turn.
func ValidMoves(b *Board, color Color, roll int) ([]Move, error) {
	if !color.Valid() {
		return nil, fmt.Errorf("color %d: %w", color, ErrInvalidColor)
	}
	if roll < MinRoll || roll > MaxRoll {
		return nil, fmt.Errorf("roll %d: %w", roll, ErrInvalidRoll)
	}

	moves := []Move{}
	for i, p := range b.pegs[color] {
		var (
			to Peg
			ok bool
		)
		switch p.Kind {
		case Out:
			to, ok = enterMove(b, color, roll)
		case InHome:
			to, ok = homeMove(b, color, p.Cell, roll)
		case OnTrack:
			to, ok = trackMove(b, color, p.Cell, roll)
		}
		if ok {
			moves = append(moves, Move{Peg: i, To: to})
		}
	}
	return moves, nil
}

func enterMove(b *Board, color Color, roll int) (Peg, bool) {
	if roll != EntryRoll {
		return Peg{}, false
	}
	start := StartPosition(color)
	if _, taken := b.TrackAt(start); taken {
		return Peg{}, false
	}
	return TrackPeg(start), true
}

// homeMove advances a peg already in the home row. Pegs cannot pass each
// other in the home row.
func homeMove(b *Board, color Color, cell, roll int) (Peg, bool) {
	target := cell + roll
	if target >= HomeSize || b.homeBlocked(color, cell+1, target) {
		return Peg{}, false
	}
	return HomePeg(target), true
}

func trackMove(b *Board, color Color, cell, roll int) (Peg, bool) {
	start := StartPosition(color)
	for i := 1; i <= roll; i++ {
		if (cell+i)%TrackSize != start {
			continue
		}
		// Reaching the start cell again means the peg has gone round; the
		// remaining steps count into the home row from cell 0.
		target := roll - i
		if target >= HomeSize || b.homeBlocked(color, 0, target) {
			return Peg{}, false
		}
		return HomePeg(target), true
	}

	target := (cell + roll) % TrackSize
	if occupant, taken := b.TrackAt(target); taken {
		if occupant == color {
			return Peg{}, false
		}
		if target == StartPosition(occupant) {
			return Peg{}, false
		}
	}
	return TrackPeg(target), true
}

// Play applies the move of peg for color and roll and returns the resulting
// board. Any other peg on the destination track cell is sent back out. The
// input board is not modified.
func Play(b *Board, color Color, roll, peg int) (*Board, error) {
	moves, err := ValidMoves(b, color, roll)
	if err != nil {
		return nil, err
	}
	to, ok := findMove(moves, peg)
	if !ok {
		return nil, &InvalidMoveError{Color: color, Peg: peg, Roll: roll}
	}

	next := b.pegs
	for c := range next {
		for i, p := range next[c] {
			if p.IsOnTrack() && p == to {
				next[c][i] = OutPeg()
			}
		}
	}
	next[color][peg] = to

	return FromPegs(next)
}

func findMove(moves []Move, peg int) (Peg, bool) {
	for _, m := range moves {
		if m.Peg == peg {
			return m.To, true
		}
	}
	return Peg{}, false
}

// Captured reports which peg, if any, would be sent out by playing m.
func Captured(b *Board, m Move) (Color, int, bool) {
	if !m.To.IsOnTrack() {
		return noColor, -1, false
	}
	occupant, taken := b.TrackAt(m.To.Cell)
	if !taken {
		return noColor, -1, false
	}
	for i, p := range b.pegs[occupant] {
		if p == m.To {
			return occupant, i, true
		}
	}
	return noColor, -1, false
}
