package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// noColor marks an empty track cell.
const noColor Color = -1

// Board is an immutable snapshot of every peg on the board. Track and home
// occupancy are derived from the pegs on construction and never set directly.
type Board struct {
	pegs  [NumColors][PegsPerColor]Peg
	track [TrackSize]Color
	homes [NumColors][HomeSize]bool
}

type boardConfig struct {
	pegs     [][]Peg
	hasPegs  bool
	perColor map[Color][]Peg
	err      error
}

type BoardOption func(cfg *boardConfig)

// WithPegs assigns the pegs of all colors at once. It cannot be combined with
// WithColorPegs.
func WithPegs(pegs [][]Peg) BoardOption {
	return func(cfg *boardConfig) {
		cfg.pegs = pegs
		cfg.hasPegs = true
	}
}

// WithColorPegs assigns the pegs of a single color. Colors without an
// assignment start with all pegs out.
func WithColorPegs(color Color, pegs []Peg) BoardOption {
	return func(cfg *boardConfig) {
		if cfg.err != nil {
			return
		}
		if !color.Valid() {
			cfg.err = newValidationError(int(color), -1, "is not a valid color")
			return
		}
		if _, ok := cfg.perColor[color]; ok {
			cfg.err = newValidationError(int(color), -1, "is assigned more than once")
			return
		}
		cfg.perColor[color] = pegs
	}
}

// NewBoard builds and validates a board. Without options every peg is out.
func NewBoard(options ...BoardOption) (*Board, error) {
	cfg := &boardConfig{perColor: map[Color][]Peg{}}
	for _, option := range options {
		option(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.hasPegs && len(cfg.perColor) > 0 {
		return nil, &ValidationError{Color: -1, Peg: -1, Rule: "pegs given both in full and per color", Err: ErrMixedPegOptions}
	}

	pegs := cfg.pegs
	if !cfg.hasPegs {
		pegs = make([][]Peg, NumColors)
		for _, c := range Colors() {
			if colorPegs, ok := cfg.perColor[c]; ok {
				pegs[c] = colorPegs
			} else {
				pegs[c] = make([]Peg, PegsPerColor)
			}
		}
	}

	if len(pegs) != NumColors {
		return nil, newValidationError(-1, -1, fmt.Sprintf("must have %d colors, got %d", NumColors, len(pegs)))
	}
	var assigned [NumColors][PegsPerColor]Peg
	for c, colorPegs := range pegs {
		if len(colorPegs) != PegsPerColor {
			return nil, newValidationError(c, -1, fmt.Sprintf("must have %d pegs, got %d", PegsPerColor, len(colorPegs)))
		}
		copy(assigned[c][:], colorPegs)
	}
	return FromPegs(assigned)
}

// FromPegs builds and validates a board from a full peg assignment.
func FromPegs(pegs [NumColors][PegsPerColor]Peg) (*Board, error) {
	b := &Board{pegs: pegs}
	for i := range b.track {
		b.track[i] = noColor
	}

	for c, colorPegs := range b.pegs {
		for i, p := range colorPegs {
			if !p.valid() {
				return nil, newValidationError(c, i, fmt.Sprintf("contains invalid value: %v", p))
			}
			switch p.Kind {
			case OnTrack:
				if b.track[p.Cell] != noColor {
					return nil, newValidationError(c, i, fmt.Sprintf("shares track cell %d with color:%d", p.Cell, b.track[p.Cell]))
				}
				b.track[p.Cell] = Color(c)
			case InHome:
				if b.homes[c][p.Cell] {
					return nil, newValidationError(c, i, fmt.Sprintf("shares home cell %d with another peg", p.Cell))
				}
				b.homes[c][p.Cell] = true
			}
		}
	}
	return b, nil
}

// Pegs returns a copy of every color's pegs.
func (b *Board) Pegs() [NumColors][PegsPerColor]Peg {
	return b.pegs
}

func (b *Board) ColorPegs(c Color) [PegsPerColor]Peg {
	return b.pegs[c]
}

func (b *Board) Peg(c Color, peg int) Peg {
	return b.pegs[c][peg]
}

// TrackAt returns the color occupying a track cell, if any.
func (b *Board) TrackAt(cell int) (Color, bool) {
	c := b.track[cell]
	return c, c != noColor
}

// HomeAt reports whether a peg of color c sits on the given home cell.
func (b *Board) HomeAt(c Color, cell int) bool {
	return b.homes[c][cell]
}

// homeBlocked reports whether any home cell of c in [from, to] is taken.
func (b *Board) homeBlocked(c Color, from, to int) bool {
	for i := from; i <= to; i++ {
		if b.homes[c][i] {
			return true
		}
	}
	return false
}

// Winner returns the first color with all of its pegs in the home row.
func (b *Board) Winner() (Color, bool) {
	for _, c := range Colors() {
		home := 0
		for _, p := range b.pegs[c] {
			if p.IsHome() {
				home++
			}
		}
		if home == PegsPerColor {
			return c, true
		}
	}
	return noColor, false
}

// HasWinner is Board.Winner for callers holding a board value.
func HasWinner(b *Board) (Color, bool) {
	return b.Winner()
}

func (b *Board) Equal(other *Board) bool {
	return other != nil && b.pegs == other.pegs
}

func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()
	for _, colorPegs := range b.pegs {
		for _, p := range colorPegs {
			binary.Write(hasher, binary.LittleEndian, int8(p.Kind))
			binary.Write(hasher, binary.LittleEndian, int8(p.Cell))
		}
	}
	return hasher.Sum64()
}

// String prints one line per color, e.g. "yellow\t[12 - H0 H3]".
func (b *Board) String() string {
	var sb strings.Builder
	for _, c := range Colors() {
		fmt.Fprintf(&sb, "%s\t%v\n", c, b.pegs[c])
	}
	return sb.String()
}
