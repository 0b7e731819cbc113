package game

import "strconv"

// PegKind is the variant of a Peg.
type PegKind int

const (
	Out PegKind = iota
	OnTrack
	InHome
)

// Peg is the position of a single peg. The zero value is a peg that has not
// entered the board yet. Cell is a track index for OnTrack and a home row
// index for InHome, and is always 0 for Out.
type Peg struct {
	Kind PegKind
	Cell int
}

func OutPeg() Peg {
	return Peg{}
}

func TrackPeg(cell int) Peg {
	return Peg{Kind: OnTrack, Cell: cell}
}

func HomePeg(cell int) Peg {
	return Peg{Kind: InHome, Cell: cell}
}

func (p Peg) IsOut() bool     { return p.Kind == Out }
func (p Peg) IsOnTrack() bool { return p.Kind == OnTrack }
func (p Peg) IsHome() bool    { return p.Kind == InHome }

// valid reports whether the peg's cell is in range for its kind.
func (p Peg) valid() bool {
	switch p.Kind {
	case Out:
		return p.Cell == 0
	case OnTrack:
		return p.Cell >= 0 && p.Cell < TrackSize
	case InHome:
		return p.Cell >= 0 && p.Cell < HomeSize
	default:
		return false
	}
}

func (p Peg) String() string {
	switch p.Kind {
	case Out:
		return "-"
	case OnTrack:
		return strconv.Itoa(p.Cell)
	case InHome:
		return "H" + strconv.Itoa(p.Cell)
	default:
		return "?"
	}
}
