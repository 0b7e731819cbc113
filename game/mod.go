package game

const (
	NumColors    = 4
	PegsPerColor = 4
	TrackSize    = 40
	HomeSize     = 4

	// Distance between the start cells of two neighbouring colors.
	startSpacing = TrackSize / NumColors

	MinRoll = 1
	MaxRoll = 6
	// Rolling this lets a peg enter the track and earns another roll.
	EntryRoll = 6
)

// Color identifies one of the four players.
type Color int

const (
	Yellow Color = iota
	Green
	Red
	Black
)

var colorNames = [NumColors]string{"yellow", "green", "red", "black"}

// Colors lists every color in turn order.
func Colors() [NumColors]Color {
	return [NumColors]Color{Yellow, Green, Red, Black}
}

func (c Color) Valid() bool {
	return c >= 0 && c < NumColors
}

// Next returns the color whose turn follows c.
func (c Color) Next() Color {
	return (c + 1) % NumColors
}

func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}

// StartPosition returns the track cell where pegs of color c enter the board.
func StartPosition(c Color) int {
	return int(c) * startSpacing
}
