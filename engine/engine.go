package engine

import "github.com/elh/aergere/experiments/metrics"

// Runner plays a game until there's a winner or the turn limit is reached.
type Runner interface {
	Run() (metrics.GameMetric, error)
}

// Dice returns a roll between game.MinRoll and game.MaxRoll.
type Dice func() int
