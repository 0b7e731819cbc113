package engine

import (
	"testing"

	"github.com/elh/aergere/experiments/metrics"
	"github.com/elh/aergere/game"
	"github.com/elh/aergere/player"
	"github.com/stretchr/testify/require"
)

func randomPlayers(seed uint64) [game.NumColors]player.Player {
	var players [game.NumColors]player.Player
	for i := range players {
		players[i] = player.NewRandomPlayer(seed + uint64(i))
	}
	return players
}

// scripted rolls the given values in order and then keeps rolling the last one.
func scripted(rolls ...int) Dice {
	i := 0
	return func() int {
		roll := rolls[i]
		if i < len(rolls)-1 {
			i++
		}
		return roll
	}
}

func TestNewLocalEngine(t *testing.T) {
	t.Run("panics without a player", func(t *testing.T) {
		players := randomPlayers(1)
		players[2] = nil
		require.Panics(t, func() {
			NewLocalEngine(players)
		}, "Should panic when a color has no player")
	})

	t.Run("starts on the initial board", func(t *testing.T) {
		e := NewLocalEngine(randomPlayers(1))
		initial, err := game.NewBoard()
		require.NoError(t, err)
		require.True(t, initial.Equal(e.Board))
	})
}

func TestRunWinner(t *testing.T) {
	b, err := game.NewBoard(game.WithColorPegs(game.Yellow, []game.Peg{
		game.TrackPeg(39), game.HomePeg(1), game.HomePeg(2), game.HomePeg(3),
	}))
	require.NoError(t, err)

	collector := metrics.NewCollector()
	e := NewLocalEngine(randomPlayers(1), WithBoard(b), WithDice(scripted(1)), WithCollector(collector))

	got, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, "yellow", got.Winner)
	require.Equal(t, 1, got.TotalTurns)
	require.Equal(t, 1, got.TotalMoves)
	require.Equal(t, game.HomePeg(0), e.Board.Peg(game.Yellow, 0))
}

func TestRunRerollsOnSix(t *testing.T) {
	collector := metrics.NewCollector()
	e := NewLocalEngine(randomPlayers(1),
		WithDice(scripted(6, 6, 2, 1)),
		WithTurnLimit(2),
		WithCollector(collector),
	)

	got, err := e.Run()
	require.NoError(t, err)
	require.Empty(t, got.Winner)

	turns := collector.Turns()
	require.Len(t, turns, 4, "Two sixes should give yellow two extra rolls")
	for i, roll := range []int{6, 6, 2} {
		require.Equal(t, int(game.Yellow), turns[i].Color)
		require.Equal(t, 1, turns[i].Step)
		require.Equal(t, roll, turns[i].Roll)
	}
	require.Equal(t, int(game.Green), turns[3].Color)
	require.Equal(t, -1, turns[3].Peg, "Green cannot enter on a 1")

	moved := turns[0].Peg
	require.Equal(t, game.TrackPeg(8), e.Board.Peg(game.Yellow, moved))
}

func TestRunTurnLimit(t *testing.T) {
	collector := metrics.NewCollector()
	e := NewLocalEngine(randomPlayers(1),
		WithDice(scripted(1)),
		WithTurnLimit(10),
		WithStartingColor(game.Red),
		WithCollector(collector),
	)

	got, err := e.Run()
	require.NoError(t, err)
	require.Empty(t, got.Winner)
	require.Equal(t, 10, got.TotalTurns)
	require.Zero(t, got.TotalMoves)
	require.Equal(t, int(game.Red), got.StartingColor)

	turns := collector.Turns()
	require.Equal(t, int(game.Red), turns[0].Color)
	require.Equal(t, int(game.Black), turns[1].Color)
	require.Equal(t, int(game.Yellow), turns[2].Color)
}

func TestRunIllegalChoice(t *testing.T) {
	cheat := player.PlayerFunc(func(_ *game.Board, _ game.Color, _ int, _ []game.Move) game.Move {
		return game.Move{Peg: 0, To: game.HomePeg(3)}
	})
	players := randomPlayers(1)
	players[game.Yellow] = cheat

	b, err := game.NewBoard(game.WithColorPegs(game.Yellow, []game.Peg{
		game.HomePeg(3), game.TrackPeg(5), game.OutPeg(), game.OutPeg(),
	}))
	require.NoError(t, err)

	e := NewLocalEngine(players, WithBoard(b), WithDice(scripted(2)))
	_, err = e.Run()
	require.ErrorIs(t, err, game.ErrInvalidMove)
}

func TestRunRandomGame(t *testing.T) {
	play := func() (metrics.GameMetric, *game.Board) {
		e := NewLocalEngine(randomPlayers(11), WithSeed(5), WithTurnLimit(2000))
		got, err := e.Run()
		require.NoError(t, err)
		return got, e.Board
	}

	first, firstBoard := play()
	second, secondBoard := play()

	require.Equal(t, first.Winner, second.Winner, "Seeded games should replay identically")
	require.Equal(t, first.TotalTurns, second.TotalTurns)
	require.True(t, firstBoard.Equal(secondBoard))

	if first.Winner != "" {
		winner, ok := firstBoard.Winner()
		require.True(t, ok)
		require.Equal(t, first.Winner, winner.String())
		for _, p := range firstBoard.ColorPegs(winner) {
			require.True(t, p.IsHome())
		}
	}
}
