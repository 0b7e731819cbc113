package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(2)
	c.AddTurn(TurnMetric{Step: 1, Color: 2, Roll: 3, Peg: -1})
	c.AddTurn(TurnMetric{Step: 1, Color: 2, Roll: 6, Options: 4, Peg: 0, From: "-", To: "20"})
	c.AddTurn(TurnMetric{Step: 2, Color: 3, Roll: 6, Options: 1, Peg: 1, From: "30", To: "36", Captured: true})

	got := c.Complete("black")

	require.Equal(t, 2, got.StartingColor)
	require.Equal(t, "black", got.Winner)
	require.Equal(t, 3, got.TotalTurns)
	require.Equal(t, 2, got.TotalMoves, "Turns without a move should not count as moves")
	require.Equal(t, 1, got.Captures)
	require.False(t, got.EndTime.Before(got.StartTime))
	require.Len(t, c.Turns(), 3)

	t.Run("restart clears counts", func(t *testing.T) {
		c.Start(0)
		got := c.Complete("")
		require.Zero(t, got.TotalTurns)
		require.Empty(t, c.Turns())
	})
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(1)
	c.AddTurn(TurnMetric{Peg: 0, Captured: true})

	require.Nil(t, c.Turns())
	require.Equal(t, GameMetric{Winner: "red"}, c.Complete("red"))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = w.WriteGameRecords([]GameRecord{{
		ID: 1,
		GameMetric: GameMetric{
			StartingColor: 0,
			Winner:        "green",
			StartTime:     start,
			EndTime:       start.Add(time.Second),
			Duration:      time.Second,
			TotalTurns:    120,
			TotalMoves:    80,
			Captures:      7,
		},
	}})
	require.NoError(t, err)

	err = w.WriteTurnRecords([]TurnRecord{
		{Game: 1, TurnMetric: TurnMetric{Step: 1, Color: 0, Roll: 6, Options: 4, Peg: 2, From: "-", To: "0"}},
		{Game: 1, TurnMetric: TurnMetric{Step: 2, Color: 1, Roll: 2, Peg: -1}},
	})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Equal(t, [][]string{
		{"id", "starting_color", "winner", "start_time", "end_time", "duration", "turns", "moves", "captures"},
		{"1", "0", "green", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "120", "80", "7"},
	}, games)

	turns := readCSV(t, filepath.Join(w.Dir(), "turn_records.csv"))
	require.Equal(t, [][]string{
		{"game", "step", "color", "roll", "options", "peg", "from", "to", "captured"},
		{"1", "1", "0", "6", "4", "2", "-", "0", "false"},
		{"1", "2", "1", "2", "0", "-1", "", "", "false"},
	}, turns)
}
