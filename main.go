package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/elh/aergere/engine"
	"github.com/elh/aergere/experiments/metrics"
	"github.com/elh/aergere/game"
	"github.com/elh/aergere/meta"
	"github.com/elh/aergere/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	games int
	turns int
	seed  uint64
	out   string
}

func main() {
	games := flag.Int("games", meta.GAMES, "Number of games to play")
	turns := flag.Int("turns", meta.TURN_LIMIT, "Turn limit per game")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for dice and players")
	out := flag.String("out", "", "Directory for game and turn records, none if empty")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config{games: *games, turns: *turns, seed: *seed, out: *out}
	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run(cfg config) error {
	log.Info().Msgf("playing %d games with seed %d...", cfg.games, cfg.seed)

	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}
	wins := map[string]int{}

	for i := 0; i < cfg.games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, cfg.games)

		seed := cfg.seed + uint64(i)*game.NumColors
		var players [game.NumColors]player.Player
		for c := range players {
			players[c] = player.NewRandomPlayer(seed + uint64(c))
		}

		collector := metrics.NewCollector()
		e := engine.NewLocalEngine(players,
			engine.WithSeed(seed),
			engine.WithTurnLimit(cfg.turns),
			engine.WithStartingColor(game.Color(i%game.NumColors)),
			engine.WithCollector(collector),
		)
		gameMetric, err := e.Run()
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		fmt.Print(e.Board)

		wins[gameMetric.Winner]++
		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})
		for _, turn := range collector.Turns() {
			turnRecords = append(turnRecords, metrics.TurnRecord{Game: i + 1, TurnMetric: turn})
		}
	}

	for _, c := range game.Colors() {
		log.Info().Msgf("%v won %d of %d games", c, wins[c.String()], cfg.games)
	}

	if cfg.out == "" {
		return nil
	}
	w, err := metrics.NewWriter(cfg.out)
	if err != nil {
		return err
	}
	if err := w.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := w.WriteTurnRecords(turnRecords); err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", w.Dir())
	return nil
}
