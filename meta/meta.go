// meta/meta.go
package meta

// TURN_LIMIT is the number of turns after which a game is stopped without a winner.
const TURN_LIMIT = 500

// GAMES is the default number of games played by one run.
const GAMES = 1
