// Package game aggregates one running game: the session, the party and the
// stats ledger. The aggregate is what the engine mutates and what the
// persistence document round-trips.
package game

import (
	"time"

	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
	"holdout/internal/domain/stats"
)

type Game struct {
	ID      string
	Session *session.Session
	Party   *party.Party
	Stats   *stats.Stats
	Version int64
}

func New(id string, start time.Time) *Game {
	return &Game{
		ID:      id,
		Session: session.New(id, start),
		Party:   party.NewParty(),
		Stats:   stats.New(),
	}
}
