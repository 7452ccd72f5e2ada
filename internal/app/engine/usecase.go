// Package engine is the rule engine: it advances a game one turn at a time,
// mutating the session, party and stats, and suspending on renderer calls
// wherever a human decision is needed.
package engine

import (
	"context"
	"errors"
	"time"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/session"
)

var (
	ErrGameEnded    = errors.New("game already ended")
	ErrNotStarted   = errors.New("game not started")
	ErrNotReady     = errors.New("players not ready")
	ErrNoSurvivors  = errors.New("no survivors in party")
	ErrPartyFull    = errors.New("party is full")
	ErrInvalidTrait = errors.New("invalid trait selection")
)

const (
	ResultOK       = "OK"
	ResultGameOver = "GAME_OVER"
)

type TurnResult struct {
	Code       string `json:"code"`
	TurnNumber int    `json:"turn_number"`
	PartySize  int    `json:"party_size"`
}

// Engine resolves turns against an injected renderer and RNG. It holds no
// game state itself; the aggregate is passed into every call, so concurrent
// games are independent and a driver may serialize access per game.
type Engine struct {
	Renderer ports.Renderer
	Rand     ports.Rand
	Names    ports.NameSource
	Metrics  ports.TurnMetrics
	Now      func() time.Time
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Engine) chance(p float64) bool {
	return e.Rand.Float64() < p
}

// NewGame creates a fresh game in setup state dated from the engine clock.
func (e Engine) NewGame(id string) *game.Game {
	return game.New(id, e.now())
}

// StartGame moves a set-up game into play. With more than one player the
// ready gate must have passed first.
func (e Engine) StartGame(ctx context.Context, g *game.Game) error {
	if g.Session.Status != session.StatusSetup {
		return ErrGameEnded
	}
	if g.Party.Size() == 0 {
		return ErrNoSurvivors
	}
	if g.Session.IsMultiplayer() && !g.Session.AreAllPlayersReady() {
		return ErrNotReady
	}
	g.Session.Status = session.StatusPlaying
	e.Renderer.DisplayEvent(ctx, "The group settles in. Survival begins.", ports.StyleInfo)
	return nil
}

// PlayTurn advances the game by one turn. A combat or encounter left pending
// by a failed renderer call resumes here before anything else; the rest of
// that turn is just the time advance it never reached.
func (e Engine) PlayTurn(ctx context.Context, g *game.Game) (TurnResult, error) {
	s := g.Session
	switch s.Status {
	case session.StatusEnded:
		return TurnResult{}, ErrGameEnded
	case session.StatusSetup:
		return TurnResult{}, ErrNotStarted
	}

	if s.InCombat {
		if err := e.runCombat(ctx, g); err != nil {
			e.recordFailure()
			return TurnResult{}, err
		}
		return e.finishTurn(ctx, g)
	}
	if s.PendingEncounter != session.EncounterNone {
		if err := e.resolvePendingEncounter(ctx, g); err != nil {
			e.recordFailure()
			return TurnResult{}, err
		}
		return e.finishTurn(ctx, g)
	}

	if s.TimeOfDay == session.PhaseDay {
		e.checkSeasonalEvents(ctx, g)
	}

	for _, c := range g.Party.Members {
		c.ResetActions()
	}

	// Snapshot ids: a member removed by an earlier member's side effects is
	// skipped, not retried.
	ids := make([]int, 0, g.Party.Size())
	for _, c := range g.Party.Members {
		ids = append(ids, c.ID)
	}
	for _, id := range ids {
		c := g.Party.MemberByID(id)
		if c == nil {
			continue
		}
		if err := e.processMember(ctx, g, c); err != nil {
			e.recordFailure()
			return TurnResult{}, err
		}
	}

	if g.Party.Size() == 0 {
		return e.endGame(ctx, g)
	}

	if err := e.resolveRandomEvent(ctx, g); err != nil {
		e.recordFailure()
		return TurnResult{}, err
	}

	return e.finishTurn(ctx, g)
}

// finishTurn closes out a turn after all events resolved: a wiped party ends
// the game, otherwise time advances.
func (e Engine) finishTurn(ctx context.Context, g *game.Game) (TurnResult, error) {
	if g.Party.Size() == 0 {
		return e.endGame(ctx, g)
	}
	g.Session.AdvanceTime()
	res := TurnResult{Code: ResultOK, TurnNumber: g.Session.TurnNumber, PartySize: g.Party.Size()}
	if e.Metrics != nil {
		e.Metrics.RecordSuccess(res.Code)
	}
	return res, nil
}

// endGame is the normal terminal transition for a full party wipe; it is
// never modeled as an error.
func (e Engine) endGame(ctx context.Context, g *game.Game) (TurnResult, error) {
	s := g.Session
	s.Status = session.StatusEnded
	s.InCombat = false
	s.Combat = nil
	s.PendingEncounter = session.EncounterNone
	g.Stats.FinalizeAt(s.TurnNumber)
	e.Renderer.DisplayEvent(ctx, "No one is left. The camp falls silent.", ports.StyleDanger)
	e.Renderer.HandleGameOver(ctx, g.Stats)
	res := TurnResult{Code: ResultGameOver, TurnNumber: s.TurnNumber}
	if e.Metrics != nil {
		e.Metrics.RecordSuccess(res.Code)
	}
	return res, nil
}

func (e Engine) recordFailure() {
	if e.Metrics != nil {
		e.Metrics.RecordFailure()
	}
}
