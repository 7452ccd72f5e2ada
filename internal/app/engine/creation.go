package engine

import (
	"context"
	"fmt"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"
)

// CreateCharacter runs the character-creation prompt and joins the result
// to the party. A renderer failure propagates untouched so the driver can
// roll back a half-joined player. Name-source failures are absorbed; the
// default pool always suffices.
func (e Engine) CreateCharacter(ctx context.Context, g *game.Game, playerID string) (*party.Character, error) {
	if g.Party.Size() >= party.MaxMembers {
		return nil, ErrPartyFull
	}

	s := g.Session
	if e.Names != nil {
		if extra, err := e.Names.Names(ctx); err == nil {
			s.TopUpNames(extra)
		}
	}
	if len(s.NamePool) == 0 {
		// Force a refill, then put the drawn name back on offer.
		drawn := s.NextName(e.Rand.Shuffle)
		s.NamePool = append([]string{drawn}, s.NamePool...)
	}
	available := append([]string(nil), s.NamePool...)

	spec, err := e.Renderer.PromptCharacterCreation(ctx, available, playerID)
	if err != nil {
		return nil, err
	}
	if !party.IsPositiveTrait(spec.PosTrait) || !party.IsNegativeTrait(spec.NegTrait) {
		return nil, ErrInvalidTrait
	}
	name := spec.Name
	if name == "" {
		name = s.NextName(e.Rand.Shuffle)
	} else {
		s.ClaimName(name)
	}

	c := party.NewCharacter(name, spec.Age, spec.PosTrait, spec.NegTrait, spec.BirthMonth, spec.BirthDay, playerID, s.CurrentDate)
	if !g.Party.AddCharacter(c) {
		return nil, ErrPartyFull
	}
	g.Stats.RecordJoin(c.Name, s.TurnNumber)

	e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s joins the group.", c.Name), ports.StyleSuccess)
	e.Renderer.UpdateStats(ctx, c)
	e.Renderer.DisplayPartyStatus(ctx, g.Party.Members)
	return c, nil
}
