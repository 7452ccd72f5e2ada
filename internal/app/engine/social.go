package engine

import (
	"context"
	"fmt"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"
)

// Interact spends the actor's per-turn interact flag on a conversation with
// another member. The relationship shifts symmetrically; trait caps are
// re-applied afterwards. Reports false when the flag is already spent or
// the actor targets themselves.
func (e Engine) Interact(ctx context.Context, g *game.Game, actor, target *party.Character) bool {
	if actor.Actions.Interact || actor == target {
		return false
	}
	actor.Actions.Interact = true

	roll := e.Rand.Float64()
	switch {
	case roll < 0.6:
		actor.ShiftRelation(target.ID, 1)
		target.ShiftRelation(actor.ID, 1)
		actor.Morale++
		target.Morale++
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s and %s swap stories from before. It helps.", actor.Name, target.Name), ports.StyleSuccess)
	case roll < 0.8:
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s makes small talk with %s. It passes the time.", actor.Name, target.Name), ports.StyleNormal)
	default:
		actor.ShiftRelation(target.ID, -1)
		target.ShiftRelation(actor.ID, -1)
		actor.Morale--
		target.Morale--
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s says the wrong thing and %s snaps back.", actor.Name, target.Name), ports.StyleWarning)
	}

	actor.CapAttributes()
	target.CapAttributes()
	return true
}
