package engine

import (
	"context"
	"fmt"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"
)

// Grief scales with closeness: losing family hits far harder than losing
// someone the group was cold toward. Keyed by the survivor's relationship
// level to the deceased.
var deathMoraleShift = map[party.RelationLevel]int{
	party.RelationCold:          +1,
	party.RelationStrangers:     0,
	party.RelationAcquaintances: -1,
	party.RelationFriends:       -2,
	party.RelationFamily:        -3,
}

// handleCharacterDeath resolves a death or forced departure: grief for the
// survivors, weapon inheritance, and removal from the party. Departures are
// deaths as far as inheritance is concerned.
func (e Engine) handleCharacterDeath(ctx context.Context, g *game.Game, c *party.Character, obituary string) error {
	e.Renderer.DisplayEvent(ctx, obituary, ports.StyleDanger)
	g.Stats.RecordDeparture(c.Name, g.Session.TurnNumber)

	for _, other := range g.Party.Members {
		if other == c {
			continue
		}
		other.Morale += deathMoraleShift[other.RelationWith(c.ID)]
		other.CapAttributes()
	}

	if err := e.bequeathWeapon(ctx, g, c); err != nil {
		return err
	}

	g.Party.RemoveCharacter(c)
	e.Renderer.DisplayPartyStatus(ctx, g.Party.Members)
	return nil
}

// bequeathWeapon offers the dying member's weapon to the viable survivor
// holding the weakest weapon strictly weaker than it. When nobody qualifies
// it drops into the shared inventory instead, provided a viable member
// remains to carry it home.
func (e Engine) bequeathWeapon(ctx context.Context, g *game.Game, c *party.Character) error {
	if c.WeaponIndex == party.FistsIndex {
		return nil
	}
	weapon := c.Weapon()

	var heir *party.Character
	anyViable := false
	for _, other := range g.Party.Members {
		if other == c || !other.IsViable() {
			continue
		}
		anyViable = true
		if other.Weapon().Damage >= weapon.Damage {
			continue
		}
		if heir == nil || other.Weapon().Damage < heir.Weapon().Damage {
			heir = other
		}
	}

	if heir != nil {
		accept, err := e.Renderer.PromptConfirm(ctx, fmt.Sprintf("Should %s take %s's %s?", heir.Name, c.Name, weapon.Name))
		if err != nil {
			return err
		}
		if accept {
			if heir.WeaponIndex != party.FistsIndex {
				g.Party.Inventory.Add(heir.Weapon().Name, float64(heir.WeaponDurability))
			}
			heir.WeaponIndex = c.WeaponIndex
			heir.WeaponDurability = c.WeaponDurability
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s takes up the %s.", heir.Name, weapon.Name), ports.StyleInfo)
			return nil
		}
	}

	if anyViable {
		g.Party.Inventory.Add(weapon.Name, float64(c.WeaponDurability))
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("The %s is stowed with the group's supplies.", weapon.Name), ports.StyleNormal)
	}
	return nil
}
