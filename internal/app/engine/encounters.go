package engine

import (
	"context"
	"fmt"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
)

// Interactive encounters set PendingEncounter before their first prompt and
// clear it on completion. A renderer failure mid-encounter leaves the tag
// set, blocking turn advance until the encounter is resolved on a retry.

func (e Engine) resolvePendingEncounter(ctx context.Context, g *game.Game) error {
	switch g.Session.PendingEncounter {
	case session.EncounterFriend:
		return e.friendEncounter(ctx, g)
	case session.EncounterMerchant:
		return e.merchantEncounter(ctx, g)
	case session.EncounterPerson:
		return e.personInNeedEncounter(ctx, g)
	case session.EncounterHostile:
		return e.hostileSurvivorEncounter(ctx, g)
	}
	g.Session.PendingEncounter = session.EncounterNone
	return nil
}

// friendEncounter offers a stranger as a new NPC member. Single-player only;
// the event table swaps it out in multiplayer.
func (e Engine) friendEncounter(ctx context.Context, g *game.Game) error {
	s := g.Session
	s.PendingEncounter = session.EncounterFriend
	e.Renderer.DisplayEvent(ctx, "A lone stranger approaches the camp, hands raised.", ports.StyleInfo)

	join, err := e.Renderer.PromptConfirm(ctx, "Invite the stranger to join the group?")
	if err != nil {
		return err
	}
	if !join {
		e.Renderer.DisplayEvent(ctx, "The stranger nods and disappears back into the ruins.", ports.StyleNormal)
		s.PendingEncounter = session.EncounterNone
		return nil
	}

	if _, err := e.CreateCharacter(ctx, g, ""); err != nil {
		if err == ErrPartyFull {
			e.Renderer.DisplayEvent(ctx, "There's no room at the fire. The stranger moves on.", ports.StyleWarning)
			s.PendingEncounter = session.EncounterNone
			return nil
		}
		return err
	}
	s.PendingEncounter = session.EncounterNone
	return nil
}

// merchantEncounter trades one of the party's items for the merchant's
// offer. With an empty inventory the merchant has no business here.
func (e Engine) merchantEncounter(ctx context.Context, g *game.Game) error {
	s := g.Session
	s.PendingEncounter = session.EncounterMerchant

	items := g.Party.Inventory.Items()
	if len(items) == 0 {
		e.Renderer.DisplayEvent(ctx, "A trader looks over the empty camp, shrugs, and keeps walking.", ports.StyleNormal)
		g.Stats.RecordEncounter("merchant_passed")
		s.PendingEncounter = session.EncounterNone
		return nil
	}

	offerName := e.merchantOffer(g)
	price := items[e.Rand.Intn(len(items))]
	e.Renderer.DisplayEvent(ctx, "A trader with a heavy pack wanders into camp.", ports.StyleInfo)

	deal, err := e.Renderer.PromptConfirm(ctx, fmt.Sprintf("Trade your %s for %s?", price.Name, offerName))
	if err != nil {
		return err
	}
	if deal {
		g.Party.Inventory.Remove(price.Name)
		e.addCatalogItem(g, offerName)
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("Deal struck: %s for %s.", price.Name, offerName), ports.StyleSuccess)
		g.Stats.RecordEncounter("merchant_traded")
	} else {
		e.Renderer.DisplayEvent(ctx, "The trader packs up without hard feelings.", ports.StyleNormal)
		g.Stats.RecordEncounter("merchant_declined")
	}
	s.PendingEncounter = session.EncounterNone
	return nil
}

// merchantOffer picks what the trader puts on the table without adding it
// to the inventory yet.
func (e Engine) merchantOffer(g *game.Game) string {
	roll := e.Rand.Float64()
	switch {
	case roll < 0.4:
		return party.Foods[e.Rand.Intn(len(party.Foods))].Name
	case roll < 0.7:
		return party.Medicals[e.Rand.Intn(len(party.Medicals))].Name
	default:
		return party.Weapons[1+e.Rand.Intn(len(party.Weapons)-1)].Name
	}
}

func (e Engine) addCatalogItem(g *game.Game, name string) {
	if f, ok := party.FoodByName(name); ok {
		g.Party.Inventory.AddFood(f)
	} else if m, ok := party.MedicalByName(name); ok {
		g.Party.Inventory.AddMedical(m)
	} else if w, _, ok := party.WeaponByName(name); ok {
		g.Party.Inventory.AddWeapon(w)
	}
}

// personInNeedEncounter asks the party to share food. Generosity lifts
// everyone's spirits.
func (e Engine) personInNeedEncounter(ctx context.Context, g *game.Game) error {
	s := g.Session
	s.PendingEncounter = session.EncounterPerson
	e.Renderer.DisplayEvent(ctx, "A gaunt survivor begs for anything to eat.", ports.StyleWarning)

	help, err := e.Renderer.PromptConfirm(ctx, "Share some of your food?")
	if err != nil {
		return err
	}
	if help {
		food := g.Party.Inventory.ByCategory().Food
		if len(food) == 0 {
			e.Renderer.DisplayEvent(ctx, "There's nothing to spare. The survivor stumbles on.", ports.StyleWarning)
			g.Stats.RecordEncounter("person_no_food")
		} else {
			given := food[e.Rand.Intn(len(food))]
			g.Party.Inventory.Remove(given.Name)
			for _, c := range g.Party.Members {
				c.Morale++
				c.CapAttributes()
			}
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("You hand over %s. Doing the right thing feels good.", given.Name), ports.StyleSuccess)
			g.Stats.RecordEncounter("person_helped")
		}
	} else {
		e.Renderer.DisplayEvent(ctx, "You look away until the survivor gives up.", ports.StyleNormal)
		g.Stats.RecordEncounter("person_refused")
	}
	s.PendingEncounter = session.EncounterNone
	return nil
}

// hostileSurvivorEncounter forces a fight-or-flee choice. Fleeing risks
// dropping an item in the scramble.
func (e Engine) hostileSurvivorEncounter(ctx context.Context, g *game.Game) error {
	s := g.Session
	s.PendingEncounter = session.EncounterHostile
	e.Renderer.DisplayEvent(ctx, "Armed survivors block the path, eyeing your supplies.", ports.StyleDanger)

	choice, err := e.Renderer.PromptChoice(ctx, "They look serious. What do you do?", []ports.ChoiceOption{
		{ID: "fight", Label: "Stand and fight"},
		{ID: "flee", Label: "Run for it"},
	})
	if err != nil {
		return err
	}
	s.PendingEncounter = session.EncounterNone

	if choice == "fight" {
		g.Stats.RecordEncounter("hostile_fought")
		return e.startCombat(ctx, g, session.CombatSurvivor)
	}

	g.Stats.RecordEncounter("hostile_fled")
	if e.chance(0.5) {
		items := g.Party.Inventory.Items()
		if len(items) > 0 {
			dropped := items[e.Rand.Intn(len(items))]
			g.Party.Inventory.Remove(dropped.Name)
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("You get away, but %s is lost in the scramble.", dropped.Name), ports.StyleWarning)
			return nil
		}
	}
	e.Renderer.DisplayEvent(ctx, "You slip away through the ruins, hearts pounding.", ports.StyleNormal)
	return nil
}
