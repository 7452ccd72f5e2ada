package engine

import (
	"context"
	"fmt"
	"time"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
)

// checkSeasonalEvents fires calendar events at most once per calendar year.
func (e Engine) checkSeasonalEvents(ctx context.Context, g *game.Game) {
	s := g.Session
	d := s.CurrentDate
	year := d.Year()
	switch {
	case d.Month() == time.October && d.Day() == 31:
		if s.MarkSeasonal("halloween", year) {
			e.Renderer.DisplayEvent(ctx, "Carved pumpkins appear around camp. Someone insists on telling ghost stories.", ports.StyleInfo)
		}
	case d.Month() == time.December && d.Day() == 25:
		if s.MarkSeasonal("christmas", year) {
			e.Renderer.DisplayEvent(ctx, "A makeshift tree, small gifts, a rare evening of warmth. Merry Christmas.", ports.StyleSuccess)
			for _, c := range g.Party.Members {
				c.Morale += 2
				c.CapAttributes()
			}
		}
	case d.Month() == time.January && d.Day() == 1:
		if s.MarkSeasonal("new_year", year) {
			e.Renderer.DisplayEvent(ctx, "A new year. The group raises dented mugs to making it this far.", ports.StyleInfo)
		}
	}
}

// processMember runs one member's full per-turn pipeline: hunger, trait
// rolls, age effects, birthday, sickness, and the morale-zero departure.
// All of it resolves, including death cascades, before the next member acts.
func (e Engine) processMember(ctx context.Context, g *game.Game, c *party.Character) error {
	s := g.Session

	if !c.CheckHunger() {
		if c.HasTrait(party.TraitSatiated) {
			c.Hunger = 0
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s runs on empty but somehow keeps going.", c.Name), ports.StyleWarning)
			if e.chance(0.5) {
				c.Morale--
			}
			if e.chance(0.5) {
				c.Health--
			}
			if c.Health <= 0 {
				return e.handleCharacterDeath(ctx, g, c, fmt.Sprintf("%s finally succumbs to starvation.", c.Name))
			}
		} else {
			return e.handleCharacterDeath(ctx, g, c, fmt.Sprintf("%s has starved to death.", c.Name))
		}
	} else {
		if err := e.applyTraitRolls(ctx, g, c); err != nil {
			return err
		}
		if c.Health <= 0 || g.Party.MemberByID(c.ID) == nil {
			return nil
		}
		if err := e.applyAgeEffects(ctx, g, c); err != nil {
			return err
		}
		if g.Party.MemberByID(c.ID) == nil {
			return nil
		}
		if s.TimeOfDay == session.PhaseDay && c.IsBirthdayOn(s.CurrentDate) {
			e.celebrateBirthday(ctx, g, c)
		}
	}
	c.CapAttributes()

	if err := e.applySickness(ctx, g, c); err != nil {
		return err
	}
	if g.Party.MemberByID(c.ID) == nil {
		return nil
	}

	if c.Morale <= 0 && g.Party.Size() > 1 {
		return e.handleDesertion(ctx, g, c)
	}
	return nil
}

func (e Engine) applyTraitRolls(ctx context.Context, g *game.Game, c *party.Character) error {
	switch c.PosTrait {
	case party.TraitResilient:
		if e.chance(0.1) {
			c.Health++
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s shrugs off the aches and feels stronger.", c.Name), ports.StyleSuccess)
		}
	case party.TraitScavenger:
		if e.chance(0.1) {
			food := party.Foods[e.Rand.Intn(len(party.Foods))]
			g.Party.Inventory.AddFood(food)
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s turns up %s while poking through the rubble.", c.Name, food.Name), ports.StyleSuccess)
		}
	case party.TraitOptimistic:
		if e.chance(0.1) {
			c.Morale++
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s cracks a joke. It lands.", c.Name), ports.StyleInfo)
		}
		if c.Morale < 2 {
			c.Morale = 2
		}
	}

	switch c.NegTrait {
	case party.TraitHungry:
		if g.Session.TurnNumber%2 == 0 {
			c.Hunger -= party.HungerStep
			if c.Hunger < 0 {
				return e.handleCharacterDeath(ctx, g, c, fmt.Sprintf("%s has starved to death.", c.Name))
			}
		}
	case party.TraitHypochondriac:
		if e.chance(0.1) {
			meds := g.Party.Inventory.ByCategory().Medical
			if len(meds) > 0 {
				wasted := meds[e.Rand.Intn(len(meds))]
				g.Party.Inventory.Remove(wasted.Name)
				e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s is convinced they're dying and burns through %s.", c.Name, wasted.Name), ports.StyleWarning)
			}
		}
	case party.TraitDepressed:
		if e.chance(0.1) {
			c.Morale--
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s withdraws and stares at nothing for a long while.", c.Name), ports.StyleWarning)
		}
		if c.Morale > 7 {
			c.Morale = 7
		}
	case party.TraitClumsy:
		if e.chance(0.1) {
			c.Health--
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s trips over their own feet and takes a nasty knock.", c.Name), ports.StyleWarning)
			if c.Health <= 0 {
				return e.handleCharacterDeath(ctx, g, c, fmt.Sprintf("A stupid accident proves fatal for %s.", c.Name))
			}
		}
	}
	return nil
}

func (e Engine) applyAgeEffects(ctx context.Context, g *game.Game, c *party.Character) error {
	cat := c.CategoryAt(g.Session.CurrentDate)
	if cat != c.AgeCategory {
		c.AgeCategory = cat
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s doesn't feel quite the same age anymore.", c.Name), ports.StyleInfo)
	}
	switch c.AgeCategory {
	case party.AgeTeen:
		if e.chance(0.15) {
			c.Morale++
		}
	case party.AgeElder:
		if e.chance(0.1) {
			c.Health--
			if c.Health <= 0 {
				return e.handleCharacterDeath(ctx, g, c, fmt.Sprintf("%s's old body gives out.", c.Name))
			}
		}
	}
	return nil
}

// celebrateBirthday fires on day turns only. The party gifts a food item
// when one is spare, which lifts the mood a little further.
func (e Engine) celebrateBirthday(ctx context.Context, g *game.Game, c *party.Character) {
	age := c.AgeAt(g.Session.CurrentDate)
	e.Renderer.DisplayEvent(ctx, fmt.Sprintf("It's %s's birthday! %d years old today.", c.Name, age), ports.StyleSuccess)
	c.Morale += 2
	food := g.Party.Inventory.ByCategory().Food
	if len(food) > 0 && g.Party.Size() > 1 {
		gift := food[e.Rand.Intn(len(food))]
		g.Party.Inventory.Remove(gift.Name)
		c.Morale++
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("The others surprise %s with %s.", c.Name, gift.Name), ports.StyleSuccess)
	}
	c.CapAttributes()
}

func (e Engine) applySickness(ctx context.Context, g *game.Game, c *party.Character) error {
	if !c.Sick && !c.Infected {
		return nil
	}
	if e.chance(0.1) {
		c.Morale--
	}
	if e.chance(0.1) {
		c.Health--
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s's condition worsens.", c.Name), ports.StyleWarning)
	}
	if c.Infected {
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s is feeling angry and not quite themselves.", c.Name), ports.StyleDanger)
		if e.chance(0.1) {
			c.PosTrait = party.PositiveTraits[e.Rand.Intn(len(party.PositiveTraits))]
			c.NegTrait = party.NegativeTraits[e.Rand.Intn(len(party.NegativeTraits))]
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("The infection is changing %s.", c.Name), ports.StyleDanger)
		}
	}
	c.CapAttributes()
	if c.Health <= 0 {
		return e.handleCharacterDeath(ctx, g, c, fmt.Sprintf("The sickness takes %s.", c.Name))
	}
	return nil
}

// handleDesertion resolves a broken member: the lower their standing with
// the group, the likelier they raid the supplies on the way out. Leaving
// counts as death for inheritance purposes.
func (e Engine) handleDesertion(ctx context.Context, g *game.Game, c *party.Character) error {
	avg := g.Party.AvgRelationship(c)
	stealChance := 0.1 + 0.4*(1-avg/float64(party.RelationFamily))
	if e.chance(stealChance) {
		count := 1 + e.Rand.Intn(2)
		stolen := e.stealSupplies(g, count)
		if len(stolen) > 0 {
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s grabs supplies on the way out.", c.Name), ports.StyleWarning)
		}
	}
	return e.handleCharacterDeath(ctx, g, c, fmt.Sprintf("%s has given up and walks away from camp.", c.Name))
}

func (e Engine) stealSupplies(g *game.Game, count int) []string {
	var stolen []string
	for i := 0; i < count; i++ {
		cat := g.Party.Inventory.ByCategory()
		pool := append(append([]party.ItemStack(nil), cat.Food...), cat.Medical...)
		if len(pool) == 0 {
			break
		}
		item := pool[e.Rand.Intn(len(pool))]
		if g.Party.Inventory.Remove(item.Name) {
			stolen = append(stolen, item.Name)
		}
	}
	return stolen
}
