package engine

import (
	"context"
	"fmt"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
)

// eventRates holds the turn's cumulative thresholds, re-derived each turn
// from party size and time of day. Night kills friend encounters, halves
// item finds and raises the enemy rate.
type eventRates struct {
	friend  float64
	enemy   float64
	item    float64
	double  float64
	illness float64
	mini    float64
}

func deriveEventRates(size int, phase session.Phase) eventRates {
	r := eventRates{
		friend:  0.10,
		enemy:   0.20,
		item:    0.20,
		double:  0.10,
		illness: 0.10,
		mini:    0.15,
	}
	if phase == session.PhaseNight {
		r.friend = 0
		r.enemy = 0.35
		r.item = 0.10
		r.double = 0.05
	}
	if size >= party.MaxMembers {
		r.friend = 0
	}
	return r
}

// resolveRandomEvent rolls the turn's one random event. In multiplayer the
// friend-encounter slot degrades to an item find, since NPC joins are
// single-player only.
func (e Engine) resolveRandomEvent(ctx context.Context, g *game.Game) error {
	s := g.Session
	rates := deriveEventRates(g.Party.Size(), s.TimeOfDay)
	roll := e.Rand.Float64()

	cum := rates.friend
	if roll < cum {
		if s.IsMultiplayer() {
			e.findItems(ctx, g, 1)
			return nil
		}
		return e.friendEncounter(ctx, g)
	}
	cum += rates.enemy
	if roll < cum {
		if e.chance(0.8) {
			return e.startCombat(ctx, g, session.CombatZombie)
		}
		return e.survivorEncounter(ctx, g)
	}
	cum += rates.item
	if roll < cum {
		e.findItems(ctx, g, 1)
		return nil
	}
	cum += rates.double
	if roll < cum {
		e.findItems(ctx, g, 2)
		return nil
	}
	cum += rates.illness
	if roll < cum {
		e.illnessStrikes(ctx, g)
		return nil
	}
	cum += rates.mini
	if roll < cum {
		return e.miniEvent(ctx, g)
	}

	e.Renderer.DisplayEvent(ctx, "Nothing much happens. The hours crawl by.", ports.StyleNormal)
	return nil
}

// survivorEncounter splits a non-zombie hostile roll into merchant,
// person-in-need and hostile-survivor branches.
func (e Engine) survivorEncounter(ctx context.Context, g *game.Game) error {
	roll := e.Rand.Float64()
	switch {
	case roll < 0.4:
		return e.merchantEncounter(ctx, g)
	case roll < 0.7:
		return e.personInNeedEncounter(ctx, g)
	default:
		return e.hostileSurvivorEncounter(ctx, g)
	}
}

func (e Engine) findItems(ctx context.Context, g *game.Game, count int) {
	for i := 0; i < count; i++ {
		name := e.lootRandomItem(g)
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("The group finds %s.", name), ports.StyleSuccess)
	}
	e.Renderer.DisplayInventory(ctx, g.Party.Inventory)
}

// lootRandomItem rolls a category (food-heavy) and adds one catalog item.
func (e Engine) lootRandomItem(g *game.Game) string {
	roll := e.Rand.Float64()
	switch {
	case roll < 0.5:
		f := party.Foods[e.Rand.Intn(len(party.Foods))]
		g.Party.Inventory.AddFood(f)
		return f.Name
	case roll < 0.8:
		m := party.Medicals[e.Rand.Intn(len(party.Medicals))]
		g.Party.Inventory.AddMedical(m)
		return m.Name
	default:
		w := party.Weapons[1+e.Rand.Intn(len(party.Weapons)-1)]
		g.Party.Inventory.AddWeapon(w)
		return w.Name
	}
}

// illnessStrikes sickens a random member; one already sick turns infected.
func (e Engine) illnessStrikes(ctx context.Context, g *game.Game) {
	c := g.Party.Members[e.Rand.Intn(g.Party.Size())]
	if c.Sick {
		c.Infected = true
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s's fever turns into something far worse.", c.Name), ports.StyleDanger)
	} else {
		c.Sick = true
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s wakes up shivering and pale.", c.Name), ports.StyleWarning)
	}
	e.Renderer.UpdateStats(ctx, c)
}

// miniEvent depends on party size: a group pastime for three or more, a
// relationship swing for a pair, a quiet moment alone for one.
func (e Engine) miniEvent(ctx context.Context, g *game.Game) error {
	switch {
	case g.Party.Size() >= 3:
		if e.chance(0.5) {
			e.Renderer.DisplayEvent(ctx, "Someone digs out a battered deck of cards. The game gets competitive.", ports.StyleInfo)
			for _, c := range g.Party.Members {
				c.Morale++
				c.CapAttributes()
			}
		} else {
			e.Renderer.DisplayEvent(ctx, "Rain hammers the shelter all day. Everyone is soaked and miserable.", ports.StyleWarning)
			for _, c := range g.Party.Members {
				c.Morale--
				c.CapAttributes()
			}
		}
	case g.Party.Size() == 2:
		a, b := g.Party.Members[0], g.Party.Members[1]
		if e.chance(0.5) {
			a.ShiftRelation(b.ID, 1)
			b.ShiftRelation(a.ID, 1)
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s and %s talk late into the night and grow closer.", a.Name, b.Name), ports.StyleSuccess)
		} else {
			a.ShiftRelation(b.ID, -1)
			b.ShiftRelation(a.ID, -1)
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s and %s argue over how to ration the supplies.", a.Name, b.Name), ports.StyleWarning)
		}
		a.CapAttributes()
		b.CapAttributes()
	default:
		c := g.Party.Members[0]
		c.Morale++
		c.CapAttributes()
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s finds an old photograph and sits with it a while.", c.Name), ports.StyleInfo)
	}
	return nil
}
