package game

import (
	"fmt"
	"time"

	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
	"holdout/internal/domain/stats"
)

const dateLayout = "2006-01-02"

// Document is the structured form the entity graph round-trips through for
// persistence. Relationships flatten to id/level pairs and are resolved back
// in a second pass once every character exists again; references to since-
// removed characters are dropped silently.
type Document struct {
	ID      string          `json:"id"`
	Session SessionDocument `json:"session"`
	Party   PartyDocument   `json:"party"`
	Stats   *stats.Stats    `json:"stats"`
	Version int64           `json:"version"`
}

type SessionDocument struct {
	TurnNumber       int                  `json:"turn_number"`
	TimeOfDay        session.Phase        `json:"time_of_day"`
	CurrentDate      string               `json:"current_date"`
	Status           session.Status       `json:"status"`
	InCombat         bool                 `json:"in_combat"`
	Combat           *CombatDocument      `json:"combat,omitempty"`
	PendingEncounter session.EncounterTag `json:"pending_encounter,omitempty"`
	Players          []session.Player     `json:"players"`
	Triggered        []string             `json:"triggered_events"`
	NamePool         []string             `json:"name_pool"`
}

type CombatDocument struct {
	Kind       session.CombatKind  `json:"kind"`
	Enemies    []session.Enemy     `json:"enemies"`
	Combatants []session.Combatant `json:"combatants"`
	TurnIndex  int                 `json:"turn_index"`
}

type PartyDocument struct {
	NextID     int                 `json:"next_id"`
	Characters []CharacterDocument `json:"characters"`
	Inventory  []party.ItemStack   `json:"inventory"`
}

type CharacterDocument struct {
	party.Character
	Relationships []RelationRef `json:"relationships"`
}

type RelationRef struct {
	OtherCharacterID int `json:"other_character_id"`
	Level            int `json:"level"`
}

func (g *Game) Document() Document {
	doc := Document{
		ID:      g.ID,
		Stats:   g.Stats,
		Version: g.Version,
	}

	s := g.Session
	doc.Session = SessionDocument{
		TurnNumber:       s.TurnNumber,
		TimeOfDay:        s.TimeOfDay,
		CurrentDate:      s.CurrentDate.Format(dateLayout),
		Status:           s.Status,
		InCombat:         s.InCombat,
		PendingEncounter: s.PendingEncounter,
		NamePool:         append([]string(nil), s.NamePool...),
	}
	for _, p := range s.Players {
		doc.Session.Players = append(doc.Session.Players, *p)
	}
	for key := range s.Triggered {
		doc.Session.Triggered = append(doc.Session.Triggered, key)
	}
	if s.Combat != nil {
		doc.Session.Combat = &CombatDocument{
			Kind:       s.Combat.Kind,
			TurnIndex:  s.Combat.TurnIndex,
			Combatants: append([]session.Combatant(nil), s.Combat.Combatants...),
		}
		for _, e := range s.Combat.Enemies {
			doc.Session.Combat.Enemies = append(doc.Session.Combat.Enemies, *e)
		}
	}

	doc.Party = PartyDocument{NextID: g.Party.NextID}
	for _, c := range g.Party.Members {
		cd := CharacterDocument{Character: *c}
		for otherID, lvl := range c.Relationships {
			cd.Relationships = append(cd.Relationships, RelationRef{OtherCharacterID: otherID, Level: int(lvl)})
		}
		doc.Party.Characters = append(doc.Party.Characters, cd)
	}
	doc.Party.Inventory = g.Party.Inventory.Items()

	return doc
}

func FromDocument(doc Document) (*Game, error) {
	date, err := time.Parse(dateLayout, doc.Session.CurrentDate)
	if err != nil {
		return nil, fmt.Errorf("parse current date: %w", err)
	}

	g := New(doc.ID, date)
	g.Version = doc.Version
	if doc.Stats != nil {
		g.Stats = doc.Stats
	}

	s := g.Session
	s.TurnNumber = doc.Session.TurnNumber
	s.TimeOfDay = doc.Session.TimeOfDay
	s.Status = doc.Session.Status
	s.InCombat = doc.Session.InCombat
	s.PendingEncounter = doc.Session.PendingEncounter
	s.NamePool = append([]string(nil), doc.Session.NamePool...)
	for _, p := range doc.Session.Players {
		player := p
		s.Players[p.ID] = &player
	}
	for _, key := range doc.Session.Triggered {
		s.Triggered[key] = true
	}

	g.Party.NextID = doc.Party.NextID
	// First pass: rebuild characters without relationship edges.
	for _, cd := range doc.Party.Characters {
		c := cd.Character
		c.Relationships = map[int]party.RelationLevel{}
		g.Party.Members = append(g.Party.Members, &c)
	}
	// Second pass: resolve relationship refs, dropping dangling ids.
	for i, cd := range doc.Party.Characters {
		c := g.Party.Members[i]
		for _, ref := range cd.Relationships {
			if g.Party.MemberByID(ref.OtherCharacterID) == nil {
				continue
			}
			c.SetRelation(ref.OtherCharacterID, party.RelationLevel(ref.Level))
		}
	}
	for _, stack := range doc.Party.Inventory {
		for i := 0; i < stack.Quantity; i++ {
			g.Party.Inventory.Add(stack.Name, stack.Value)
		}
	}

	if doc.Session.Combat != nil {
		cs := &session.CombatState{
			Kind:      doc.Session.Combat.Kind,
			TurnIndex: doc.Session.Combat.TurnIndex,
		}
		for _, e := range doc.Session.Combat.Enemies {
			enemy := e
			cs.Enemies = append(cs.Enemies, &enemy)
		}
		for _, cb := range doc.Session.Combat.Combatants {
			if cb.EnemyID != 0 {
				cb.Enemy = cs.EnemyByID(cb.EnemyID)
			}
			cs.Combatants = append(cs.Combatants, cb)
		}
		s.Combat = cs
	}

	return g, nil
}
