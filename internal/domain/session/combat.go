package session

import (
	"sort"

	"holdout/internal/domain/party"
)

type CombatKind string

const (
	CombatZombie   CombatKind = "zombie"
	CombatSurvivor CombatKind = "survivor"
)

type Enemy struct {
	ID     int        `json:"id"`
	Kind   CombatKind `json:"kind"`
	HP     int        `json:"hp"`
	MaxHP  int        `json:"max_hp"`
	Morale int        `json:"morale"`
	Attack int        `json:"attack"`
}

func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// Combatant is one slot in the turn order: either an enemy or a party
// member referenced by character id.
type Combatant struct {
	Enemy       *Enemy `json:"-"`
	EnemyID     int    `json:"enemy_id,omitempty"`
	CharacterID int    `json:"character_id,omitempty"`
	Morale      int    `json:"morale"`
}

func (c Combatant) IsEnemy() bool {
	return c.Enemy != nil || c.EnemyID != 0
}

// CombatState lives inside the session only while a fight is running.
// Downed combatants are skipped, never removed, so indices stay stable.
type CombatState struct {
	Kind       CombatKind  `json:"kind"`
	Combatants []Combatant `json:"combatants"`
	Enemies    []*Enemy    `json:"enemies"`
	TurnIndex  int         `json:"turn_index"`
}

// NewCombatState interleaves players and enemies into one turn order sorted
// by descending morale; ties keep insertion order (players first).
func NewCombatState(kind CombatKind, members []*party.Character, enemies []*Enemy) *CombatState {
	cs := &CombatState{Kind: kind, Enemies: enemies}
	for _, m := range members {
		cs.Combatants = append(cs.Combatants, Combatant{CharacterID: m.ID, Morale: m.Morale})
	}
	for _, e := range enemies {
		cs.Combatants = append(cs.Combatants, Combatant{Enemy: e, EnemyID: e.ID, Morale: e.Morale})
	}
	sort.SliceStable(cs.Combatants, func(i, j int) bool {
		return cs.Combatants[i].Morale > cs.Combatants[j].Morale
	})
	return cs
}

func (cs *CombatState) Current() Combatant {
	return cs.Combatants[cs.TurnIndex%len(cs.Combatants)]
}

func (cs *CombatState) Advance() {
	cs.TurnIndex++
}

func (cs *CombatState) EnemyByID(id int) *Enemy {
	for _, e := range cs.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (cs *CombatState) LivingEnemies() []*Enemy {
	out := make([]*Enemy, 0, len(cs.Enemies))
	for _, e := range cs.Enemies {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

func (cs *CombatState) EnemiesDefeated() bool {
	return len(cs.LivingEnemies()) == 0
}
