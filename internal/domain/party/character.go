package party

import "time"

const (
	AttrMax    = 9
	HungerStep = 0.5
)

type AgeCategory string

const (
	AgeTeen  AgeCategory = "teen"
	AgeAdult AgeCategory = "adult"
	AgeElder AgeCategory = "elder"
)

const (
	teenAgeLimit  = 20
	elderAgeStart = 60
)

type RelationLevel int

const (
	RelationCold RelationLevel = iota
	RelationStrangers
	RelationAcquaintances
	RelationFriends
	RelationFamily
)

func (l RelationLevel) String() string {
	switch l {
	case RelationCold:
		return "cold"
	case RelationStrangers:
		return "strangers"
	case RelationAcquaintances:
		return "acquaintances"
	case RelationFriends:
		return "friends"
	case RelationFamily:
		return "family"
	}
	return "unknown"
}

type Birthdate struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
	Year  int        `json:"year"`
}

type ActionFlags struct {
	Food     bool `json:"food"`
	Medical  bool `json:"medical"`
	Interact bool `json:"interact"`
}

// Character is a single survivor. Relationships are keyed by the other
// character's party-assigned id; the Party resolves ids back to members.
type Character struct {
	ID               int                   `json:"id"`
	Name             string                `json:"name"`
	AgeCategory      AgeCategory           `json:"age_category"`
	Morale           int                   `json:"morale"`
	Hunger           float64               `json:"hunger"`
	Health           int                   `json:"health"`
	Sick             bool                  `json:"sick"`
	Infected         bool                  `json:"infected"`
	PosTrait         Trait                 `json:"pos_trait"`
	NegTrait         Trait                 `json:"neg_trait"`
	WeaponIndex      int                   `json:"weapon_index"`
	WeaponDurability int                   `json:"weapon_durability"`
	Relationships    map[int]RelationLevel `json:"-"`
	Actions          ActionFlags           `json:"actions_used"`
	PlayerID         string                `json:"player_id,omitempty"`
	Birth            Birthdate             `json:"birth"`
}

// NewCharacter builds a survivor aged `age` relative to the reference date.
// An empty playerID marks an NPC.
func NewCharacter(name string, age int, pos, neg Trait, birthMonth time.Month, birthDay int, playerID string, ref time.Time) *Character {
	birthYear := ref.Year() - age
	if int(birthMonth) > int(ref.Month()) || (birthMonth == ref.Month() && birthDay > ref.Day()) {
		birthYear--
	}
	c := &Character{
		Name:             name,
		Morale:           5,
		Hunger:           5,
		Health:           AttrMax,
		PosTrait:         pos,
		NegTrait:         neg,
		WeaponIndex:      FistsIndex,
		WeaponDurability: Weapons[FistsIndex].Durability,
		Relationships:    map[int]RelationLevel{},
		PlayerID:         playerID,
		Birth:            Birthdate{Month: birthMonth, Day: birthDay, Year: birthYear},
	}
	c.AgeCategory = c.CategoryAt(ref)
	return c
}

// CheckHunger applies the per-turn hunger tick. It reports false once the
// character has starved (hunger below zero after the tick).
func (c *Character) CheckHunger() bool {
	c.Hunger -= HungerStep
	return c.Hunger >= 0
}

// CapAttributes clamps vitals into [0, AttrMax] and applies the trait
// relationship caps: a friendly character never reads anyone as cold, a
// disconnected one never reads anyone as family.
func (c *Character) CapAttributes() {
	c.Morale = clampInt(c.Morale, 0, AttrMax)
	c.Health = clampInt(c.Health, 0, AttrMax)
	if c.Hunger < 0 {
		c.Hunger = 0
	} else if c.Hunger > AttrMax {
		c.Hunger = AttrMax
	}
	if c.PosTrait == TraitFriendly {
		for id, lvl := range c.Relationships {
			if lvl < RelationStrangers {
				c.Relationships[id] = RelationStrangers
			}
		}
	}
	if c.NegTrait == TraitDisconnected {
		for id, lvl := range c.Relationships {
			if lvl > RelationFriends {
				c.Relationships[id] = RelationFriends
			}
		}
	}
}

// IsViable gatekeeps weapon inheritance, not survival.
func (c *Character) IsViable() bool {
	return c.Health > 0 && c.Hunger > 0 && c.Morale > 0
}

func (c *Character) HasTrait(t Trait) bool {
	return c.PosTrait == t || c.NegTrait == t
}

func (c *Character) Weapon() WeaponDef {
	if c.WeaponIndex < 0 || c.WeaponIndex >= len(Weapons) {
		return Weapons[FistsIndex]
	}
	return Weapons[c.WeaponIndex]
}

func (c *Character) AgeAt(ref time.Time) int {
	age := ref.Year() - c.Birth.Year
	if int(ref.Month()) < int(c.Birth.Month) || (ref.Month() == c.Birth.Month && ref.Day() < c.Birth.Day) {
		age--
	}
	return age
}

func (c *Character) CategoryAt(ref time.Time) AgeCategory {
	age := c.AgeAt(ref)
	switch {
	case age < teenAgeLimit:
		return AgeTeen
	case age < elderAgeStart:
		return AgeAdult
	default:
		return AgeElder
	}
}

// IsBirthdayOn compares month and day literally, so a Feb 29 birthday only
// matches on leap years.
func (c *Character) IsBirthdayOn(ref time.Time) bool {
	return ref.Month() == c.Birth.Month && ref.Day() == c.Birth.Day
}

func (c *Character) RelationWith(otherID int) RelationLevel {
	if lvl, ok := c.Relationships[otherID]; ok {
		return lvl
	}
	return RelationStrangers
}

func (c *Character) SetRelation(otherID int, lvl RelationLevel) {
	if c.Relationships == nil {
		c.Relationships = map[int]RelationLevel{}
	}
	c.Relationships[otherID] = clampRelation(lvl)
}

func (c *Character) ShiftRelation(otherID int, delta int) {
	c.SetRelation(otherID, c.RelationWith(otherID)+RelationLevel(delta))
}

func (c *Character) ResetActions() {
	c.Actions = ActionFlags{}
}

func clampRelation(lvl RelationLevel) RelationLevel {
	if lvl < RelationCold {
		return RelationCold
	}
	if lvl > RelationFamily {
		return RelationFamily
	}
	return lvl
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
