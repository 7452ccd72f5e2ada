package party

const MaxMembers = 4

// Party is the bounded roster sharing one inventory. It owns the id counter
// that relationship maps are keyed on.
type Party struct {
	Members   []*Character
	Inventory *Inventory
	NextID    int
}

func NewParty() *Party {
	return &Party{Inventory: NewInventory(), NextID: 1}
}

// AddCharacter assigns an id and establishes relationship edges with every
// existing member. The initial level is keyed off the existing member's
// traits, not the joiner's: friendly upgrades to acquaintances, disconnected
// downgrades to cold. Both directions get the same level so the graph stays
// symmetric.
func (p *Party) AddCharacter(c *Character) bool {
	if len(p.Members) >= MaxMembers {
		return false
	}
	c.ID = p.NextID
	p.NextID++
	if c.Relationships == nil {
		c.Relationships = map[int]RelationLevel{}
	}
	for _, existing := range p.Members {
		lvl := RelationStrangers
		if existing.PosTrait == TraitFriendly && existing.NegTrait != TraitDisconnected {
			lvl = RelationAcquaintances
		} else if existing.NegTrait == TraitDisconnected && existing.PosTrait != TraitFriendly {
			lvl = RelationCold
		}
		existing.SetRelation(c.ID, lvl)
		c.SetRelation(existing.ID, lvl)
	}
	p.Members = append(p.Members, c)
	return true
}

// RemoveCharacter drops the member and purges it from every surviving
// relationship map.
func (p *Party) RemoveCharacter(c *Character) {
	for i, m := range p.Members {
		if m == c {
			p.Members = append(p.Members[:i], p.Members[i+1:]...)
			break
		}
	}
	for _, m := range p.Members {
		delete(m.Relationships, c.ID)
	}
}

func (p *Party) MemberByID(id int) *Character {
	for _, m := range p.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (p *Party) Size() int {
	return len(p.Members)
}

// AvgRelationship averages c's relationship levels toward the other members.
// A solo character averages to strangers.
func (p *Party) AvgRelationship(c *Character) float64 {
	total, count := 0, 0
	for _, m := range p.Members {
		if m == c {
			continue
		}
		total += int(c.RelationWith(m.ID))
		count++
	}
	if count == 0 {
		return float64(RelationStrangers)
	}
	return float64(total) / float64(count)
}
