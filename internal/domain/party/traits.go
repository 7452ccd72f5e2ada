package party

type Trait string

const (
	TraitFriendly   Trait = "friendly"
	TraitResilient  Trait = "resilient"
	TraitScavenger  Trait = "scavenger"
	TraitOptimistic Trait = "optimistic"
	TraitSatiated   Trait = "satiated"
	TraitFighter    Trait = "fighter"

	TraitDisconnected  Trait = "disconnected"
	TraitHungry        Trait = "hungry"
	TraitHypochondriac Trait = "hypochondriac"
	TraitDepressed     Trait = "depressed"
	TraitClumsy        Trait = "clumsy"
	TraitVulnerable    Trait = "vulnerable"
)

var PositiveTraits = []Trait{
	TraitFriendly, TraitResilient, TraitScavenger,
	TraitOptimistic, TraitSatiated, TraitFighter,
}

var NegativeTraits = []Trait{
	TraitDisconnected, TraitHungry, TraitHypochondriac,
	TraitDepressed, TraitClumsy, TraitVulnerable,
}

func IsPositiveTrait(t Trait) bool {
	for _, p := range PositiveTraits {
		if p == t {
			return true
		}
	}
	return false
}

func IsNegativeTrait(t Trait) bool {
	for _, n := range NegativeTraits {
		if n == t {
			return true
		}
	}
	return false
}
