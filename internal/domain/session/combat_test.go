package session

import (
	"testing"
	"time"

	"holdout/internal/domain/party"
)

func combatMember(name string, morale int) *party.Character {
	c := party.NewCharacter(name, 30, party.TraitResilient, party.TraitHungry, time.March, 12, "", time.Date(2012, time.June, 1, 0, 0, 0, 0, time.UTC))
	c.Morale = morale
	return c
}

func TestNewCombatStateOrdersByMoraleDesc(t *testing.T) {
	p := party.NewParty()
	low := combatMember("Low", 2)
	high := combatMember("High", 8)
	p.AddCharacter(low)
	p.AddCharacter(high)

	enemy := &Enemy{ID: 1, Kind: CombatZombie, HP: 3, MaxHP: 3, Morale: 5, Attack: 1}
	cs := NewCombatState(CombatZombie, p.Members, []*Enemy{enemy})

	if cs.Combatants[0].CharacterID != high.ID {
		t.Fatalf("highest morale should act first, got %+v", cs.Combatants[0])
	}
	if !cs.Combatants[1].IsEnemy() {
		t.Fatalf("enemy should slot between members, got %+v", cs.Combatants[1])
	}
	if cs.Combatants[2].CharacterID != low.ID {
		t.Fatalf("lowest morale should act last, got %+v", cs.Combatants[2])
	}
}

func TestNewCombatStateTiesKeepPlayersFirst(t *testing.T) {
	p := party.NewParty()
	m := combatMember("Even", 5)
	p.AddCharacter(m)
	enemy := &Enemy{ID: 1, Kind: CombatZombie, HP: 3, MaxHP: 3, Morale: 5, Attack: 1}

	cs := NewCombatState(CombatZombie, p.Members, []*Enemy{enemy})
	if cs.Combatants[0].IsEnemy() {
		t.Fatal("on a morale tie the member should keep the earlier slot")
	}
}

func TestCurrentWrapsAround(t *testing.T) {
	p := party.NewParty()
	p.AddCharacter(combatMember("Solo", 5))
	enemy := &Enemy{ID: 1, Kind: CombatZombie, HP: 3, MaxHP: 3, Morale: 1, Attack: 1}
	cs := NewCombatState(CombatZombie, p.Members, []*Enemy{enemy})

	first := cs.Current()
	cs.Advance()
	cs.Advance()
	if got := cs.Current(); got != first {
		t.Fatalf("turn order should wrap, got %+v", got)
	}
}

func TestLivingEnemiesAndDefeat(t *testing.T) {
	a := &Enemy{ID: 1, HP: 2, MaxHP: 2}
	b := &Enemy{ID: 2, HP: 3, MaxHP: 3}
	cs := NewCombatState(CombatZombie, nil, []*Enemy{a, b})

	a.HP = 0
	if got := len(cs.LivingEnemies()); got != 1 {
		t.Fatalf("expected 1 living enemy, got %d", got)
	}
	if cs.EnemiesDefeated() {
		t.Fatal("one enemy still stands")
	}
	b.HP = -1
	if !cs.EnemiesDefeated() {
		t.Fatal("all enemies down should end the fight")
	}
	if cs.EnemyByID(2) != b {
		t.Fatal("EnemyByID lookup broken")
	}
}
