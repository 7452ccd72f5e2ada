package game

import (
	"encoding/json"
	"testing"
	"time"

	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
)

func buildTestGame(t *testing.T) *Game {
	t.Helper()
	g := New("g1", time.Date(2012, time.June, 1, 0, 0, 0, 0, time.UTC))
	g.Version = 3

	s := g.Session
	s.TurnNumber = 9
	s.TimeOfDay = session.PhaseNight
	s.Status = session.StatusPlaying
	s.PendingEncounter = session.EncounterMerchant
	s.NamePool = []string{"Wren", "Bo"}
	s.Triggered["christmas_2011"] = true
	s.AddPlayer("p1", "Ann")
	s.SetPlayerReady("p1", true)

	ref := s.CurrentDate
	a := party.NewCharacter("Mara", 34, party.TraitFriendly, party.TraitHungry, time.March, 12, "p1", ref)
	b := party.NewCharacter("Jonas", 61, party.TraitResilient, party.TraitClumsy, time.December, 3, "", ref)
	c := party.NewCharacter("Priya", 17, party.TraitScavenger, party.TraitDepressed, time.July, 30, "", ref)
	g.Party.AddCharacter(a)
	g.Party.AddCharacter(b)
	g.Party.AddCharacter(c)
	a.SetRelation(b.ID, party.RelationFamily)
	b.SetRelation(a.ID, party.RelationFamily)
	b.WeaponIndex = 2
	b.WeaponDurability = 4
	b.Sick = true

	g.Party.Inventory.Add("berries", 1)
	g.Party.Inventory.Add("berries", 1)
	g.Party.Inventory.Add("knife", 5)

	g.Stats.RecordJoin("Mara", 1)
	g.Stats.RecordKill("knife")
	return g
}

func TestDocumentRoundTrip(t *testing.T) {
	g := buildTestGame(t)

	raw, err := json.Marshal(g.Document())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.ID != g.ID || restored.Version != g.Version {
		t.Fatalf("identity lost: id=%s version=%d", restored.ID, restored.Version)
	}
	rs := restored.Session
	if rs.TurnNumber != 9 || rs.TimeOfDay != session.PhaseNight || rs.PendingEncounter != session.EncounterMerchant {
		t.Fatalf("session state lost: %+v", rs)
	}
	if !rs.CurrentDate.Equal(g.Session.CurrentDate) {
		t.Fatalf("date drifted: %v", rs.CurrentDate)
	}
	if !rs.Triggered["christmas_2011"] {
		t.Fatal("seasonal ledger lost")
	}
	p, ok := rs.Players["p1"]
	if !ok || !p.IsHost || !p.IsReady {
		t.Fatalf("player state lost: %+v", p)
	}

	if restored.Party.Size() != 3 || restored.Party.NextID != g.Party.NextID {
		t.Fatalf("party shape lost: size=%d nextID=%d", restored.Party.Size(), restored.Party.NextID)
	}
	ra := restored.Party.MemberByID(1)
	rb := restored.Party.MemberByID(2)
	if ra == nil || rb == nil {
		t.Fatal("members missing after restore")
	}
	if ra.RelationWith(rb.ID) != party.RelationFamily || rb.RelationWith(ra.ID) != party.RelationFamily {
		t.Fatal("relationship edges lost")
	}
	if rb.WeaponIndex != 2 || rb.WeaponDurability != 4 || !rb.Sick {
		t.Fatalf("character state lost: %+v", rb)
	}

	berries, ok := restored.Party.Inventory.Get("berries")
	if !ok || berries.Quantity != 2 {
		t.Fatalf("inventory lost: %+v", berries)
	}
	if restored.Stats.WeaponKills["knife"] != 1 || restored.Stats.JoinTurns["Mara"] != 1 {
		t.Fatalf("stats lost: %+v", restored.Stats)
	}
}

func TestDocumentRoundTripCombatState(t *testing.T) {
	g := buildTestGame(t)
	s := g.Session
	enemy := &session.Enemy{ID: 1, Kind: session.CombatZombie, HP: 2, MaxHP: 4, Morale: 3, Attack: 1}
	s.Combat = session.NewCombatState(session.CombatZombie, g.Party.Members, []*session.Enemy{enemy})
	s.Combat.TurnIndex = 2
	s.InCombat = true
	s.Status = session.StatusCombat

	raw, err := json.Marshal(g.Document())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	cs := restored.Session.Combat
	if cs == nil || !restored.Session.InCombat {
		t.Fatal("combat state lost")
	}
	if cs.TurnIndex != 2 || len(cs.Combatants) != 4 {
		t.Fatalf("turn order lost: %+v", cs)
	}
	re := cs.EnemyByID(1)
	if re == nil || re.HP != 2 || re.MaxHP != 4 {
		t.Fatalf("enemy state lost: %+v", re)
	}
	for _, cb := range cs.Combatants {
		if cb.IsEnemy() && cb.Enemy != re {
			t.Fatal("combatant enemy pointer not re-resolved")
		}
	}
}

func TestFromDocumentDropsDanglingRelationRefs(t *testing.T) {
	g := buildTestGame(t)
	doc := g.Document()
	// Point one relationship at an id nobody holds anymore.
	doc.Party.Characters[0].Relationships = append(doc.Party.Characters[0].Relationships, RelationRef{OtherCharacterID: 99, Level: 4})

	restored, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	ra := restored.Party.MemberByID(1)
	if _, ok := ra.Relationships[99]; ok {
		t.Fatal("dangling relation ref should be dropped")
	}
}

func TestFromDocumentRejectsBadDate(t *testing.T) {
	doc := Document{Session: SessionDocument{CurrentDate: "not-a-date"}}
	if _, err := FromDocument(doc); err == nil {
		t.Fatal("expected parse error")
	}
}
