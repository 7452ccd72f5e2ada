package engine

import (
	"context"
	"testing"

	scriptrender "holdout/internal/adapter/render/script"
	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
)

func TestDeriveEventRatesNightShift(t *testing.T) {
	day := deriveEventRates(2, session.PhaseDay)
	night := deriveEventRates(2, session.PhaseNight)

	if night.friend != 0 {
		t.Fatal("no friendly strangers after dark")
	}
	if night.enemy <= day.enemy {
		t.Fatalf("night should be more dangerous: %v vs %v", night.enemy, day.enemy)
	}
	if night.item >= day.item {
		t.Fatalf("scavenging should suffer at night: %v vs %v", night.item, day.item)
	}
}

func TestDeriveEventRatesFullPartyBlocksFriends(t *testing.T) {
	r := deriveEventRates(party.MaxMembers, session.PhaseDay)
	if r.friend != 0 {
		t.Fatal("a full party meets no joinable strangers")
	}
}

func TestResolveRandomEventIdle(t *testing.T) {
	g := newPlayingGame()
	addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)

	rnd := &scriptRand{floats: []float64{0.95}}
	e := newTestEngine(rnd, scriptrender.New())
	if err := e.resolveRandomEvent(context.Background(), g); err != nil {
		t.Fatalf("resolveRandomEvent: %v", err)
	}
	if g.Party.Inventory.Len() != 0 || g.Session.InCombat {
		t.Fatal("an idle roll should change nothing")
	}
}

func TestResolveRandomEventItemFind(t *testing.T) {
	g := newPlayingGame()
	addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)

	// 0.35 lands in the item band on a single-member day; 0.1 loots food.
	rnd := &scriptRand{floats: []float64{0.35, 0.1}, ints: []int{0}}
	e := newTestEngine(rnd, scriptrender.New())
	if err := e.resolveRandomEvent(context.Background(), g); err != nil {
		t.Fatalf("resolveRandomEvent: %v", err)
	}
	if _, ok := g.Party.Inventory.Get("berries"); !ok {
		t.Fatal("item find should add a catalog item")
	}
}

func TestResolveRandomEventDoubleFind(t *testing.T) {
	g := newPlayingGame()
	addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)

	rnd := &scriptRand{floats: []float64{0.55, 0.1, 0.1}, ints: []int{0, 0}}
	e := newTestEngine(rnd, scriptrender.New())
	if err := e.resolveRandomEvent(context.Background(), g); err != nil {
		t.Fatalf("resolveRandomEvent: %v", err)
	}
	berries, _ := g.Party.Inventory.Get("berries")
	if berries.Quantity != 2 {
		t.Fatalf("double find should loot twice, got %d", berries.Quantity)
	}
}

func TestFriendSlotDegradesToItemsInMultiplayer(t *testing.T) {
	g := newPlayingGame()
	addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	g.Session.AddPlayer("p1", "Ann")
	g.Session.AddPlayer("p2", "Ben")

	rnd := &scriptRand{floats: []float64{0.05, 0.1}, ints: []int{0}}
	e := newTestEngine(rnd, scriptrender.New())
	if err := e.resolveRandomEvent(context.Background(), g); err != nil {
		t.Fatalf("resolveRandomEvent: %v", err)
	}
	if g.Party.Size() != 1 {
		t.Fatal("multiplayer games never gain NPC members from the friend slot")
	}
	if g.Party.Inventory.Len() != 1 {
		t.Fatal("the slot should degrade to a single item find")
	}
}

func TestIllnessEscalatesToInfection(t *testing.T) {
	g := newPlayingGame()
	c := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)

	rnd := &scriptRand{ints: []int{0, 0}}
	e := newTestEngine(rnd, scriptrender.New())
	e.illnessStrikes(context.Background(), g)
	if !c.Sick || c.Infected {
		t.Fatalf("first strike should only sicken: sick=%v infected=%v", c.Sick, c.Infected)
	}
	e.illnessStrikes(context.Background(), g)
	if !c.Infected {
		t.Fatal("a second strike on a sick member should infect")
	}
}

func TestMiniEventPairArgument(t *testing.T) {
	g := newPlayingGame()
	a := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	b := addMember(t, g, "Jonas", party.TraitResilient, party.TraitVulnerable)

	rnd := &scriptRand{floats: []float64{0.7}}
	e := newTestEngine(rnd, scriptrender.New())
	if err := e.miniEvent(context.Background(), g); err != nil {
		t.Fatalf("miniEvent: %v", err)
	}
	if a.RelationWith(b.ID) != party.RelationCold || b.RelationWith(a.ID) != party.RelationCold {
		t.Fatal("the argument should cool both sides")
	}
}

func TestMiniEventGroupGame(t *testing.T) {
	g := newPlayingGame()
	members := []*party.Character{
		addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable),
		addMember(t, g, "Jonas", party.TraitResilient, party.TraitVulnerable),
		addMember(t, g, "Priya", party.TraitResilient, party.TraitVulnerable),
	}

	rnd := &scriptRand{floats: []float64{0.3}}
	e := newTestEngine(rnd, scriptrender.New())
	if err := e.miniEvent(context.Background(), g); err != nil {
		t.Fatalf("miniEvent: %v", err)
	}
	for _, c := range members {
		if c.Morale != 6 {
			t.Fatalf("%s should gain morale from the card game, got %d", c.Name, c.Morale)
		}
	}
}

func TestMerchantTrade(t *testing.T) {
	g := newPlayingGame()
	addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	g.Party.Inventory.Add("berries", 1)

	// Offer roll 0.5 picks a medical, index 0 is a bandage; price index 0 is
	// the berries.
	r := scriptrender.New()
	r.QueueConfirm(true)
	rnd := &scriptRand{floats: []float64{0.5}, ints: []int{0, 0}}
	e := newTestEngine(rnd, r)
	if err := e.merchantEncounter(context.Background(), g); err != nil {
		t.Fatalf("merchantEncounter: %v", err)
	}

	if _, ok := g.Party.Inventory.Get("berries"); ok {
		t.Fatal("the price should be handed over")
	}
	if _, ok := g.Party.Inventory.Get("bandage"); !ok {
		t.Fatal("the offer should be received")
	}
	if g.Stats.Encounters["merchant_traded"] != 1 {
		t.Fatalf("trade should be tallied: %v", g.Stats.Encounters)
	}
	if g.Session.PendingEncounter != session.EncounterNone {
		t.Fatal("completed encounter should clear the pending tag")
	}
}

func TestMerchantPassesAnEmptyCamp(t *testing.T) {
	g := newPlayingGame()
	addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)

	e := newTestEngine(&scriptRand{}, scriptrender.New())
	if err := e.merchantEncounter(context.Background(), g); err != nil {
		t.Fatalf("merchantEncounter: %v", err)
	}
	if g.Stats.Encounters["merchant_passed"] != 1 {
		t.Fatalf("pass should be tallied: %v", g.Stats.Encounters)
	}
}

func TestPersonInNeedHelpedLiftsEveryone(t *testing.T) {
	g := newPlayingGame()
	a := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	b := addMember(t, g, "Jonas", party.TraitResilient, party.TraitVulnerable)
	g.Party.Inventory.Add("berries", 1)

	r := scriptrender.New()
	r.QueueConfirm(true)
	rnd := &scriptRand{ints: []int{0}}
	e := newTestEngine(rnd, r)
	if err := e.personInNeedEncounter(context.Background(), g); err != nil {
		t.Fatalf("personInNeedEncounter: %v", err)
	}

	if a.Morale != 6 || b.Morale != 6 {
		t.Fatalf("generosity should lift everyone: %d/%d", a.Morale, b.Morale)
	}
	if _, ok := g.Party.Inventory.Get("berries"); ok {
		t.Fatal("the food should be given away")
	}
}

func TestHostileSurvivorFleeCanDropAnItem(t *testing.T) {
	g := newPlayingGame()
	addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	g.Party.Inventory.Add("berries", 1)

	r := scriptrender.New()
	r.QueueChoice("flee")
	rnd := &scriptRand{floats: []float64{0.3}, ints: []int{0}}
	e := newTestEngine(rnd, r)
	if err := e.hostileSurvivorEncounter(context.Background(), g); err != nil {
		t.Fatalf("hostileSurvivorEncounter: %v", err)
	}

	if g.Session.InCombat {
		t.Fatal("fleeing must not start combat")
	}
	if _, ok := g.Party.Inventory.Get("berries"); ok {
		t.Fatal("the scramble should cost an item")
	}
	if g.Stats.Encounters["hostile_fled"] != 1 {
		t.Fatalf("flight should be tallied: %v", g.Stats.Encounters)
	}
}

func TestFriendEncounterDeclined(t *testing.T) {
	g := newPlayingGame()
	addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)

	r := scriptrender.New()
	r.QueueConfirm(false)
	e := newTestEngine(&scriptRand{}, r)
	if err := e.friendEncounter(context.Background(), g); err != nil {
		t.Fatalf("friendEncounter: %v", err)
	}
	if g.Party.Size() != 1 {
		t.Fatal("declined stranger should not join")
	}
	if g.Session.PendingEncounter != session.EncounterNone {
		t.Fatal("declined encounter should clear the pending tag")
	}
}
