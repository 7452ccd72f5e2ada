package engine

import (
	"context"
	"testing"

	scriptrender "holdout/internal/adapter/render/script"
	"holdout/internal/domain/party"
)

func TestUseFoodRestoresHungerOncePerTurn(t *testing.T) {
	g := newPlayingGame()
	c := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	c.Hunger = 5
	g.Party.Inventory.Add("jerky", 2)
	g.Party.Inventory.Add("jerky", 2)

	e := newTestEngine(&scriptRand{}, scriptrender.New())
	if !e.UseFood(context.Background(), g, c, "jerky") {
		t.Fatal("first meal should succeed")
	}
	if c.Hunger != 7 {
		t.Fatalf("jerky restores 2, got hunger %v", c.Hunger)
	}
	if e.UseFood(context.Background(), g, c, "jerky") {
		t.Fatal("second meal in one turn should be refused")
	}
	if g.Stats.FoodEaten != 1 {
		t.Fatalf("expected 1 meal recorded, got %d", g.Stats.FoodEaten)
	}
	jerky, _ := g.Party.Inventory.Get("jerky")
	if jerky.Quantity != 1 {
		t.Fatalf("expected one jerky left, got %d", jerky.Quantity)
	}
}

func TestUseFoodRejectsUnknownOrMissingItems(t *testing.T) {
	g := newPlayingGame()
	c := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)

	e := newTestEngine(&scriptRand{}, scriptrender.New())
	if e.UseFood(context.Background(), g, c, "bandage") {
		t.Fatal("a bandage is not food")
	}
	if e.UseFood(context.Background(), g, c, "berries") {
		t.Fatal("cannot eat what the party does not hold")
	}
	if c.Actions.Food {
		t.Fatal("failed attempts must not spend the action")
	}
}

func TestUseMedicalCurativeClearsSickness(t *testing.T) {
	g := newPlayingGame()
	c := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	c.Health = 5
	c.Sick = true
	c.Infected = true
	g.Party.Inventory.Add("first aid kit", 3)

	e := newTestEngine(&scriptRand{}, scriptrender.New())
	if !e.UseMedical(context.Background(), g, c, "first aid kit") {
		t.Fatal("treatment should succeed")
	}
	if c.Health != 8 {
		t.Fatalf("first aid kit restores 3, got %d", c.Health)
	}
	if c.Sick || c.Infected {
		t.Fatal("a curative item clears sickness and infection")
	}
}

func TestUseMedicalPlainItemLeavesSickness(t *testing.T) {
	g := newPlayingGame()
	c := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	c.Health = 5
	c.Sick = true
	g.Party.Inventory.Add("bandage", 1)

	e := newTestEngine(&scriptRand{}, scriptrender.New())
	if !e.UseMedical(context.Background(), g, c, "bandage") {
		t.Fatal("treatment should succeed")
	}
	if !c.Sick {
		t.Fatal("a bandage does not cure the fever")
	}
	if g.Stats.MedicalUsed != 1 {
		t.Fatalf("expected 1 treatment recorded, got %d", g.Stats.MedicalUsed)
	}
}

func TestUseMedicalCapsHealth(t *testing.T) {
	g := newPlayingGame()
	c := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	c.Health = 8
	g.Party.Inventory.Add("first aid kit", 3)

	e := newTestEngine(&scriptRand{}, scriptrender.New())
	e.UseMedical(context.Background(), g, c, "first aid kit")
	if c.Health != party.AttrMax {
		t.Fatalf("health should cap at %d, got %d", party.AttrMax, c.Health)
	}
}

func TestEquipWeaponShelvesTheOldOne(t *testing.T) {
	g := newPlayingGame()
	c := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	arm(c, "stick")
	c.WeaponDurability = 2
	g.Party.Inventory.Add("knife", 5)

	e := newTestEngine(&scriptRand{}, scriptrender.New())
	if !e.EquipWeapon(context.Background(), g, c, "knife") {
		t.Fatal("swap should succeed")
	}
	if c.Weapon().Name != "knife" || c.WeaponDurability != 5 {
		t.Fatalf("equipped weapon should carry the stack's durability: %s/%d", c.Weapon().Name, c.WeaponDurability)
	}
	stick, ok := g.Party.Inventory.Get("stick")
	if !ok || stick.Value != 2 {
		t.Fatalf("old weapon should be shelved with its wear: %+v", stick)
	}
	if _, ok := g.Party.Inventory.Get("knife"); ok {
		t.Fatal("equipped weapon should leave the inventory")
	}
}

func TestEquipWeaponRejectsFists(t *testing.T) {
	g := newPlayingGame()
	c := addMember(t, g, "Mara", party.TraitResilient, party.TraitVulnerable)
	g.Party.Inventory.Add("fists", 99)

	e := newTestEngine(&scriptRand{}, scriptrender.New())
	if e.EquipWeapon(context.Background(), g, c, "fists") {
		t.Fatal("fists are not an equippable stack")
	}
}
