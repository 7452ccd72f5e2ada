package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	scriptrender "holdout/internal/adapter/render/script"
	"holdout/internal/app/ports"
	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
)

func TestCreateCharacterFromQueuedSpec(t *testing.T) {
	g := newPlayingGame()
	r := scriptrender.New()
	r.QueueCreation(ports.CharacterSpec{
		Name:       "Zed",
		Age:        42,
		PosTrait:   party.TraitFighter,
		NegTrait:   party.TraitClumsy,
		BirthMonth: time.April,
		BirthDay:   2,
	})

	e := newTestEngine(&scriptRand{}, r)
	c, err := e.CreateCharacter(context.Background(), g, "p1")
	if err != nil {
		t.Fatalf("CreateCharacter: %v", err)
	}

	if c.Name != "Zed" || c.PlayerID != "p1" {
		t.Fatalf("unexpected character: %+v", c)
	}
	if c.AgeCategory != party.AgeAdult {
		t.Fatalf("42 is an adult, got %s", c.AgeCategory)
	}
	if g.Party.Size() != 1 {
		t.Fatal("character should join the party")
	}
	if g.Stats.JoinTurns["Zed"] != g.Session.TurnNumber {
		t.Fatalf("join turn should be recorded: %v", g.Stats.JoinTurns)
	}
}

func TestCreateCharacterRejectsInvalidTraits(t *testing.T) {
	g := newPlayingGame()
	r := scriptrender.New()
	r.QueueCreation(ports.CharacterSpec{
		Name:     "Zed",
		Age:      42,
		PosTrait: "heroic",
		NegTrait: party.TraitClumsy,
	})

	e := newTestEngine(&scriptRand{}, r)
	if _, err := e.CreateCharacter(context.Background(), g, "p1"); !errors.Is(err, ErrInvalidTrait) {
		t.Fatalf("expected ErrInvalidTrait, got %v", err)
	}
	if g.Party.Size() != 0 {
		t.Fatal("rejected character must not join")
	}
}

func TestCreateCharacterDrawsDefaultName(t *testing.T) {
	g := newPlayingGame()

	// Nothing queued: the renderer falls back to the first offered name.
	e := newTestEngine(&scriptRand{}, scriptrender.New())
	c, err := e.CreateCharacter(context.Background(), g, "")
	if err != nil {
		t.Fatalf("CreateCharacter: %v", err)
	}
	if c.Name != session.DefaultNames[0] {
		t.Fatalf("expected the first pool name, got %s", c.Name)
	}
	for _, n := range g.Session.NamePool {
		if n == c.Name {
			t.Fatal("a taken name should leave the pool")
		}
	}
}

func TestCreateCharacterNamesSourceTopsUpPool(t *testing.T) {
	g := newPlayingGame()
	r := scriptrender.New()
	r.QueueCreation(ports.CharacterSpec{
		Name:     "Zed",
		Age:      42,
		PosTrait: party.TraitFighter,
		NegTrait: party.TraitClumsy,
	})

	e := newTestEngine(&scriptRand{}, r)
	e.Names = staticNameList{"Xo", "Yara"}
	if _, err := e.CreateCharacter(context.Background(), g, ""); err != nil {
		t.Fatalf("CreateCharacter: %v", err)
	}

	found := false
	for _, n := range g.Session.NamePool {
		if n == "Yara" {
			found = true
		}
	}
	if !found {
		t.Fatalf("external names should top up the pool: %v", g.Session.NamePool)
	}
}

func TestCreateCharacterRejectsFullParty(t *testing.T) {
	g := newPlayingGame()
	for i := 0; i < party.MaxMembers; i++ {
		addMember(t, g, "m", party.TraitResilient, party.TraitVulnerable)
	}

	e := newTestEngine(&scriptRand{}, scriptrender.New())
	if _, err := e.CreateCharacter(context.Background(), g, ""); !errors.Is(err, ErrPartyFull) {
		t.Fatalf("expected ErrPartyFull, got %v", err)
	}
}

type staticNameList []string

func (l staticNameList) Names(context.Context) ([]string, error) {
	return l, nil
}
