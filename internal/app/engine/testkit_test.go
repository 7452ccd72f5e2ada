package engine

import (
	"testing"
	"time"

	scriptrender "holdout/internal/adapter/render/script"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
)

// scriptRand replays queued rolls. An exhausted float queue yields 0.99 so
// every remaining chance roll fails; an exhausted int queue yields 0.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptRand) Shuffle(int, func(i, j int)) {}

var testStart = time.Date(2012, time.June, 1, 0, 0, 0, 0, time.UTC)

func newTestEngine(rnd *scriptRand, r *scriptrender.Renderer) Engine {
	return Engine{
		Renderer: r,
		Rand:     rnd,
		Now:      func() time.Time { return testStart },
	}
}

func newPlayingGame() *game.Game {
	g := game.New("g1", testStart)
	g.Session.Status = session.StatusPlaying
	return g
}

// addMember joins a survivor with a birthday that never lands on testStart.
func addMember(t *testing.T, g *game.Game, name string, pos, neg party.Trait) *party.Character {
	t.Helper()
	c := party.NewCharacter(name, 30, pos, neg, time.March, 12, "", g.Session.CurrentDate)
	if !g.Party.AddCharacter(c) {
		t.Fatalf("could not add %s", name)
	}
	g.Stats.RecordJoin(c.Name, g.Session.TurnNumber)
	return c
}

func arm(c *party.Character, weapon string) {
	def, idx, ok := party.WeaponByName(weapon)
	if !ok {
		panic("unknown weapon " + weapon)
	}
	c.WeaponIndex = idx
	c.WeaponDurability = def.Durability
}
