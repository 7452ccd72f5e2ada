package engine

import (
	"context"
	"fmt"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
)

// startCombat rolls an enemy group and enters the combat state machine. The
// zombie and hostile-survivor variants share the machine; they differ only
// in stat ranges, miss flavor and the zombie-only infection risk.
func (e Engine) startCombat(ctx context.Context, g *game.Game, kind session.CombatKind) error {
	s := g.Session
	count := 1 + e.Rand.Intn(2)
	enemies := make([]*session.Enemy, 0, count)
	for i := 0; i < count; i++ {
		enemy := &session.Enemy{ID: i + 1, Kind: kind}
		if kind == session.CombatZombie {
			enemy.MaxHP = 3 + e.Rand.Intn(3)
			enemy.Attack = 1 + e.Rand.Intn(2)
			enemy.Morale = 1 + e.Rand.Intn(5)
		} else {
			enemy.MaxHP = 4 + e.Rand.Intn(3)
			enemy.Attack = 2 + e.Rand.Intn(2)
			enemy.Morale = 2 + e.Rand.Intn(5)
		}
		enemy.HP = enemy.MaxHP
		enemies = append(enemies, enemy)
	}

	s.Combat = session.NewCombatState(kind, g.Party.Members, enemies)
	s.InCombat = true
	s.Status = session.StatusCombat

	if kind == session.CombatZombie {
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%d shambling dead lurch out of the dark!", count), ports.StyleDanger)
	} else {
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%d hostile survivors attack!", count), ports.StyleDanger)
	}
	e.Renderer.DisplayCombat(ctx, s.Combat)

	return e.runCombat(ctx, g)
}

// runCombat drives the turn-ordered loop until one side is wholly defeated.
// Downed combatants are skipped in place so indices stay stable. A renderer
// failure mid-fight returns with the state intact; the next PlayTurn
// resumes here.
func (e Engine) runCombat(ctx context.Context, g *game.Game) error {
	s := g.Session
	cs := s.Combat

	for {
		if cs.EnemiesDefeated() {
			e.Renderer.DisplayEvent(ctx, "The last attacker drops. The fight is over.", ports.StyleSuccess)
			for _, c := range g.Party.Members {
				c.Morale++
				c.CapAttributes()
			}
			e.endCombat(g)
			return nil
		}
		if g.Party.Size() == 0 {
			e.endCombat(g)
			return nil
		}

		cur := cs.Current()
		if cur.IsEnemy() {
			if cur.Enemy != nil && cur.Enemy.Alive() {
				if err := e.enemyCombatTurn(ctx, g, cur.Enemy); err != nil {
					return err
				}
			}
			cs.Advance()
			continue
		}

		c := g.Party.MemberByID(cur.CharacterID)
		if c == nil || c.Health <= 0 {
			cs.Advance()
			continue
		}
		if err := e.playerCombatTurn(ctx, g, cs, c); err != nil {
			return err
		}
		cs.Advance()
	}
}

func (e Engine) endCombat(g *game.Game) {
	s := g.Session
	s.InCombat = false
	s.Combat = nil
	if s.Status == session.StatusCombat {
		s.Status = session.StatusPlaying
	}
}

// playerCombatTurn loops on the action prompt until the member spends the
// turn. Swapping weapons is a free action; an item use that turns out to be
// impossible just re-prompts.
func (e Engine) playerCombatTurn(ctx context.Context, g *game.Game, cs *session.CombatState, c *party.Character) error {
	e.Renderer.NotifyPlayerTurn(ctx, c.PlayerID, c.Name)

	for {
		action, err := e.Renderer.PromptCombatAction(ctx, c)
		if err != nil {
			return err
		}

		switch action {
		case ports.CombatWeapon:
			if err := e.promptWeaponSwap(ctx, g, c); err != nil {
				return err
			}
			continue
		case ports.CombatFood:
			used, err := e.promptFoodUse(ctx, g, c)
			if err != nil {
				return err
			}
			if !used {
				continue
			}
			return nil
		case ports.CombatMedical:
			used, err := e.promptMedicalUse(ctx, g, c)
			if err != nil {
				return err
			}
			if !used {
				continue
			}
			return nil
		}

		return e.resolveAttack(ctx, g, cs, c)
	}
}

// resolveAttack spends the member's combat turn on an attack. One roll
// decides miss (<0.1), the clumsy fumble band ([0.1,0.2)) and the critical
// (>0.9).
func (e Engine) resolveAttack(ctx context.Context, g *game.Game, cs *session.CombatState, c *party.Character) error {
	targetID, err := e.Renderer.PromptAttackTarget(ctx, cs.LivingEnemies())
	if err != nil {
		return err
	}
	enemy := cs.EnemyByID(targetID)
	if enemy == nil || !enemy.Alive() {
		living := cs.LivingEnemies()
		if len(living) == 0 {
			return nil
		}
		enemy = living[0]
	}

	weapon := c.Weapon()
	g.Stats.RecordWeaponUse(weapon.Name)
	roll := e.Rand.Float64()

	switch {
	case roll < 0.1:
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s swings wide and misses.", c.Name), ports.StyleWarning)
	case c.HasTrait(party.TraitClumsy) && roll < 0.2:
		c.Health--
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s fumbles the attack and gets hurt!", c.Name), ports.StyleWarning)
		if c.Health <= 0 {
			return e.handleCharacterDeath(ctx, g, c, fmt.Sprintf("%s's fumble is the last mistake they ever make.", c.Name))
		}
		c.CapAttributes()
	default:
		dmg := weapon.Damage
		if c.HasTrait(party.TraitFighter) {
			dmg++
		}
		if roll > 0.9 {
			dmg *= 2
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s lands a devastating blow with the %s!", c.Name, weapon.Name), ports.StyleSuccess)
		} else {
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s hits for %d with the %s.", c.Name, dmg, weapon.Name), ports.StyleNormal)
		}
		enemy.HP -= dmg
		if !enemy.Alive() {
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s takes the attacker down!", c.Name), ports.StyleSuccess)
			g.Stats.RecordKill(weapon.Name)
		}
	}

	e.wearWeapon(ctx, c)
	return nil
}

// wearWeapon applies durability loss after an attack: none for a fighter on
// a 50% preserve, double for the clumsy. A spent weapon reverts to fists.
func (e Engine) wearWeapon(ctx context.Context, c *party.Character) {
	if c.WeaponIndex == party.FistsIndex {
		return
	}
	loss := 1
	if c.HasTrait(party.TraitFighter) && e.chance(0.5) {
		loss = 0
	} else if c.HasTrait(party.TraitClumsy) {
		loss = 2
	}
	c.WeaponDurability -= loss
	if c.WeaponDurability <= 0 {
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s's %s breaks apart!", c.Name, c.Weapon().Name), ports.StyleWarning)
		c.WeaponIndex = party.FistsIndex
		c.WeaponDurability = party.Weapons[party.FistsIndex].Durability
	}
}

// enemyCombatTurn picks a uniformly random living target. Only zombie hits
// carry the infection roll; hostile survivors never infect.
func (e Engine) enemyCombatTurn(ctx context.Context, g *game.Game, enemy *session.Enemy) error {
	living := make([]*party.Character, 0, g.Party.Size())
	for _, c := range g.Party.Members {
		if c.Health > 0 {
			living = append(living, c)
		}
	}
	if len(living) == 0 {
		return nil
	}
	target := living[e.Rand.Intn(len(living))]

	if e.chance(0.2) {
		if enemy.Kind == session.CombatZombie {
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("A zombie claws at %s and catches only air.", target.Name), ports.StyleNormal)
		} else {
			e.Renderer.DisplayEvent(ctx, fmt.Sprintf("A raider's swing goes wide of %s.", target.Name), ports.StyleNormal)
		}
		return nil
	}

	dmg := enemy.Attack
	if target.HasTrait(party.TraitVulnerable) {
		dmg++
	}
	target.Health -= dmg
	e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s takes %d damage!", target.Name, dmg), ports.StyleDanger)

	if target.Health <= 0 {
		return e.handleCharacterDeath(ctx, g, target, fmt.Sprintf("%s is cut down in the fight.", target.Name))
	}

	if enemy.Kind == session.CombatZombie && e.chance(0.05) {
		target.Infected = true
		e.Renderer.DisplayEvent(ctx, fmt.Sprintf("The bite on %s looks bad. Very bad.", target.Name), ports.StyleDanger)
	}

	target.CapAttributes()
	e.Renderer.UpdateStats(ctx, target)
	return nil
}
