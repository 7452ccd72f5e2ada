package engine

import (
	"context"
	"fmt"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
	"holdout/internal/domain/party"
)

// Item actions report false for anything not applicable: item not held,
// wrong catalog, or the per-turn flag already spent. Never an error.

// UseFood feeds one member from the shared inventory.
func (e Engine) UseFood(ctx context.Context, g *game.Game, c *party.Character, name string) bool {
	if c.Actions.Food {
		return false
	}
	def, ok := party.FoodByName(name)
	if !ok {
		return false
	}
	if !g.Party.Inventory.Remove(name) {
		return false
	}
	c.Hunger += def.Restore
	c.Actions.Food = true
	c.CapAttributes()
	g.Stats.RecordFood()
	e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s eats %s.", c.Name, name), ports.StyleNormal)
	e.Renderer.UpdateStats(ctx, c)
	return true
}

// UseMedical treats one member; curative items also clear sickness and
// infection.
func (e Engine) UseMedical(ctx context.Context, g *game.Game, c *party.Character, name string) bool {
	if c.Actions.Medical {
		return false
	}
	def, ok := party.MedicalByName(name)
	if !ok {
		return false
	}
	if !g.Party.Inventory.Remove(name) {
		return false
	}
	c.Health += def.Restore
	if def.Cures {
		c.Sick = false
		c.Infected = false
	}
	c.Actions.Medical = true
	c.CapAttributes()
	g.Stats.RecordMedical()
	e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s uses %s.", c.Name, name), ports.StyleNormal)
	e.Renderer.UpdateStats(ctx, c)
	return true
}

// EquipWeapon swaps the member onto a weapon held in the inventory. The old
// weapon is shelved with its remaining durability; the new stack's tracked
// value becomes the equipped durability.
func (e Engine) EquipWeapon(ctx context.Context, g *game.Game, c *party.Character, name string) bool {
	_, idx, ok := party.WeaponByName(name)
	if !ok || idx == party.FistsIndex {
		return false
	}
	stack, ok := g.Party.Inventory.Get(name)
	if !ok {
		return false
	}
	g.Party.Inventory.Remove(name)
	if c.WeaponIndex != party.FistsIndex {
		g.Party.Inventory.Add(c.Weapon().Name, float64(c.WeaponDurability))
	}
	c.WeaponIndex = idx
	c.WeaponDurability = int(stack.Value)
	e.Renderer.DisplayEvent(ctx, fmt.Sprintf("%s equips the %s.", c.Name, name), ports.StyleInfo)
	e.Renderer.UpdateStats(ctx, c)
	return true
}

// promptFoodUse lets a member pick a food item; reports whether one was
// actually consumed.
func (e Engine) promptFoodUse(ctx context.Context, g *game.Game, c *party.Character) (bool, error) {
	food := g.Party.Inventory.ByCategory().Food
	if len(food) == 0 || c.Actions.Food {
		e.Renderer.DisplayEvent(ctx, "No food to be had.", ports.StyleWarning)
		return false, nil
	}
	choice, err := e.promptItemChoice(ctx, "Eat what?", food)
	if err != nil {
		return false, err
	}
	if choice == "" {
		return false, nil
	}
	return e.UseFood(ctx, g, c, choice), nil
}

func (e Engine) promptMedicalUse(ctx context.Context, g *game.Game, c *party.Character) (bool, error) {
	meds := g.Party.Inventory.ByCategory().Medical
	if len(meds) == 0 || c.Actions.Medical {
		e.Renderer.DisplayEvent(ctx, "Nothing in the medkit.", ports.StyleWarning)
		return false, nil
	}
	choice, err := e.promptItemChoice(ctx, "Use which supply?", meds)
	if err != nil {
		return false, err
	}
	if choice == "" {
		return false, nil
	}
	return e.UseMedical(ctx, g, c, choice), nil
}

// promptWeaponSwap offers the shelved weapons. A free action in combat.
func (e Engine) promptWeaponSwap(ctx context.Context, g *game.Game, c *party.Character) error {
	weapons := g.Party.Inventory.ByCategory().Weapons
	if len(weapons) == 0 {
		e.Renderer.DisplayEvent(ctx, "No spare weapons in the pack.", ports.StyleWarning)
		return nil
	}
	choice, err := e.promptItemChoice(ctx, "Switch to which weapon?", weapons)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}
	e.EquipWeapon(ctx, g, c, choice)
	return nil
}

func (e Engine) promptItemChoice(ctx context.Context, prompt string, stacks []party.ItemStack) (string, error) {
	options := make([]ports.ChoiceOption, 0, len(stacks)+1)
	for _, s := range stacks {
		options = append(options, ports.ChoiceOption{
			ID:    s.Name,
			Label: fmt.Sprintf("%s x%d", s.Name, s.Quantity),
		})
	}
	options = append(options, ports.ChoiceOption{ID: "cancel", Label: "Never mind"})
	choice, err := e.Renderer.PromptChoice(ctx, prompt, options)
	if err != nil {
		return "", err
	}
	if choice == "cancel" {
		return "", nil
	}
	return choice, nil
}
