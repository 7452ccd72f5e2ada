// Package scriptrender is a queue-driven renderer: the driver (or a test)
// queues answers up front, the engine consumes them at each suspension
// point, and everything displayed lands in a transcript. With an empty
// queue it falls back to safe defaults rather than blocking.
package scriptrender

import (
	"context"
	"errors"
	"fmt"

	"holdout/internal/app/ports"
	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
	"holdout/internal/domain/stats"
)

var ErrNoQueuedCreation = errors.New("no queued character creation")

type Renderer struct {
	choices       []string
	confirms      []bool
	inputs        []string
	combatActions []ports.CombatAction
	targets       []int
	creations     []ports.CharacterSpec

	Transcript []string
	GameOver   *stats.Stats
}

func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) QueueChoice(id string)                  { r.choices = append(r.choices, id) }
func (r *Renderer) QueueConfirm(v bool)                    { r.confirms = append(r.confirms, v) }
func (r *Renderer) QueueInput(v string)                    { r.inputs = append(r.inputs, v) }
func (r *Renderer) QueueCombatAction(a ports.CombatAction) { r.combatActions = append(r.combatActions, a) }
func (r *Renderer) QueueTarget(id int)                     { r.targets = append(r.targets, id) }
func (r *Renderer) QueueCreation(spec ports.CharacterSpec) { r.creations = append(r.creations, spec) }

func (r *Renderer) DisplayEvent(_ context.Context, text string, style ports.Style) {
	r.Transcript = append(r.Transcript, fmt.Sprintf("[%s] %s", style, text))
}

func (r *Renderer) DisplayEvents(ctx context.Context, lines []string) {
	for _, line := range lines {
		r.DisplayEvent(ctx, line, ports.StyleNormal)
	}
}

func (r *Renderer) PromptChoice(_ context.Context, _ string, options []ports.ChoiceOption) (string, error) {
	if len(r.choices) > 0 {
		id := r.choices[0]
		r.choices = r.choices[1:]
		return id, nil
	}
	for _, opt := range options {
		if !opt.Disabled {
			return opt.ID, nil
		}
	}
	return "", errors.New("no selectable option")
}

func (r *Renderer) PromptConfirm(_ context.Context, _ string) (bool, error) {
	if len(r.confirms) > 0 {
		v := r.confirms[0]
		r.confirms = r.confirms[1:]
		return v, nil
	}
	return false, nil
}

func (r *Renderer) PromptInput(_ context.Context, _ string) (string, error) {
	if len(r.inputs) > 0 {
		v := r.inputs[0]
		r.inputs = r.inputs[1:]
		return v, nil
	}
	return "", nil
}

func (r *Renderer) UpdateStats(context.Context, *party.Character)          {}
func (r *Renderer) DisplayPartyStatus(context.Context, []*party.Character) {}
func (r *Renderer) DisplayInventory(context.Context, *party.Inventory)     {}

func (r *Renderer) NotifyPlayerTurn(_ context.Context, playerID, characterName string) {
	r.Transcript = append(r.Transcript, fmt.Sprintf("[turn] %s (%s)", characterName, playerID))
}

func (r *Renderer) PromptCombatAction(context.Context, *party.Character) (ports.CombatAction, error) {
	if len(r.combatActions) > 0 {
		a := r.combatActions[0]
		r.combatActions = r.combatActions[1:]
		return a, nil
	}
	return ports.CombatAttack, nil
}

func (r *Renderer) PromptAttackTarget(_ context.Context, enemies []*session.Enemy) (int, error) {
	if len(r.targets) > 0 {
		id := r.targets[0]
		r.targets = r.targets[1:]
		return id, nil
	}
	if len(enemies) > 0 {
		return enemies[0].ID, nil
	}
	return 0, nil
}

func (r *Renderer) DisplayCombat(context.Context, *session.CombatState) {}

func (r *Renderer) PromptCharacterCreation(_ context.Context, availableNames []string, playerID string) (ports.CharacterSpec, error) {
	if len(r.creations) > 0 {
		spec := r.creations[0]
		r.creations = r.creations[1:]
		if spec.PlayerID == "" {
			spec.PlayerID = playerID
		}
		return spec, nil
	}
	if len(availableNames) == 0 {
		return ports.CharacterSpec{}, ErrNoQueuedCreation
	}
	// Default NPC: first available name, adult, unremarkable traits.
	return ports.CharacterSpec{
		Name:       availableNames[0],
		Age:        30,
		PosTrait:   party.TraitResilient,
		NegTrait:   party.TraitHungry,
		BirthMonth: 6,
		BirthDay:   15,
		PlayerID:   playerID,
	}, nil
}

func (r *Renderer) HandleGameOver(_ context.Context, s *stats.Stats) {
	r.GameOver = s
	r.Transcript = append(r.Transcript, "[game-over]")
}
