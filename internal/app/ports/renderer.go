package ports

import (
	"context"
	"errors"
	"time"

	"holdout/internal/domain/party"
	"holdout/internal/domain/session"
	"holdout/internal/domain/stats"
)

var ErrPromptNotSupported = errors.New("prompt not supported by renderer")

type Style string

const (
	StyleNormal  Style = "normal"
	StyleWarning Style = "warning"
	StyleDanger  Style = "danger"
	StyleSuccess Style = "success"
	StyleInfo    Style = "info"
)

type ChoiceOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

type CombatAction string

const (
	CombatAttack  CombatAction = "attack"
	CombatWeapon  CombatAction = "weapon"
	CombatFood    CombatAction = "food"
	CombatMedical CombatAction = "medical"
)

// CharacterSpec is what character creation resolves to. An empty PlayerID
// marks an NPC.
type CharacterSpec struct {
	Name       string      `json:"name"`
	Age        int         `json:"age"`
	PosTrait   party.Trait `json:"pos_trait"`
	NegTrait   party.Trait `json:"neg_trait"`
	BirthMonth time.Month  `json:"birth_month"`
	BirthDay   int         `json:"birth_day"`
	PlayerID   string      `json:"player_id,omitempty"`
}

// Renderer is the engine's only outward interface. Display calls are
// fire-and-forget narration; prompt calls are suspension points whose
// errors (timeout, disconnect) the engine propagates without retrying.
type Renderer interface {
	DisplayEvent(ctx context.Context, text string, style Style)
	DisplayEvents(ctx context.Context, lines []string)
	PromptChoice(ctx context.Context, prompt string, options []ChoiceOption) (string, error)
	PromptConfirm(ctx context.Context, prompt string) (bool, error)
	PromptInput(ctx context.Context, prompt string) (string, error)
	UpdateStats(ctx context.Context, c *party.Character)
	DisplayPartyStatus(ctx context.Context, members []*party.Character)
	DisplayInventory(ctx context.Context, inv *party.Inventory)
	NotifyPlayerTurn(ctx context.Context, playerID, characterName string)
	PromptCombatAction(ctx context.Context, c *party.Character) (CombatAction, error)
	PromptAttackTarget(ctx context.Context, enemies []*session.Enemy) (int, error)
	DisplayCombat(ctx context.Context, cs *session.CombatState)
	PromptCharacterCreation(ctx context.Context, availableNames []string, playerID string) (CharacterSpec, error)
	HandleGameOver(ctx context.Context, s *stats.Stats)
}

// UnimplementedRenderer gives a new renderer explicit defaults: display
// calls discard their input, prompt calls fail loudly with
// ErrPromptNotSupported rather than masking the gap.
type UnimplementedRenderer struct{}

func (UnimplementedRenderer) DisplayEvent(context.Context, string, Style)         {}
func (UnimplementedRenderer) DisplayEvents(context.Context, []string)             {}
func (UnimplementedRenderer) UpdateStats(context.Context, *party.Character)       {}
func (UnimplementedRenderer) DisplayPartyStatus(context.Context, []*party.Character) {}
func (UnimplementedRenderer) DisplayInventory(context.Context, *party.Inventory)  {}
func (UnimplementedRenderer) NotifyPlayerTurn(context.Context, string, string)    {}
func (UnimplementedRenderer) DisplayCombat(context.Context, *session.CombatState) {}
func (UnimplementedRenderer) HandleGameOver(context.Context, *stats.Stats)        {}

func (UnimplementedRenderer) PromptChoice(context.Context, string, []ChoiceOption) (string, error) {
	return "", ErrPromptNotSupported
}

func (UnimplementedRenderer) PromptConfirm(context.Context, string) (bool, error) {
	return false, ErrPromptNotSupported
}

func (UnimplementedRenderer) PromptInput(context.Context, string) (string, error) {
	return "", ErrPromptNotSupported
}

func (UnimplementedRenderer) PromptCombatAction(context.Context, *party.Character) (CombatAction, error) {
	return "", ErrPromptNotSupported
}

func (UnimplementedRenderer) PromptAttackTarget(context.Context, []*session.Enemy) (int, error) {
	return 0, ErrPromptNotSupported
}

func (UnimplementedRenderer) PromptCharacterCreation(context.Context, []string, string) (CharacterSpec, error) {
	return CharacterSpec{}, ErrPromptNotSupported
}
