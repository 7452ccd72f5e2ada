package ports

import (
	"context"

	"holdout/internal/domain/game"
)

type GameRepository interface {
	GetByID(ctx context.Context, id string) (*game.Game, error)
	// SaveWithVersion persists the aggregate iff the stored version still
	// matches expectedVersion (0 means "must not exist yet").
	SaveWithVersion(ctx context.Context, g *game.Game, expectedVersion int64) error
}
