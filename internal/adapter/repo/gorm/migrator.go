package gormrepo

import (
	"context"
	"fmt"

	"holdout/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

// EnsureSchema creates or updates the single document table. The game state
// is one JSON column, so structural migrations stay out of SQL files.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.GameState{}); err != nil {
		return fmt.Errorf("migrate game_states: %w", err)
	}
	return nil
}
