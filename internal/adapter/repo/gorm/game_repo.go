package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"holdout/internal/adapter/repo/gorm/model"
	"holdout/internal/app/ports"
	"holdout/internal/domain/game"

	"gorm.io/gorm"
)

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) GameRepo {
	return GameRepo{db: db}
}

func (r GameRepo) GetByID(ctx context.Context, id string) (*game.Game, error) {
	var m model.GameState
	if err := r.db.WithContext(ctx).Where("game_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var doc game.Document
	if err := json.Unmarshal(m.Doc, &doc); err != nil {
		return nil, err
	}
	return game.FromDocument(doc)
}

func (r GameRepo) SaveWithVersion(ctx context.Context, g *game.Game, expectedVersion int64) error {
	raw, err := json.Marshal(g.Document())
	if err != nil {
		return err
	}
	db := r.db.WithContext(ctx)

	if expectedVersion == 0 {
		m := model.GameState{GameID: g.ID, Doc: raw, Version: g.Version}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		return nil
	}

	res := db.Model(&model.GameState{}).
		Where("game_id = ? AND version = ?", g.ID, expectedVersion).
		Updates(map[string]any{"doc": raw, "version": g.Version})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
