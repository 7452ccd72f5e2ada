package model

import "time"

// GameState stores one game's serialized document plus the optimistic
// version used by SaveWithVersion.
type GameState struct {
	GameID    string `gorm:"column:game_id;primaryKey"`
	Doc       []byte `gorm:"column:doc"`
	Version   int64  `gorm:"column:version;not null"`
	UpdatedAt time.Time
}

func (GameState) TableName() string { return "game_states" }
