package memory

import (
	"context"
	"encoding/json"

	"holdout/internal/app/ports"
	"holdout/internal/domain/game"
)

type GameRepo struct {
	store *Store
}

func NewGameRepo(store *Store) GameRepo {
	return GameRepo{store: store}
}

func (r GameRepo) GetByID(_ context.Context, id string) (*game.Game, error) {
	r.store.mu.RLock()
	rec, ok := r.store.games[id]
	r.store.mu.RUnlock()
	if !ok {
		return nil, ports.ErrNotFound
	}
	var doc game.Document
	if err := json.Unmarshal(rec.doc, &doc); err != nil {
		return nil, err
	}
	return game.FromDocument(doc)
}

func (r GameRepo) SaveWithVersion(_ context.Context, g *game.Game, expectedVersion int64) error {
	raw, err := json.Marshal(g.Document())
	if err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.games[g.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.games[g.ID] = record{doc: raw, version: g.Version}
		return nil
	}
	if current.version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.games[g.ID] = record{doc: raw, version: g.Version}
	return nil
}
