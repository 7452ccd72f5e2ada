package memory

import "sync"

// Store keeps serialized game documents keyed by game id. Documents are
// stored as JSON bytes so reads never alias live aggregates.
type Store struct {
	mu    sync.RWMutex
	games map[string]record
}

type record struct {
	doc     []byte
	version int64
}

func NewStore() *Store {
	return &Store{games: make(map[string]record)}
}
