package memory

import (
	"context"
	"errors"
	"sync"

	"asset-tracking/internal/domain/entries"
)

// entriesRepo mantiene el log en memoria, en orden de inserción. Útil para
// dev y tests; no sobrevive al proceso.
type entriesRepo struct {
	mu  sync.RWMutex
	log []entries.Entry
	ids map[string]bool
}

func NewEntriesRepo() entries.Repository {
	return &entriesRepo{
		ids: make(map[string]bool),
	}
}

func (r *entriesRepo) Append(ctx context.Context, e entries.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("entry id required")
	}
	if r.ids[e.ID] {
		return errors.New("entry already exists")
	}

	r.ids[e.ID] = true
	r.log = append(r.log, e)
	return nil
}

func (r *entriesRepo) ListAll(ctx context.Context) ([]entries.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entries.Entry, len(r.log))
	copy(out, r.log)
	return out, nil
}
