package memory

import (
	"context"
	"sort"

	"panomap/internal/model"
	"panomap/internal/repository"
)

type MonumentRepo struct {
	s *Store
}

func (r *MonumentRepo) Create(_ context.Context, m *model.Monument) (*model.Monument, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.monumentSeq++
	stored := cloneMonument(*m)
	stored.ID = r.s.monumentSeq
	r.s.monuments[stored.ID] = stored

	out := cloneMonument(stored)
	return &out, nil
}

func (r *MonumentRepo) Update(_ context.Context, m *model.Monument) (*model.Monument, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.monuments[m.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := cloneMonument(*m)
	r.s.monuments[m.ID] = stored

	out := cloneMonument(stored)
	return &out, nil
}

func (r *MonumentRepo) FindByID(_ context.Context, id int64) (*model.Monument, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.monuments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneMonument(m)
	return &out, nil
}

func (r *MonumentRepo) List(_ context.Context) ([]model.Monument, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]model.Monument, 0, len(r.s.monuments))
	for _, m := range r.s.monuments {
		items = append(items, cloneMonument(m))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *MonumentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.monuments[id]; !ok {
		return repository.ErrNotFound
	}
	r.s.deleteMonumentLocked(id)
	return nil
}
