package memory

import (
	"context"
	"sort"

	"panomap/internal/model"
	"panomap/internal/repository"
)

type PanoramaRepo struct {
	s *Store
}

func (r *PanoramaRepo) Create(_ context.Context, p *model.Panorama) (*model.Panorama, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.monuments[p.MonumentID]; !ok {
		return nil, repository.ErrInvalidReference
	}
	r.s.panoramaSeq++
	stored := *p
	stored.ID = r.s.panoramaSeq
	stored.ImageURL = ""
	r.s.panoramas[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *PanoramaRepo) Update(_ context.Context, p *model.Panorama) (*model.Panorama, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.panoramas[p.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	if _, ok := r.s.monuments[p.MonumentID]; !ok {
		return nil, repository.ErrInvalidReference
	}
	stored := *p
	stored.ImageURL = ""
	r.s.panoramas[p.ID] = stored

	out := stored
	return &out, nil
}

func (r *PanoramaRepo) FindByID(_ context.Context, id int64) (*model.Panorama, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.panoramas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *PanoramaRepo) ListByMonument(_ context.Context, monumentID int64) ([]model.Panorama, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]model.Panorama, 0)
	for _, p := range r.s.panoramas {
		if p.MonumentID == monumentID {
			items = append(items, p)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *PanoramaRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.panoramas[id]; !ok {
		return repository.ErrNotFound
	}
	r.s.deletePanoramaLocked(id)
	return nil
}
