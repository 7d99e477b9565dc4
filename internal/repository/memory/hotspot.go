package memory

import (
	"context"
	"sort"

	"panomap/internal/model"
	"panomap/internal/repository"
)

type HotSpotRepo struct {
	s *Store
}

func (r *HotSpotRepo) Create(_ context.Context, h *model.HotSpot) (*model.HotSpot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := cloneHotSpot(*h)
	stored.ID = 0
	if err := r.s.checkHotSpotRefsLocked(&stored); err != nil {
		return nil, err
	}
	r.s.hotspotSeq++
	stored.ID = r.s.hotspotSeq
	r.s.hotspots[stored.ID] = stored

	out := cloneHotSpot(stored)
	return &out, nil
}

func (r *HotSpotRepo) Update(_ context.Context, h *model.HotSpot) (*model.HotSpot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.hotspots[h.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := cloneHotSpot(*h)
	if err := r.s.checkHotSpotRefsLocked(&stored); err != nil {
		return nil, err
	}
	r.s.hotspots[h.ID] = stored

	out := cloneHotSpot(stored)
	return &out, nil
}

func (r *HotSpotRepo) FindByID(_ context.Context, id int64) (*model.HotSpot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	h, ok := r.s.hotspots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneHotSpot(h)
	return &out, nil
}

func (r *HotSpotRepo) ListByPanorama(_ context.Context, panoramaID int64) ([]model.HotSpot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]model.HotSpot, 0)
	for _, h := range r.s.hotspots {
		if h.PanoramaID == panoramaID {
			items = append(items, cloneHotSpot(h))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.PanoramaID != b.PanoramaID {
			return a.PanoramaID < b.PanoramaID
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
	return items, nil
}

func (r *HotSpotRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.hotspots[id]; !ok {
		return repository.ErrNotFound
	}
	r.s.deleteHotSpotLocked(id)
	return nil
}
