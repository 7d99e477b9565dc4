// Package memory keeps monuments, panoramas and hotspots in process memory with the
// same referential behavior as the PostgreSQL schema: deletes cascade down the
// monument → panorama → hotspot chain, while target and entry references are nulled.
package memory

import (
	"sync"

	"panomap/internal/model"
	"panomap/internal/repository"
)

// Store is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	monuments map[int64]model.Monument
	panoramas map[int64]model.Panorama
	hotspots  map[int64]model.HotSpot

	monumentSeq int64
	panoramaSeq int64
	hotspotSeq  int64
}

func NewStore() *Store {
	return &Store{
		monuments: make(map[int64]model.Monument),
		panoramas: make(map[int64]model.Panorama),
		hotspots:  make(map[int64]model.HotSpot),
	}
}

func (s *Store) Monuments() *MonumentRepo { return &MonumentRepo{s: s} }
func (s *Store) Panoramas() *PanoramaRepo { return &PanoramaRepo{s: s} }
func (s *Store) HotSpots() *HotSpotRepo   { return &HotSpotRepo{s: s} }

var (
	_ repository.MonumentRepository = (*MonumentRepo)(nil)
	_ repository.PanoramaRepository = (*PanoramaRepo)(nil)
	_ repository.HotSpotRepository  = (*HotSpotRepo)(nil)
)

func (s *Store) deleteMonumentLocked(id int64) {
	for pid, p := range s.panoramas {
		if p.MonumentID == id {
			s.deletePanoramaLocked(pid)
		}
	}
	delete(s.monuments, id)
}

func (s *Store) deletePanoramaLocked(id int64) {
	for hid, h := range s.hotspots {
		if h.PanoramaID == id {
			s.deleteHotSpotLocked(hid)
		}
	}
	for hid, h := range s.hotspots {
		if h.TargetPanoramaID != nil && *h.TargetPanoramaID == id {
			h.TargetPanoramaID = nil
			s.hotspots[hid] = h
		}
	}
	delete(s.panoramas, id)
}

func (s *Store) deleteHotSpotLocked(id int64) {
	delete(s.hotspots, id)
	for hid, h := range s.hotspots {
		if h.EntryHotSpotID != nil && *h.EntryHotSpotID == id {
			h.EntryHotSpotID = nil
			s.hotspots[hid] = h
		}
	}
}

func (s *Store) checkHotSpotRefsLocked(h *model.HotSpot) error {
	if _, ok := s.panoramas[h.PanoramaID]; !ok {
		return repository.ErrInvalidReference
	}
	if h.TargetPanoramaID != nil {
		if _, ok := s.panoramas[*h.TargetPanoramaID]; !ok {
			return repository.ErrInvalidReference
		}
	}
	if h.EntryHotSpotID != nil {
		if _, ok := s.hotspots[*h.EntryHotSpotID]; !ok {
			return repository.ErrInvalidReference
		}
	}
	return nil
}

func cloneMonument(m model.Monument) model.Monument {
	m.Latitude = clonePtr(m.Latitude)
	m.Longitude = clonePtr(m.Longitude)
	return m
}

func cloneHotSpot(h model.HotSpot) model.HotSpot {
	h.Image = clonePtr(h.Image)
	h.TargetPanoramaID = clonePtr(h.TargetPanoramaID)
	h.TargetPitch = clonePtr(h.TargetPitch)
	h.TargetYaw = clonePtr(h.TargetYaw)
	h.EntryHotSpotID = clonePtr(h.EntryHotSpotID)
	h.ImageURL = ""
	return h
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
