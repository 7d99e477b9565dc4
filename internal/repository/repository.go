package repository

import (
	"context"
	"errors"

	"panomap/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, memory) and contain no business logic.

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidReference is returned when a write points at a row that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// MonumentRepository defines data access for monuments.
type MonumentRepository interface {
	// Create inserts a new monument and returns it with its assigned ID.
	Create(ctx context.Context, m *model.Monument) (*model.Monument, error)

	// Update overwrites all fields of an existing monument.
	Update(ctx context.Context, m *model.Monument) (*model.Monument, error)

	// FindByID returns a monument by its ID.
	FindByID(ctx context.Context, id int64) (*model.Monument, error)

	// List returns every monument in storage order.
	List(ctx context.Context) ([]model.Monument, error)

	// Delete removes a monument. Its panoramas and their hotspots go with it.
	Delete(ctx context.Context, id int64) error
}

// PanoramaRepository defines data access for panoramas.
type PanoramaRepository interface {
	Create(ctx context.Context, p *model.Panorama) (*model.Panorama, error)
	Update(ctx context.Context, p *model.Panorama) (*model.Panorama, error)
	FindByID(ctx context.Context, id int64) (*model.Panorama, error)

	// ListByMonument returns the panoramas attached to a monument.
	ListByMonument(ctx context.Context, monumentID int64) ([]model.Panorama, error)

	// Delete removes a panorama and its hotspots. Hotspots on other panoramas that
	// targeted it keep existing with no target.
	Delete(ctx context.Context, id int64) error
}

// HotSpotRepository defines data access for hotspots.
type HotSpotRepository interface {
	Create(ctx context.Context, h *model.HotSpot) (*model.HotSpot, error)
	Update(ctx context.Context, h *model.HotSpot) (*model.HotSpot, error)
	FindByID(ctx context.Context, id int64) (*model.HotSpot, error)

	// ListByPanorama returns the hotspots of a panorama ordered by (panorama, title).
	ListByPanorama(ctx context.Context, panoramaID int64) ([]model.HotSpot, error)

	// Delete removes a hotspot. Hotspots using it as an entry point lose the reference.
	Delete(ctx context.Context, id int64) error
}
