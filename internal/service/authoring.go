package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"panomap/internal/model"
	"panomap/internal/repository"
	"panomap/internal/storage"
)

const (
	panoramaPrefix = "panoramas"
	hotspotPrefix  = "hotspots"
)

// Upload is an image to store alongside a record.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	// Size is the exact length in bytes, or -1 when unknown.
	Size int64
}

// AuthoringService is the write boundary for monuments, panoramas and hotspots. It
// validates declarative constraints and applies save-time defaults; it is used by
// import tooling rather than the public HTTP API.
type AuthoringService interface {
	CreateMonument(ctx context.Context, m model.Monument) (*model.Monument, error)
	UpdateMonument(ctx context.Context, m model.Monument) (*model.Monument, error)
	// DeleteMonument removes the monument, its panoramas and hotspots, then their images.
	DeleteMonument(ctx context.Context, id int64) error

	// CreatePanorama uploads the image and stores the panorama. The upload is removed
	// again if the record cannot be saved.
	CreatePanorama(ctx context.Context, p model.Panorama, img Upload) (*model.Panorama, error)
	UpdatePanorama(ctx context.Context, p model.Panorama) (*model.Panorama, error)
	// DeletePanorama removes the panorama and its hotspots, then their images. Links from
	// other panoramas survive without a target.
	DeletePanorama(ctx context.Context, id int64) error

	// SaveHotSpot creates (ID == 0) or updates a hotspot after applying target defaults.
	// img is optional and replaces the stored image reference when given.
	SaveHotSpot(ctx context.Context, h model.HotSpot, img *Upload) (*model.HotSpot, error)
	DeleteHotSpot(ctx context.Context, id int64) error
}

type authoringService struct {
	store     storage.Storage
	monuments repository.MonumentRepository
	panoramas repository.PanoramaRepository
	hotspots  repository.HotSpotRepository
}

// NewAuthoringService constructs an AuthoringService.
func NewAuthoringService(
	store storage.Storage,
	monuments repository.MonumentRepository,
	panoramas repository.PanoramaRepository,
	hotspots repository.HotSpotRepository,
) AuthoringService {
	return &authoringService{
		store:     store,
		monuments: monuments,
		panoramas: panoramas,
		hotspots:  hotspots,
	}
}

func (s *authoringService) CreateMonument(ctx context.Context, m model.Monument) (*model.Monument, error) {
	if err := validate(&m); err != nil {
		return nil, err
	}
	out, err := s.monuments.Create(ctx, &m)
	if err != nil {
		return nil, fmt.Errorf("create monument: %w", err)
	}
	return out, nil
}

func (s *authoringService) UpdateMonument(ctx context.Context, m model.Monument) (*model.Monument, error) {
	if m.ID <= 0 {
		return nil, ErrIDRequired
	}
	if err := validate(&m); err != nil {
		return nil, err
	}
	out, err := s.monuments.Update(ctx, &m)
	if err != nil {
		return nil, mapRepoError("monument", m.ID, err)
	}
	return out, nil
}

func (s *authoringService) DeleteMonument(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	if _, err := s.monuments.FindByID(ctx, id); err != nil {
		return mapRepoError("monument", id, err)
	}
	panoramas, err := s.panoramas.ListByMonument(ctx, id)
	if err != nil {
		return err
	}
	var keys []string
	for _, p := range panoramas {
		k, err := s.imageKeys(ctx, p)
		if err != nil {
			return err
		}
		keys = append(keys, k...)
	}

	if err := s.monuments.Delete(ctx, id); err != nil {
		return mapRepoError("monument", id, err)
	}
	return s.removeObjects(ctx, keys)
}

func (s *authoringService) CreatePanorama(ctx context.Context, p model.Panorama, img Upload) (*model.Panorama, error) {
	if img.Reader == nil {
		return nil, ErrReaderNil
	}
	key := objectKey(panoramaPrefix, img.Filename)
	p.Image = key
	if err := validate(&p); err != nil {
		return nil, err
	}

	if _, err := s.put(ctx, key, img); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.panoramas.Create(ctx, &p)
	if err != nil {
		return nil, s.rollback(ctx, key, mapRepoError("panorama", p.ID, err))
	}
	return stored, nil
}

func (s *authoringService) UpdatePanorama(ctx context.Context, p model.Panorama) (*model.Panorama, error) {
	if p.ID <= 0 {
		return nil, ErrIDRequired
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	out, err := s.panoramas.Update(ctx, &p)
	if err != nil {
		return nil, mapRepoError("panorama", p.ID, err)
	}
	return out, nil
}

func (s *authoringService) DeletePanorama(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	p, err := s.panoramas.FindByID(ctx, id)
	if err != nil {
		return mapRepoError("panorama", id, err)
	}
	keys, err := s.imageKeys(ctx, *p)
	if err != nil {
		return err
	}
	if err := s.panoramas.Delete(ctx, id); err != nil {
		return mapRepoError("panorama", id, err)
	}
	return s.removeObjects(ctx, keys)
}

func (s *authoringService) SaveHotSpot(ctx context.Context, h model.HotSpot, img *Upload) (*model.HotSpot, error) {
	if h.ID < 0 {
		return nil, ErrIDRequired
	}
	h.ApplyTargetDefaults()

	var key string
	if img != nil {
		if img.Reader == nil {
			return nil, ErrReaderNil
		}
		key = objectKey(hotspotPrefix, img.Filename)
		h.Image = &key
	}
	if err := validate(&h); err != nil {
		return nil, err
	}

	if key != "" {
		if _, err := s.put(ctx, key, *img); err != nil {
			return nil, fmt.Errorf("upload to storage: %w", err)
		}
	}

	var (
		stored *model.HotSpot
		err    error
	)
	if h.ID == 0 {
		stored, err = s.hotspots.Create(ctx, &h)
	} else {
		stored, err = s.hotspots.Update(ctx, &h)
	}
	if err != nil {
		err = mapRepoError("hotspot", h.ID, err)
		if key != "" {
			return nil, s.rollback(ctx, key, err)
		}
		return nil, err
	}
	return stored, nil
}

func (s *authoringService) DeleteHotSpot(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	h, err := s.hotspots.FindByID(ctx, id)
	if err != nil {
		return mapRepoError("hotspot", id, err)
	}
	if err := s.hotspots.Delete(ctx, id); err != nil {
		return mapRepoError("hotspot", id, err)
	}
	if h.Image != nil {
		return s.removeObjects(ctx, []string{*h.Image})
	}
	return nil
}

func (s *authoringService) put(ctx context.Context, key string, img Upload) (storage.ObjectInfo, error) {
	ct := img.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return s.store.Put(ctx, key, img.Reader, storage.PutObjectOptions{
		Size:        img.Size,
		ContentType: ct,
		Metadata: map[string]string{
			"original-filename": img.Filename,
		},
	})
}

// rollback deletes an uploaded object after the record it belongs to failed to save.
func (s *authoringService) rollback(ctx context.Context, key string, cause error) error {
	if delErr := s.store.Delete(ctx, key); delErr != nil {
		return fmt.Errorf("db save failed: %w; rollback delete failed: %v", cause, delErr)
	}
	return fmt.Errorf("db save failed: %w", cause)
}

// imageKeys lists the object keys owned by a panorama and its hotspots.
func (s *authoringService) imageKeys(ctx context.Context, p model.Panorama) ([]string, error) {
	keys := []string{p.Image}
	hotspots, err := s.hotspots.ListByPanorama(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	for _, h := range hotspots {
		if h.Image != nil && *h.Image != "" {
			keys = append(keys, *h.Image)
		}
	}
	return keys, nil
}

func (s *authoringService) removeObjects(ctx context.Context, keys []string) error {
	var errs []error
	for _, k := range keys {
		if k == "" {
			continue
		}
		if err := s.store.Delete(ctx, k); err != nil {
			errs = append(errs, fmt.Errorf("delete storage %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

func validate(v any) error {
	if err := model.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// objectKey builds "<prefix>/<uuid><ext>" keeping only the extension of the original name.
func objectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(prefix, uuid.NewString()+ext)
}
