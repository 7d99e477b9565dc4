package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"panomap/internal/model"
	"panomap/internal/repository"
	"panomap/internal/viewer"
)

const tracerName = "panomap/internal/service"

// MonumentDetail is a monument together with its panoramas.
type MonumentDetail struct {
	Monument  model.Monument   `json:"monument"`
	Panoramas []model.Panorama `json:"panoramas"`
	// MainPanoramaID is the first panorama flagged as main, if any.
	MainPanoramaID *int64 `json:"main_panorama_id,omitempty"`
}

// PanoramaDetail is a panorama together with its hotspots ordered by (panorama, title).
type PanoramaDetail struct {
	Panorama model.Panorama  `json:"panorama"`
	HotSpots []model.HotSpot `json:"hotspots"`
}

// CatalogService answers the read paths of the map viewer.
type CatalogService interface {
	// ListMonuments returns every monument for the landing map.
	ListMonuments(ctx context.Context) ([]model.Monument, error)

	// MonumentsGeoJSON returns located monuments as a FeatureCollection of points.
	MonumentsGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error)

	// GetMonument returns a monument and its panoramas. Missing ids yield ErrNotFound.
	GetMonument(ctx context.Context, id int64) (*MonumentDetail, error)

	// GetPanorama returns a panorama and its hotspots. Missing ids yield ErrNotFound.
	GetPanorama(ctx context.Context, id int64) (*PanoramaDetail, error)

	// ViewerScene returns the viewer configuration of a panorama.
	ViewerScene(ctx context.Context, id int64) (*viewer.Scene, error)
}

type catalogService struct {
	monuments   repository.MonumentRepository
	panoramas   repository.PanoramaRepository
	hotspots    repository.HotSpotRepository
	mediaPrefix string
	tracer      trace.Tracer
}

// NewCatalogService constructs a CatalogService. mediaPrefix is prepended to stored
// image keys to build public URLs.
func NewCatalogService(
	monuments repository.MonumentRepository,
	panoramas repository.PanoramaRepository,
	hotspots repository.HotSpotRepository,
	mediaPrefix string,
) CatalogService {
	return &catalogService{
		monuments:   monuments,
		panoramas:   panoramas,
		hotspots:    hotspots,
		mediaPrefix: mediaPrefix,
		tracer:      otel.Tracer(tracerName),
	}
}

func (s *catalogService) ListMonuments(ctx context.Context) ([]model.Monument, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.ListMonuments")
	defer span.End()

	items, err := s.monuments.List(ctx)
	if err != nil {
		return nil, recordError(span, err)
	}
	span.SetAttributes(attribute.Int("monument.count", len(items)))
	return items, nil
}

func (s *catalogService) MonumentsGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	items, err := s.ListMonuments(ctx)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, m := range items {
		if !m.HasLocation() {
			continue
		}
		f := geojson.NewFeature(orb.Point{*m.Longitude, *m.Latitude})
		f.ID = m.ID
		f.Properties["id"] = m.ID
		f.Properties["name"] = m.Name
		f.Properties["url"] = fmt.Sprintf("/monument/%d/", m.ID)
		fc.Append(f)
	}
	return fc, nil
}

func (s *catalogService) GetMonument(ctx context.Context, id int64) (*MonumentDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("monument %d: %w", id, ErrNotFound)
	}
	ctx, span := s.tracer.Start(ctx, "catalog.GetMonument",
		trace.WithAttributes(attribute.Int64("monument.id", id)))
	defer span.End()

	m, err := s.monuments.FindByID(ctx, id)
	if err != nil {
		return nil, recordError(span, mapRepoError("monument", id, err))
	}
	panoramas, err := s.panoramas.ListByMonument(ctx, id)
	if err != nil {
		return nil, recordError(span, err)
	}
	if panoramas == nil {
		panoramas = []model.Panorama{}
	}

	detail := &MonumentDetail{Monument: *m, Panoramas: panoramas}
	for i := range detail.Panoramas {
		p := &detail.Panoramas[i]
		p.ImageURL = s.mediaURL(p.Image)
		if p.IsMain && detail.MainPanoramaID == nil {
			mainID := p.ID
			detail.MainPanoramaID = &mainID
		}
	}
	span.SetAttributes(attribute.Int("panorama.count", len(panoramas)))
	return detail, nil
}

func (s *catalogService) GetPanorama(ctx context.Context, id int64) (*PanoramaDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("panorama %d: %w", id, ErrNotFound)
	}
	ctx, span := s.tracer.Start(ctx, "catalog.GetPanorama",
		trace.WithAttributes(attribute.Int64("panorama.id", id)))
	defer span.End()

	p, err := s.panoramas.FindByID(ctx, id)
	if err != nil {
		return nil, recordError(span, mapRepoError("panorama", id, err))
	}
	hotspots, err := s.hotspots.ListByPanorama(ctx, id)
	if err != nil {
		return nil, recordError(span, err)
	}
	if hotspots == nil {
		hotspots = []model.HotSpot{}
	}

	p.ImageURL = s.mediaURL(p.Image)
	for i := range hotspots {
		if hotspots[i].Image != nil {
			hotspots[i].ImageURL = s.mediaURL(*hotspots[i].Image)
		}
	}
	span.SetAttributes(attribute.Int("hotspot.count", len(hotspots)))
	return &PanoramaDetail{Panorama: *p, HotSpots: hotspots}, nil
}

func (s *catalogService) ViewerScene(ctx context.Context, id int64) (*viewer.Scene, error) {
	detail, err := s.GetPanorama(ctx, id)
	if err != nil {
		return nil, err
	}

	entries := make(map[int64]model.HotSpot)
	for _, h := range detail.HotSpots {
		if h.EntryHotSpotID == nil {
			continue
		}
		entryID := *h.EntryHotSpotID
		if _, seen := entries[entryID]; seen {
			continue
		}
		entry, err := s.hotspots.FindByID(ctx, entryID)
		if err != nil {
			// Entry removed between reads; the link keeps its own target angles.
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		entries[entryID] = *entry
	}

	scene := viewer.BuildScene(detail.Panorama, detail.HotSpots, entries)
	return &scene, nil
}

func (s *catalogService) mediaURL(key string) string {
	return MediaURL(s.mediaPrefix, key)
}

// MediaURL joins the public media prefix and an object key.
func MediaURL(prefix, key string) string {
	if key == "" {
		return ""
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(key, "/")
}

func recordError(span trace.Span, err error) error {
	if !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
