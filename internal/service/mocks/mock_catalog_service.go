package mocks

import (
	"context"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/mock"

	"panomap/internal/model"
	"panomap/internal/service"
	"panomap/internal/viewer"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListMonuments(ctx context.Context) ([]model.Monument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Monument), args.Error(1)
}

func (m *MockCatalogService) MonumentsGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geojson.FeatureCollection), args.Error(1)
}

func (m *MockCatalogService) GetMonument(ctx context.Context, id int64) (*service.MonumentDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MonumentDetail), args.Error(1)
}

func (m *MockCatalogService) GetPanorama(ctx context.Context, id int64) (*service.PanoramaDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PanoramaDetail), args.Error(1)
}

func (m *MockCatalogService) ViewerScene(ctx context.Context, id int64) (*viewer.Scene, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewer.Scene), args.Error(1)
}
