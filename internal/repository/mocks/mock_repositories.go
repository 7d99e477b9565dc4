package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"panomap/internal/model"
)

type MockMonumentRepository struct {
	mock.Mock
}

func (m *MockMonumentRepository) Create(ctx context.Context, mon *model.Monument) (*model.Monument, error) {
	args := m.Called(ctx, mon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Monument), args.Error(1)
}

func (m *MockMonumentRepository) Update(ctx context.Context, mon *model.Monument) (*model.Monument, error) {
	args := m.Called(ctx, mon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Monument), args.Error(1)
}

func (m *MockMonumentRepository) FindByID(ctx context.Context, id int64) (*model.Monument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Monument), args.Error(1)
}

func (m *MockMonumentRepository) List(ctx context.Context) ([]model.Monument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Monument), args.Error(1)
}

func (m *MockMonumentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPanoramaRepository struct {
	mock.Mock
}

func (m *MockPanoramaRepository) Create(ctx context.Context, p *model.Panorama) (*model.Panorama, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Panorama), args.Error(1)
}

func (m *MockPanoramaRepository) Update(ctx context.Context, p *model.Panorama) (*model.Panorama, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Panorama), args.Error(1)
}

func (m *MockPanoramaRepository) FindByID(ctx context.Context, id int64) (*model.Panorama, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Panorama), args.Error(1)
}

func (m *MockPanoramaRepository) ListByMonument(ctx context.Context, monumentID int64) ([]model.Panorama, error) {
	args := m.Called(ctx, monumentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Panorama), args.Error(1)
}

func (m *MockPanoramaRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHotSpotRepository struct {
	mock.Mock
}

func (m *MockHotSpotRepository) Create(ctx context.Context, h *model.HotSpot) (*model.HotSpot, error) {
	args := m.Called(ctx, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HotSpot), args.Error(1)
}

func (m *MockHotSpotRepository) Update(ctx context.Context, h *model.HotSpot) (*model.HotSpot, error) {
	args := m.Called(ctx, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HotSpot), args.Error(1)
}

func (m *MockHotSpotRepository) FindByID(ctx context.Context, id int64) (*model.HotSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HotSpot), args.Error(1)
}

func (m *MockHotSpotRepository) ListByPanorama(ctx context.Context, panoramaID int64) ([]model.HotSpot, error) {
	args := m.Called(ctx, panoramaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HotSpot), args.Error(1)
}

func (m *MockHotSpotRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
