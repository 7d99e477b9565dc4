package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"panomap/internal/config"
	"panomap/internal/http/middleware"
	"panomap/internal/model"
	"panomap/internal/service"
	serviceMocks "panomap/internal/service/mocks"
	"panomap/internal/storage"
	storeMocks "panomap/internal/storage/mocks"
	"panomap/internal/viewer"
)

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListMonuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/", ListMonuments(mockSvc))

	t.Run("success", func(t *testing.T) {
		items := []model.Monument{{ID: 1, Name: "Cathedral"}, {ID: 2, Name: "Museum"}}
		mockSvc.On("ListMonuments", mock.Anything).Return(items, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got []model.Monument
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, items, got)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("ListMonuments", mock.Anything).Return(nil, errors.New("db error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestMonumentsGeoJSON(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/monuments.geojson", MonumentsGeoJSON(mockSvc))

	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(orb.Point{40.21, 47.71})
	f.Properties["name"] = "Cathedral"
	fc.Append(f)
	mockSvc.On("MonumentsGeoJSON", mock.Anything).Return(fc, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/monuments.geojson", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, geoJSONContentType, resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	got, err := geojson.UnmarshalFeatureCollection(body)
	require.NoError(t, err)
	require.Len(t, got.Features, 1)
	assert.Equal(t, orb.Point{40.21, 47.71}, got.Features[0].Geometry)
	mockSvc.AssertExpectations(t)
}

func TestGetMonument(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/monument/:id", GetMonument(mockSvc))

	tests := []struct {
		name       string
		path       string
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{
			name: "success with trailing slash",
			path: "/monument/7/",
			setup: func() {
				mockSvc.On("GetMonument", mock.Anything, int64(7)).Return(&service.MonumentDetail{
					Monument:  model.Monument{ID: 7, Name: "Cathedral"},
					Panoramas: []model.Panorama{},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/monument/8",
			setup: func() {
				mockSvc.On("GetMonument", mock.Anything, int64(8)).
					Return(nil, fmt.Errorf("monument 8: %w", service.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{name: "non numeric id", path: "/monument/abc", wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "zero id", path: "/monument/0", wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "negative id", path: "/monument/-3", wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "id beyond int64", path: "/monument/99999999999999999999/", wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{
			name: "service error",
			path: "/monument/9",
			setup: func() {
				mockSvc.On("GetMonument", mock.Anything, int64(9)).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
				return
			}
			var got map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, []any{}, got["panoramas"], "no panoramas renders an empty list")
		})
	}
	mockSvc.AssertExpectations(t)
}

func TestGetPanorama(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/panorama/:id", GetPanorama(mockSvc))

	t.Run("success", func(t *testing.T) {
		detail := &service.PanoramaDetail{
			Panorama: model.Panorama{ID: 3, Title: "Nave", ImageURL: "/media/panoramas/a.jpg"},
			HotSpots: []model.HotSpot{{ID: 1, PanoramaID: 3, Title: "Altar"}, {ID: 2, PanoramaID: 3, Title: "Door"}},
		}
		mockSvc.On("GetPanorama", mock.Anything, int64(3)).Return(detail, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/panorama/3/", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got service.PanoramaDetail
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "/media/panoramas/a.jpg", got.Panorama.ImageURL)
		require.Len(t, got.HotSpots, 2)
		assert.Equal(t, "Altar", got.HotSpots[0].Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("GetPanorama", mock.Anything, int64(4)).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/panorama/4", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid-1")
		app := fiber.New()
		app.Use(middleware.RequestID())
		app.Get("/panorama/:id", GetPanorama(mockSvc))
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "panorama not found", body.Error.Message)
		assert.Equal(t, "rid-1", body.RequestID)
	})

	for _, path := range []string{"/panorama/0/", "/panorama/-1", "/panorama/nave"} {
		t.Run("unmatchable id "+path, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, "NOT_FOUND", body.Error.Code)
			assert.Equal(t, "panorama not found", body.Error.Message)
		})
	}
	mockSvc.AssertExpectations(t)
	mockSvc.AssertNotCalled(t, "GetPanorama", mock.Anything, int64(0))
}

func TestPanoramaViewer(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/panorama/:id/viewer.json", PanoramaViewer(mockSvc))

	scene := &viewer.Scene{
		ID:    "panorama-3",
		Title: "Nave",
		Type:  "equirectangular",
		HotSpots: []viewer.HotSpot{
			{ID: 1, Type: viewer.HotSpotTypeScene, SceneID: "panorama-4"},
		},
	}
	mockSvc.On("ViewerScene", mock.Anything, int64(3)).Return(scene, nil).Once()
	mockSvc.On("ViewerScene", mock.Anything, int64(5)).Return(nil, service.ErrNotFound).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/panorama/3/viewer.json", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "panorama-3", got["id"])
	hotSpots := got["hotSpots"].([]any)
	require.Len(t, hotSpots, 1)
	assert.Equal(t, "panorama-4", hotSpots[0].(map[string]any)["sceneId"])

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/panorama/5/viewer.json", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/panorama/x/viewer.json", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestServeMedia(t *testing.T) {
	modified := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("streams object", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		app := fiber.New()
		app.Get("/media/*", ServeMedia(store, config.MediaConfig{CacheMaxAgeSec: 3600}))

		store.On("Get", mock.Anything, "panoramas/a.jpg").Return(
			io.NopCloser(strings.NewReader("jpeg-bytes")),
			storage.ObjectInfo{Key: "panoramas/a.jpg", Size: 10, ContentType: "image/jpeg", ETag: "abc", LastModified: modified},
			nil,
		).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/media/panoramas/a.jpg", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/jpeg", resp.Header.Get(fiber.HeaderContentType))
		assert.Equal(t, "public, max-age=3600", resp.Header.Get(fiber.HeaderCacheControl))
		assert.Equal(t, `"abc"`, resp.Header.Get(fiber.HeaderETag))
		assert.Equal(t, "Wed, 01 May 2024 12:00:00 GMT", resp.Header.Get(fiber.HeaderLastModified))
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "jpeg-bytes", string(body))
		store.AssertExpectations(t)
	})

	t.Run("content type from extension", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		app := fiber.New()
		app.Get("/media/*", ServeMedia(store, config.MediaConfig{}))

		store.On("Get", mock.Anything, "hotspots/b.png").Return(
			io.NopCloser(strings.NewReader("png")), storage.ObjectInfo{Size: 3}, nil,
		).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/media/hotspots/b.png", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
		assert.Empty(t, resp.Header.Get(fiber.HeaderCacheControl))
	})

	t.Run("missing object", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		app := fiber.New()
		app.Get("/media/*", ServeMedia(store, config.MediaConfig{}))

		store.On("Get", mock.Anything, "panoramas/gone.jpg").
			Return(nil, storage.ObjectInfo{}, fmt.Errorf("%w: panoramas/gone.jpg", storage.ErrObjectNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/media/panoramas/gone.jpg", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		app := fiber.New()
		app.Get("/media/*", ServeMedia(store, config.MediaConfig{}))

		store.On("Get", mock.Anything, "panoramas/a.jpg").
			Return(nil, storage.ObjectInfo{}, errors.New("connection refused")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/media/panoramas/a.jpg", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("empty key", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		app := fiber.New()
		app.Get("/media/*", ServeMedia(store, config.MediaConfig{}))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/media/", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestServeMedia_Presigned(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		setup        func(store *storeMocks.MockStorage)
		wantStatus   int
		wantLocation string
		wantPresign  bool
	}{
		{
			name: "redirects to signed url",
			key:  "panoramas/a.jpg",
			setup: func(store *storeMocks.MockStorage) {
				store.On("Stat", mock.Anything, "panoramas/a.jpg").Return(storage.ObjectInfo{Key: "panoramas/a.jpg", Size: 10}, nil).Once()
				store.On("PresignGet", mock.Anything, "panoramas/a.jpg", time.Minute).
					Return("https://minio.local/bucket/panoramas/a.jpg?X-Amz-Signature=abc", nil).Once()
			},
			wantStatus:   http.StatusFound,
			wantLocation: "https://minio.local/bucket/panoramas/a.jpg?X-Amz-Signature=abc",
			wantPresign:  true,
		},
		{
			name: "missing object is not signed",
			key:  "panoramas/gone.jpg",
			setup: func(store *storeMocks.MockStorage) {
				store.On("Stat", mock.Anything, "panoramas/gone.jpg").
					Return(nil, fmt.Errorf("%w: panoramas/gone.jpg", storage.ErrObjectNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "stat failure",
			key:  "panoramas/c.jpg",
			setup: func(store *storeMocks.MockStorage) {
				store.On("Stat", mock.Anything, "panoramas/c.jpg").Return(nil, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "signing failure",
			key:  "panoramas/b.jpg",
			setup: func(store *storeMocks.MockStorage) {
				store.On("Stat", mock.Anything, "panoramas/b.jpg").Return(storage.ObjectInfo{Key: "panoramas/b.jpg"}, nil).Once()
				store.On("PresignGet", mock.Anything, "panoramas/b.jpg", time.Minute).
					Return("", errors.New("signing failed")).Once()
			},
			wantStatus:  http.StatusInternalServerError,
			wantPresign: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(storeMocks.MockStorage)
			app := fiber.New()
			app.Get("/media/*", ServeMedia(store, config.MediaConfig{PresignTTLSec: 60}))
			tt.setup(store)

			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/media/"+tt.key, nil))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantLocation, resp.Header.Get(fiber.HeaderLocation))
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
			}
			store.AssertExpectations(t)
			if !tt.wantPresign {
				store.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
			}
			store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		})
	}
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockSvc := new(serviceMocks.MockCatalogService)
	store := new(storeMocks.MockStorage)
	RegisterRoutes(app, nil, mockSvc, store, config.MediaConfig{URLPrefix: "/uploads/"})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("write methods are not exposed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/monument/1", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("media prefix from config", func(t *testing.T) {
		store.On("Get", mock.Anything, "panoramas/a.jpg").Return(
			io.NopCloser(strings.NewReader("x")), storage.ObjectInfo{Size: 1, ContentType: "image/jpeg"}, nil,
		).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/panoramas/a.jpg", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		store.AssertExpectations(t)
	})
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/unavailable", func(c *fiber.Ctx) error { return fiber.ErrServiceUnavailable })
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.ErrBadRequest })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.ErrTeapot })
	app.Get("/plain", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/wrapped", func(c *fiber.Ctx) error { return fmt.Errorf("load: %w", fiber.ErrNotFound) })

	tests := []struct {
		path       string
		wantStatus int
		wantCode   string
	}{
		{path: "/unavailable", wantStatus: http.StatusServiceUnavailable, wantCode: "SERVICE_UNAVAILABLE"},
		{path: "/bad", wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{path: "/teapot", wantStatus: http.StatusTeapot, wantCode: "INTERNAL_ERROR"},
		{path: "/plain", wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
		{path: "/wrapped", wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "boom")
		})
	}
}
