package handler

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"panomap/internal/config"
	"panomap/internal/service"
	"panomap/internal/storage"
)

const healthTimeout = 2 * time.Second

// RegisterRoutes attaches the read-only HTTP routes to the provided Fiber app.
// Path ids are matched with or without a trailing slash.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.CatalogService, store storage.Storage, media config.MediaConfig) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/", ListMonuments(svc))
	app.Get("/monuments.geojson", MonumentsGeoJSON(svc))
	app.Get("/monument/:id", GetMonument(svc))
	app.Get("/panorama/:id/viewer.json", PanoramaViewer(svc))
	app.Get("/panorama/:id", GetPanorama(svc))

	prefix := "/" + strings.Trim(media.URLPrefix, "/")
	app.Get(prefix+"/*", ServeMedia(store, media))
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Checks database connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
