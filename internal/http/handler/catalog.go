package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"panomap/internal/service"
)

const geoJSONContentType = "application/geo+json"

// parseID reads a positive integer path id.
// parseID reads a positive int64 path id. Anything else cannot name a stored record.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListMonuments godoc
// @Summary List monuments
// @Description All monuments ordered by id, for the landing map.
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Monument
// @Failure 500 {object} errorPayload
// @Router / [get]
func ListMonuments(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListMonuments(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "monument")
		}
		return c.JSON(items)
	}
}

// MonumentsGeoJSON godoc
// @Summary Monument locations
// @Description Monuments with coordinates as a GeoJSON FeatureCollection of points.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} errorPayload
// @Router /monuments.geojson [get]
func MonumentsGeoJSON(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fc, err := svc.MonumentsGeoJSON(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "monument")
		}
		b, err := fc.MarshalJSON()
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Set(fiber.HeaderContentType, geoJSONContentType)
		return c.Send(b)
	}
}

// GetMonument godoc
// @Summary Get monument
// @Description A monument with its panoramas and the id of its main panorama.
// @Tags catalog
// @Produce json
// @Param id path int true "Monument ID"
// @Success 200 {object} service.MonumentDetail
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /monument/{id} [get]
func GetMonument(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeNotFound(c, "monument")
		}
		detail, err := svc.GetMonument(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "monument")
		}
		return c.JSON(detail)
	}
}

// GetPanorama godoc
// @Summary Get panorama
// @Description A panorama with its hotspots ordered by title.
// @Tags catalog
// @Produce json
// @Param id path int true "Panorama ID"
// @Success 200 {object} service.PanoramaDetail
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /panorama/{id} [get]
func GetPanorama(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeNotFound(c, "panorama")
		}
		detail, err := svc.GetPanorama(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "panorama")
		}
		return c.JSON(detail)
	}
}

// PanoramaViewer godoc
// @Summary Viewer scene
// @Description Pannellum scene configuration of a panorama.
// @Tags catalog
// @Produce json
// @Param id path int true "Panorama ID"
// @Success 200 {object} viewer.Scene
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /panorama/{id}/viewer.json [get]
func PanoramaViewer(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeNotFound(c, "panorama")
		}
		scene, err := svc.ViewerScene(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "panorama")
		}
		return c.JSON(scene)
	}
}
