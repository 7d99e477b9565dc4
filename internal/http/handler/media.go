package handler

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"panomap/internal/config"
	"panomap/internal/storage"
)

// ServeMedia godoc
// @Summary Uploaded media
// @Description Streams a panorama or hotspot image from object storage.
// @Tags media
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} file
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /media/{key} [get]
func ServeMedia(store storage.Storage, media config.MediaConfig) fiber.Handler {
	cacheMaxAgeSec := media.CacheMaxAgeSec
	presignTTL := time.Duration(media.PresignTTLSec) * time.Second

	return func(c *fiber.Ctx) error {
		key := strings.TrimLeft(c.Params("*"), "/")
		if key == "" || strings.Contains(key, "..") {
			return writeNotFound(c, "media")
		}

		if presignTTL > 0 {
			// Presigning is offline, so a missing key must be caught before redirecting.
			if _, err := store.Stat(c.UserContext(), key); err != nil {
				return writeStorageError(c, err)
			}
			u, err := store.PresignGet(c.UserContext(), key, presignTTL)
			if err != nil {
				return writeError(c, fiber.StatusInternalServerError, internalEnvelope.Code, internalEnvelope.Message)
			}
			return c.Redirect(u, fiber.StatusFound)
		}

		rc, info, err := store.Get(c.UserContext(), key)
		if err != nil {
			return writeStorageError(c, err)
		}

		ct := info.ContentType
		if ct == "" || ct == "application/octet-stream" {
			if byExt := mime.TypeByExtension(path.Ext(key)); byExt != "" {
				ct = byExt
			} else {
				ct = "application/octet-stream"
			}
		}
		c.Set(fiber.HeaderContentType, ct)
		if cacheMaxAgeSec > 0 {
			c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", cacheMaxAgeSec))
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, `"`+strings.Trim(info.ETag, `"`)+`"`)
		}
		if !info.LastModified.IsZero() {
			c.Set(fiber.HeaderLastModified, info.LastModified.UTC().Format(http.TimeFormat))
		}

		size := -1
		if info.Size > 0 {
			size = int(info.Size)
		}
		// fasthttp closes rc once the body is written.
		return c.SendStream(rc, size)
	}
}

func writeStorageError(c *fiber.Ctx, err error) error {
	if errors.Is(err, storage.ErrObjectNotFound) {
		return writeNotFound(c, "media")
	}
	return writeError(c, fiber.StatusInternalServerError, internalEnvelope.Code, internalEnvelope.Message)
}
