package postgres

import (
	"context"
	"database/sql"

	"panomap/internal/model"
	"panomap/internal/repository"
)

// HotSpotPostgres is a PostgreSQL implementation of repository.HotSpotRepository.
type HotSpotPostgres struct {
	db *sql.DB
}

// NewHotSpotPostgres creates a new HotSpotPostgres repository.
func NewHotSpotPostgres(db *sql.DB) *HotSpotPostgres {
	return &HotSpotPostgres{db: db}
}

var _ repository.HotSpotRepository = (*HotSpotPostgres)(nil)

const hotspotColumns = `id, panorama_id, pitch, yaw, title, description, image,
		target_panorama_id, target_pitch, target_yaw, transition_duration, target_hfov,
		css_class, entry_hotspot_id`

func scanHotSpot(row rowScanner) (*model.HotSpot, error) {
	var h model.HotSpot
	if err := row.Scan(
		&h.ID,
		&h.PanoramaID,
		&h.Pitch,
		&h.Yaw,
		&h.Title,
		&h.Description,
		&h.Image,
		&h.TargetPanoramaID,
		&h.TargetPitch,
		&h.TargetYaw,
		&h.TransitionDuration,
		&h.TargetHFOV,
		&h.CSSClass,
		&h.EntryHotSpotID,
	); err != nil {
		return nil, err
	}
	return &h, nil
}

func hotspotArgs(h *model.HotSpot) []any {
	return []any{
		h.PanoramaID,
		h.Pitch,
		h.Yaw,
		h.Title,
		h.Description,
		h.Image,
		h.TargetPanoramaID,
		h.TargetPitch,
		h.TargetYaw,
		h.TransitionDuration,
		h.TargetHFOV,
		h.CSSClass,
		h.EntryHotSpotID,
	}
}

// Create inserts a new hotspot row and returns the stored record.
func (r *HotSpotPostgres) Create(ctx context.Context, h *model.HotSpot) (*model.HotSpot, error) {
	const q = `
		INSERT INTO hotspots (panorama_id, pitch, yaw, title, description, image,
			target_panorama_id, target_pitch, target_yaw, transition_duration, target_hfov,
			css_class, entry_hotspot_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + hotspotColumns
	out, err := scanHotSpot(r.db.QueryRowContext(ctx, q, hotspotArgs(h)...))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// Update overwrites an existing hotspot row.
func (r *HotSpotPostgres) Update(ctx context.Context, h *model.HotSpot) (*model.HotSpot, error) {
	const q = `
		UPDATE hotspots
		SET panorama_id = $1, pitch = $2, yaw = $3, title = $4, description = $5, image = $6,
			target_panorama_id = $7, target_pitch = $8, target_yaw = $9,
			transition_duration = $10, target_hfov = $11, css_class = $12, entry_hotspot_id = $13
		WHERE id = $14
		RETURNING ` + hotspotColumns
	args := append(hotspotArgs(h), h.ID)
	out, err := scanHotSpot(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// FindByID fetches a single hotspot by its ID.
func (r *HotSpotPostgres) FindByID(ctx context.Context, id int64) (*model.HotSpot, error) {
	const q = `SELECT ` + hotspotColumns + ` FROM hotspots WHERE id = $1`
	h, err := scanHotSpot(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, mapReadError(err)
	}
	return h, nil
}

// ListByPanorama returns the hotspots of one panorama ordered by (panorama, title).
func (r *HotSpotPostgres) ListByPanorama(ctx context.Context, panoramaID int64) ([]model.HotSpot, error) {
	const q = `SELECT ` + hotspotColumns + `
		FROM hotspots
		WHERE panorama_id = $1
		ORDER BY panorama_id, title, id`
	rows, err := r.db.QueryContext(ctx, q, panoramaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.HotSpot, 0)
	for rows.Next() {
		h, err := scanHotSpot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a hotspot; entry_hotspot_id references are nulled by the schema.
func (r *HotSpotPostgres) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hotspots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}
