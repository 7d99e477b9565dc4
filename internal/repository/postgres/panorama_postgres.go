package postgres

import (
	"context"
	"database/sql"

	"panomap/internal/model"
	"panomap/internal/repository"
)

// PanoramaPostgres is a PostgreSQL implementation of repository.PanoramaRepository.
type PanoramaPostgres struct {
	db *sql.DB
}

// NewPanoramaPostgres creates a new PanoramaPostgres repository.
func NewPanoramaPostgres(db *sql.DB) *PanoramaPostgres {
	return &PanoramaPostgres{db: db}
}

var _ repository.PanoramaRepository = (*PanoramaPostgres)(nil)

const panoramaColumns = `id, monument_id, title, image, is_main, vaov, haov,
		min_pitch, max_pitch, min_yaw, max_yaw, min_hfov, max_hfov, show_zoom_ctrl`

func scanPanorama(row rowScanner) (*model.Panorama, error) {
	var p model.Panorama
	if err := row.Scan(
		&p.ID,
		&p.MonumentID,
		&p.Title,
		&p.Image,
		&p.IsMain,
		&p.VAOV,
		&p.HAOV,
		&p.MinPitch,
		&p.MaxPitch,
		&p.MinYaw,
		&p.MaxYaw,
		&p.MinHFOV,
		&p.MaxHFOV,
		&p.ShowZoomCtrl,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func panoramaArgs(p *model.Panorama) []any {
	return []any{
		p.MonumentID,
		p.Title,
		p.Image,
		p.IsMain,
		p.VAOV,
		p.HAOV,
		p.MinPitch,
		p.MaxPitch,
		p.MinYaw,
		p.MaxYaw,
		p.MinHFOV,
		p.MaxHFOV,
		p.ShowZoomCtrl,
	}
}

// Create inserts a new panorama row and returns the stored record.
func (r *PanoramaPostgres) Create(ctx context.Context, p *model.Panorama) (*model.Panorama, error) {
	const q = `
		INSERT INTO panoramas (monument_id, title, image, is_main, vaov, haov,
			min_pitch, max_pitch, min_yaw, max_yaw, min_hfov, max_hfov, show_zoom_ctrl)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + panoramaColumns
	out, err := scanPanorama(r.db.QueryRowContext(ctx, q, panoramaArgs(p)...))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// Update overwrites an existing panorama row.
func (r *PanoramaPostgres) Update(ctx context.Context, p *model.Panorama) (*model.Panorama, error) {
	const q = `
		UPDATE panoramas
		SET monument_id = $1, title = $2, image = $3, is_main = $4, vaov = $5, haov = $6,
			min_pitch = $7, max_pitch = $8, min_yaw = $9, max_yaw = $10,
			min_hfov = $11, max_hfov = $12, show_zoom_ctrl = $13
		WHERE id = $14
		RETURNING ` + panoramaColumns
	args := append(panoramaArgs(p), p.ID)
	out, err := scanPanorama(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// FindByID fetches a single panorama by its ID.
func (r *PanoramaPostgres) FindByID(ctx context.Context, id int64) (*model.Panorama, error) {
	const q = `SELECT ` + panoramaColumns + ` FROM panoramas WHERE id = $1`
	p, err := scanPanorama(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, mapReadError(err)
	}
	return p, nil
}

// ListByMonument returns the panoramas of one monument ordered by id.
func (r *PanoramaPostgres) ListByMonument(ctx context.Context, monumentID int64) ([]model.Panorama, error) {
	const q = `SELECT ` + panoramaColumns + ` FROM panoramas WHERE monument_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, monumentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Panorama, 0)
	for rows.Next() {
		p, err := scanPanorama(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a panorama. The schema cascades its hotspots and nulls foreign targets.
func (r *PanoramaPostgres) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM panoramas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}
