package postgres

import (
	"context"
	"database/sql"

	"panomap/internal/model"
	"panomap/internal/repository"
)

// MonumentPostgres is a PostgreSQL implementation of repository.MonumentRepository.
type MonumentPostgres struct {
	db *sql.DB
}

// NewMonumentPostgres creates a new MonumentPostgres repository.
func NewMonumentPostgres(db *sql.DB) *MonumentPostgres {
	return &MonumentPostgres{db: db}
}

var _ repository.MonumentRepository = (*MonumentPostgres)(nil)

const monumentColumns = `id, name, description, latitude, longitude`

func scanMonument(row rowScanner) (*model.Monument, error) {
	var m model.Monument
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Latitude, &m.Longitude); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new monument row and returns the stored record.
func (r *MonumentPostgres) Create(ctx context.Context, m *model.Monument) (*model.Monument, error) {
	const q = `
		INSERT INTO monuments (name, description, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + monumentColumns
	out, err := scanMonument(r.db.QueryRowContext(ctx, q, m.Name, m.Description, m.Latitude, m.Longitude))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// Update overwrites an existing monument row.
func (r *MonumentPostgres) Update(ctx context.Context, m *model.Monument) (*model.Monument, error) {
	const q = `
		UPDATE monuments
		SET name = $2, description = $3, latitude = $4, longitude = $5
		WHERE id = $1
		RETURNING ` + monumentColumns
	out, err := scanMonument(r.db.QueryRowContext(ctx, q, m.ID, m.Name, m.Description, m.Latitude, m.Longitude))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// FindByID fetches a single monument by its ID.
func (r *MonumentPostgres) FindByID(ctx context.Context, id int64) (*model.Monument, error) {
	const q = `SELECT ` + monumentColumns + ` FROM monuments WHERE id = $1`
	m, err := scanMonument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, mapReadError(err)
	}
	return m, nil
}

// List returns all monuments ordered by id.
func (r *MonumentPostgres) List(ctx context.Context) ([]model.Monument, error) {
	const q = `SELECT ` + monumentColumns + ` FROM monuments ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Monument, 0)
	for rows.Next() {
		m, err := scanMonument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a monument; panoramas and hotspots cascade in the schema.
func (r *MonumentPostgres) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM monuments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}
