package postgres

import (
	"context"
	"errors"

	"github.com/ayasuda/vehicle-catalog/internal/models"
	"github.com/ayasuda/vehicle-catalog/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type segmentsRepo struct{ pool *pgxpool.Pool }

func (r *segmentsRepo) Create(ctx context.Context, name string) (models.Segment, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO segments(id, segment_name) VALUES($1,$2)`, id, name)
	if err != nil {
		return models.Segment{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *segmentsRepo) GetByID(ctx context.Context, id string) (models.Segment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Segment{}, repository.ErrNotFound
	}
	var s models.Segment
	err := r.pool.QueryRow(ctx,
		`SELECT id, segment_name, created_at, updated_at FROM segments WHERE id=$1`, id,
	).Scan(&s.ID, &s.SegmentName, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Segment{}, repository.ErrNotFound
	}
	return s, err
}

func (r *segmentsRepo) List(ctx context.Context) ([]models.Segment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, segment_name, created_at, updated_at FROM segments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Segment{}
	for rows.Next() {
		var s models.Segment
		if err := rows.Scan(&s.ID, &s.SegmentName, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *segmentsRepo) Update(ctx context.Context, s models.Segment) error {
	if _, err := uuid.Parse(s.ID); err != nil {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE segments SET segment_name=$2, updated_at=now() WHERE id=$1`,
		s.ID, s.SegmentName,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *segmentsRepo) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, repository.ErrNotFound
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM vehicles WHERE segment_id=$1`, id)
	if err != nil {
		return 0, err
	}
	cascaded := tag.RowsAffected()

	tag, err = tx.Exec(ctx, `DELETE FROM segments WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, repository.ErrNotFound
	}
	return cascaded, tx.Commit(ctx)
}
