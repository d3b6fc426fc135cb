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

type brandsRepo struct{ pool *pgxpool.Pool }

func (r *brandsRepo) Create(ctx context.Context, name string) (models.Brand, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO brands(id, brand_name) VALUES($1,$2)`, id, name)
	if err != nil {
		return models.Brand{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *brandsRepo) GetByID(ctx context.Context, id string) (models.Brand, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Brand{}, repository.ErrNotFound
	}
	var b models.Brand
	err := r.pool.QueryRow(ctx,
		`SELECT id, brand_name, created_at, updated_at FROM brands WHERE id=$1`, id,
	).Scan(&b.ID, &b.BrandName, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Brand{}, repository.ErrNotFound
	}
	return b, err
}

func (r *brandsRepo) List(ctx context.Context) ([]models.Brand, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, brand_name, created_at, updated_at FROM brands ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Brand{}
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.BrandName, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *brandsRepo) Update(ctx context.Context, b models.Brand) error {
	if _, err := uuid.Parse(b.ID); err != nil {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE brands SET brand_name=$2, updated_at=now() WHERE id=$1`,
		b.ID, b.BrandName,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *brandsRepo) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, repository.ErrNotFound
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM vehicles WHERE brand_id=$1`, id)
	if err != nil {
		return 0, err
	}
	cascaded := tag.RowsAffected()

	tag, err = tx.Exec(ctx, `DELETE FROM brands WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, repository.ErrNotFound
	}
	return cascaded, tx.Commit(ctx)
}
