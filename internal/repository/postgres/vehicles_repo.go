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

type vehiclesRepo struct{ pool *pgxpool.Pool }

const vehicleSelect = `
SELECT v.id, v.vehicle_name, v.release_year, v.price,
       v.user_id, v.segment_id, v.brand_id,
       s.segment_name, b.brand_name,
       v.created_at, v.updated_at
  FROM vehicles v
  JOIN segments s ON s.id = v.segment_id
  JOIN brands   b ON b.id = v.brand_id`

func scanVehicle(row pgx.Row) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(&v.ID, &v.VehicleName, &v.ReleaseYear, &v.Price,
		&v.UserID, &v.SegmentID, &v.BrandID,
		&v.SegmentName, &v.BrandName,
		&v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *vehiclesRepo) Create(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO vehicles(id, vehicle_name, release_year, price, user_id, segment_id, brand_id)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		v.ID, v.VehicleName, v.ReleaseYear, v.Price, v.UserID, v.SegmentID, v.BrandID,
	)
	if err != nil {
		return models.Vehicle{}, err
	}
	return r.GetByID(ctx, v.ID)
}

func (r *vehiclesRepo) GetByID(ctx context.Context, id string) (models.Vehicle, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Vehicle{}, repository.ErrNotFound
	}
	v, err := scanVehicle(r.pool.QueryRow(ctx, vehicleSelect+` WHERE v.id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Vehicle{}, repository.ErrNotFound
	}
	return v, err
}

func (r *vehiclesRepo) List(ctx context.Context) ([]models.Vehicle, error) {
	rows, err := r.pool.Query(ctx, vehicleSelect+` ORDER BY v.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Update rewrites every client-writable column; the owner column is left
// untouched so ownership survives edits by other users.
func (r *vehiclesRepo) Update(ctx context.Context, v models.Vehicle) error {
	if _, err := uuid.Parse(v.ID); err != nil {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE vehicles
		    SET vehicle_name=$2, release_year=$3, price=$4, segment_id=$5, brand_id=$6, updated_at=now()
		  WHERE id=$1`,
		v.ID, v.VehicleName, v.ReleaseYear, v.Price, v.SegmentID, v.BrandID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *vehiclesRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
