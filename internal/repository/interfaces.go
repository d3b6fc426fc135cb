package repository

import (
	"context"

	"github.com/ayasuda/vehicle-catalog/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, passwordHash, role string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	// Delete removes the user and, in the same transaction, every vehicle
	// the user owns. Returns the number of vehicles removed.
	Delete(ctx context.Context, id string) (int64, error)
}

type Segments interface {
	Create(ctx context.Context, name string) (models.Segment, error)
	GetByID(ctx context.Context, id string) (models.Segment, error)
	List(ctx context.Context) ([]models.Segment, error)
	Update(ctx context.Context, s models.Segment) error
	// Delete removes the segment and, in the same transaction, every vehicle
	// referencing it. Returns the number of vehicles removed.
	Delete(ctx context.Context, id string) (int64, error)
}

type Brands interface {
	Create(ctx context.Context, name string) (models.Brand, error)
	GetByID(ctx context.Context, id string) (models.Brand, error)
	List(ctx context.Context) ([]models.Brand, error)
	Update(ctx context.Context, b models.Brand) error
	// Delete cascades to dependent vehicles, same contract as Segments.
	Delete(ctx context.Context, id string) (int64, error)
}

type Vehicles interface {
	Create(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	GetByID(ctx context.Context, id string) (models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	Update(ctx context.Context, v models.Vehicle) error
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
