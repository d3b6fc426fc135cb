package postgres

import (
	repo "github.com/ayasuda/vehicle-catalog/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users     repo.Users
	Segments  repo.Segments
	Brands    repo.Brands
	Vehicles  repo.Vehicles
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Segments:  &segmentsRepo{pool},
		Brands:    &brandsRepo{pool},
		Vehicles:  &vehiclesRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
