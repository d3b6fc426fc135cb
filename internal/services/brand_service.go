package services

import (
	"context"
	"strings"

	"github.com/ayasuda/vehicle-catalog/internal/api/validate"
	"github.com/ayasuda/vehicle-catalog/internal/metrics"
	"github.com/ayasuda/vehicle-catalog/internal/models"
	repo "github.com/ayasuda/vehicle-catalog/internal/repository"
	"github.com/ayasuda/vehicle-catalog/internal/worker"
)

type BrandService struct {
	r     repo.Brands
	audit auditor
}

func NewBrandService(r repo.Brands, logs repo.AuditLogs, wp *worker.Pool) *BrandService {
	return &BrandService{r: r, audit: auditor{log: logs, wp: wp}}
}

func (s *BrandService) List(ctx context.Context) ([]models.Brand, error) {
	return s.r.List(ctx)
}

func (s *BrandService) Get(ctx context.Context, id string) (models.Brand, error) {
	return s.r.GetByID(ctx, id)
}

func (s *BrandService) Create(ctx context.Context, name string) (models.Brand, error) {
	if ef := validate.Required("brand_name", name); ef != nil {
		return models.Brand{}, validate.Errs{*ef}
	}
	b, err := s.r.Create(ctx, strings.TrimSpace(name))
	if err != nil {
		return models.Brand{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("brand", "created").Inc()
	s.audit.record("brand", b.ID, "created", map[string]any{"brand_name": b.BrandName})
	return b, nil
}

func (s *BrandService) Replace(ctx context.Context, id, name string) (models.Brand, error) {
	if ef := validate.Required("brand_name", name); ef != nil {
		return models.Brand{}, validate.Errs{*ef}
	}
	b, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Brand{}, err
	}
	b.BrandName = strings.TrimSpace(name)
	if err := s.r.Update(ctx, b); err != nil {
		return models.Brand{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("brand", "updated").Inc()
	s.audit.record("brand", b.ID, "updated", map[string]any{"brand_name": b.BrandName})
	return s.r.GetByID(ctx, id)
}

func (s *BrandService) PartialUpdate(ctx context.Context, id string, name *string) (models.Brand, error) {
	b, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Brand{}, err
	}
	if name != nil {
		if ef := validate.Required("brand_name", *name); ef != nil {
			return models.Brand{}, validate.Errs{*ef}
		}
		b.BrandName = strings.TrimSpace(*name)
	}
	if err := s.r.Update(ctx, b); err != nil {
		return models.Brand{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("brand", "updated").Inc()
	s.audit.record("brand", b.ID, "updated", map[string]any{"brand_name": b.BrandName})
	return s.r.GetByID(ctx, id)
}

func (s *BrandService) Delete(ctx context.Context, id string) error {
	cascaded, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("brand", "deleted").Inc()
	metrics.CascadeDeletedVehicles.Add(float64(cascaded))
	s.audit.record("brand", id, "deleted", map[string]any{"cascaded_vehicles": cascaded})
	return nil
}
