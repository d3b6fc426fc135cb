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

type SegmentService struct {
	r     repo.Segments
	audit auditor
}

func NewSegmentService(r repo.Segments, logs repo.AuditLogs, wp *worker.Pool) *SegmentService {
	return &SegmentService{r: r, audit: auditor{log: logs, wp: wp}}
}

func (s *SegmentService) List(ctx context.Context) ([]models.Segment, error) {
	return s.r.List(ctx)
}

func (s *SegmentService) Get(ctx context.Context, id string) (models.Segment, error) {
	return s.r.GetByID(ctx, id)
}

func (s *SegmentService) Create(ctx context.Context, name string) (models.Segment, error) {
	if ef := validate.Required("segment_name", name); ef != nil {
		return models.Segment{}, validate.Errs{*ef}
	}
	seg, err := s.r.Create(ctx, strings.TrimSpace(name))
	if err != nil {
		return models.Segment{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("segment", "created").Inc()
	s.audit.record("segment", seg.ID, "created", map[string]any{"segment_name": seg.SegmentName})
	return seg, nil
}

// Replace is the PUT semantics: the name is required.
func (s *SegmentService) Replace(ctx context.Context, id, name string) (models.Segment, error) {
	if ef := validate.Required("segment_name", name); ef != nil {
		return models.Segment{}, validate.Errs{*ef}
	}
	seg, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Segment{}, err
	}
	seg.SegmentName = strings.TrimSpace(name)
	if err := s.r.Update(ctx, seg); err != nil {
		return models.Segment{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("segment", "updated").Inc()
	s.audit.record("segment", seg.ID, "updated", map[string]any{"segment_name": seg.SegmentName})
	return s.r.GetByID(ctx, id)
}

// PartialUpdate is the PATCH semantics: absent fields keep their value,
// present-but-empty fields still fail validation.
func (s *SegmentService) PartialUpdate(ctx context.Context, id string, name *string) (models.Segment, error) {
	seg, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Segment{}, err
	}
	if name != nil {
		if ef := validate.Required("segment_name", *name); ef != nil {
			return models.Segment{}, validate.Errs{*ef}
		}
		seg.SegmentName = strings.TrimSpace(*name)
	}
	if err := s.r.Update(ctx, seg); err != nil {
		return models.Segment{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("segment", "updated").Inc()
	s.audit.record("segment", seg.ID, "updated", map[string]any{"segment_name": seg.SegmentName})
	return s.r.GetByID(ctx, id)
}

func (s *SegmentService) Delete(ctx context.Context, id string) error {
	cascaded, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("segment", "deleted").Inc()
	metrics.CascadeDeletedVehicles.Add(float64(cascaded))
	s.audit.record("segment", id, "deleted", map[string]any{"cascaded_vehicles": cascaded})
	return nil
}
