package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ayasuda/vehicle-catalog/internal/api/validate"
	"github.com/ayasuda/vehicle-catalog/internal/metrics"
	"github.com/ayasuda/vehicle-catalog/internal/models"
	repo "github.com/ayasuda/vehicle-catalog/internal/repository"
	"github.com/ayasuda/vehicle-catalog/internal/worker"
)

// VehicleInput is a create/replace payload. ReleaseYear and Price are
// pointers so a missing field is distinguishable from a zero value.
type VehicleInput struct {
	VehicleName string
	ReleaseYear *int
	Price       *float64
	Segment     string
	Brand       string
}

// VehiclePatch is a partial-update payload; nil fields keep their value.
type VehiclePatch struct {
	VehicleName *string
	ReleaseYear *int
	Price       *float64
	Segment     *string
	Brand       *string
}

type VehicleService struct {
	r        repo.Vehicles
	segments repo.Segments
	brands   repo.Brands
	audit    auditor
}

func NewVehicleService(r repo.Vehicles, segments repo.Segments, brands repo.Brands, logs repo.AuditLogs, wp *worker.Pool) *VehicleService {
	return &VehicleService{r: r, segments: segments, brands: brands, audit: auditor{log: logs, wp: wp}}
}

func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.r.List(ctx)
}

func (s *VehicleService) Get(ctx context.Context, id string) (models.Vehicle, error) {
	return s.r.GetByID(ctx, id)
}

// Create validates the payload, resolves the segment/brand references and
// stamps the owner from the authenticated caller, never from the payload.
func (s *VehicleService) Create(ctx context.Context, userID string, in VehicleInput) (models.Vehicle, error) {
	errs := s.validateInput(ctx, in)
	if len(errs) > 0 {
		return models.Vehicle{}, errs
	}
	v := models.Vehicle{
		VehicleName: strings.TrimSpace(in.VehicleName),
		ReleaseYear: *in.ReleaseYear,
		Price:       *in.Price,
		UserID:      userID,
		SegmentID:   in.Segment,
		BrandID:     in.Brand,
	}
	v, err := s.r.Create(ctx, v)
	if err != nil {
		return models.Vehicle{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("vehicle", "created").Inc()
	s.audit.record("vehicle", v.ID, "created", map[string]any{"vehicle_name": v.VehicleName})
	return v, nil
}

// Replace is the PUT semantics: the whole payload is validated again. The
// owner is not re-checked; any authenticated caller may edit any vehicle.
func (s *VehicleService) Replace(ctx context.Context, id string, in VehicleInput) (models.Vehicle, error) {
	v, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Vehicle{}, err
	}
	errs := s.validateInput(ctx, in)
	if len(errs) > 0 {
		return models.Vehicle{}, errs
	}
	v.VehicleName = strings.TrimSpace(in.VehicleName)
	v.ReleaseYear = *in.ReleaseYear
	v.Price = *in.Price
	v.SegmentID = in.Segment
	v.BrandID = in.Brand
	if err := s.r.Update(ctx, v); err != nil {
		return models.Vehicle{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("vehicle", "updated").Inc()
	s.audit.record("vehicle", v.ID, "updated", map[string]any{"vehicle_name": v.VehicleName})
	return s.r.GetByID(ctx, id)
}

func (s *VehicleService) PartialUpdate(ctx context.Context, id string, patch VehiclePatch) (models.Vehicle, error) {
	v, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Vehicle{}, err
	}

	var errs validate.Errs
	if patch.VehicleName != nil {
		if ef := validate.Required("vehicle_name", *patch.VehicleName); ef != nil {
			errs = append(errs, *ef)
		} else {
			v.VehicleName = strings.TrimSpace(*patch.VehicleName)
		}
	}
	if patch.ReleaseYear != nil {
		v.ReleaseYear = *patch.ReleaseYear
	}
	if patch.Price != nil {
		if ef := validate.Price("price", *patch.Price); ef != nil {
			errs = append(errs, *ef)
		} else {
			v.Price = *patch.Price
		}
	}
	if patch.Segment != nil {
		if ef := s.resolveSegment(ctx, *patch.Segment); ef != nil {
			errs = append(errs, *ef)
		} else {
			v.SegmentID = *patch.Segment
		}
	}
	if patch.Brand != nil {
		if ef := s.resolveBrand(ctx, *patch.Brand); ef != nil {
			errs = append(errs, *ef)
		} else {
			v.BrandID = *patch.Brand
		}
	}
	if len(errs) > 0 {
		return models.Vehicle{}, errs
	}

	if err := s.r.Update(ctx, v); err != nil {
		return models.Vehicle{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("vehicle", "updated").Inc()
	s.audit.record("vehicle", v.ID, "updated", map[string]any{"vehicle_name": v.VehicleName})
	return s.r.GetByID(ctx, id)
}

func (s *VehicleService) Delete(ctx context.Context, id string) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("vehicle", "deleted").Inc()
	s.audit.record("vehicle", id, "deleted", nil)
	return nil
}

func (s *VehicleService) validateInput(ctx context.Context, in VehicleInput) validate.Errs {
	var errs validate.Errs
	if ef := validate.Required("vehicle_name", in.VehicleName); ef != nil {
		errs = append(errs, *ef)
	}
	if in.ReleaseYear == nil {
		errs = append(errs, validate.ErrField{Field: "release_year", Msg: "required"})
	}
	if in.Price == nil {
		errs = append(errs, validate.ErrField{Field: "price", Msg: "required"})
	} else if ef := validate.Price("price", *in.Price); ef != nil {
		errs = append(errs, *ef)
	}
	if ef := s.resolveSegment(ctx, in.Segment); ef != nil {
		errs = append(errs, *ef)
	}
	if ef := s.resolveBrand(ctx, in.Brand); ef != nil {
		errs = append(errs, *ef)
	}
	return errs
}

func (s *VehicleService) resolveSegment(ctx context.Context, id string) *validate.ErrField {
	if id == "" {
		return &validate.ErrField{Field: "segment", Msg: "required"}
	}
	if _, err := s.segments.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &validate.ErrField{Field: "segment", Msg: "invalid reference"}
		}
		return &validate.ErrField{Field: "segment", Msg: "lookup failed"}
	}
	return nil
}

func (s *VehicleService) resolveBrand(ctx context.Context, id string) *validate.ErrField {
	if id == "" {
		return &validate.ErrField{Field: "brand", Msg: "required"}
	}
	if _, err := s.brands.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &validate.ErrField{Field: "brand", Msg: "invalid reference"}
		}
		return &validate.ErrField{Field: "brand", Msg: "lookup failed"}
	}
	return nil
}
