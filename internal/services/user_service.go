package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ayasuda/vehicle-catalog/internal/api/validate"
	"github.com/ayasuda/vehicle-catalog/internal/auth"
	"github.com/ayasuda/vehicle-catalog/internal/metrics"
	"github.com/ayasuda/vehicle-catalog/internal/models"
	repo "github.com/ayasuda/vehicle-catalog/internal/repository"
	"github.com/ayasuda/vehicle-catalog/internal/worker"
)

// ErrInvalidCredentials covers every login failure mode: unknown username,
// wrong password, empty fields. Callers must not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

const minPasswordLen = 5

type UserService struct {
	r     repo.Users
	tm    *auth.TokenManager
	audit auditor
}

func NewUserService(r repo.Users, tm *auth.TokenManager, logs repo.AuditLogs, wp *worker.Pool) *UserService {
	return &UserService{r: r, tm: tm, audit: auditor{log: logs, wp: wp}}
}

func (s *UserService) Register(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)

	var errs validate.Errs
	if ef := validate.Required("username", username); ef != nil {
		errs = append(errs, *ef)
	}
	if ef := validate.MinLen("password", password, minPasswordLen); ef != nil {
		errs = append(errs, *ef)
	}
	if len(errs) > 0 {
		return models.User{}, errs
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.r.Create(ctx, username, hash, models.RoleUser)
	if err != nil {
		if errors.Is(err, repo.ErrUsernameTaken) {
			return models.User{}, validate.Errs{{Field: "username", Msg: "already taken"}}
		}
		return models.User{}, err
	}
	metrics.CatalogWritesTotal.WithLabelValues("user", "created").Inc()
	s.audit.record("user", u.ID, "created", map[string]any{"username": u.Username})
	return u, nil
}

// Login verifies the credentials and returns a bearer token.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	u, err := s.r.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tm.Generate(u.ID, u.Role)
}

func (s *UserService) Profile(ctx context.Context, userID string) (models.User, error) {
	return s.r.GetByID(ctx, userID)
}

// Delete removes a user and all vehicles they own; administrative use only,
// the router gates it behind the admin role.
func (s *UserService) Delete(ctx context.Context, id string) error {
	cascaded, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("user", "deleted").Inc()
	metrics.CascadeDeletedVehicles.Add(float64(cascaded))
	s.audit.record("user", id, "deleted", map[string]any{"cascaded_vehicles": cascaded})
	return nil
}
