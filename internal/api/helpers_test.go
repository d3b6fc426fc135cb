package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayasuda/vehicle-catalog/internal/auth"
	"github.com/ayasuda/vehicle-catalog/internal/config"
	"github.com/ayasuda/vehicle-catalog/internal/middleware"
	"github.com/ayasuda/vehicle-catalog/internal/models"
	"github.com/ayasuda/vehicle-catalog/internal/services"
	"github.com/ayasuda/vehicle-catalog/internal/worker"
)

type testEnv struct {
	t      *testing.T
	router http.Handler
	store  *fakeStore
	tm     *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeStore()
	tm := auth.NewTokenManager("test-secret", "vehicle-catalog", time.Hour)
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)

	users := fakeUsers{store}
	segments := fakeSegments{store}
	brands := fakeBrands{store}
	vehicles := fakeVehicles{store}
	audits := fakeAuditLogs{store}

	cfg := config.Config{Env: "dev", RateRPS: 1000}
	router := NewRouter(RouterDeps{
		Cfg:        cfg,
		AuthMW:     middleware.NewAuthMiddleware(tm),
		UserSvc:    services.NewUserService(users, tm, audits, wp),
		SegmentSvc: services.NewSegmentService(segments, audits, wp),
		BrandSvc:   services.NewBrandService(brands, audits, wp),
		VehicleSvc: services.NewVehicleService(vehicles, segments, brands, audits, wp),
	})

	return &testEnv{t: t, router: router, store: store, tm: tm}
}

func (e *testEnv) request(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			e.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// createUser seeds a user directly in the store, like force-authenticating a
// test client.
func (e *testEnv) createUser(username, password, role string) models.User {
	e.t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		e.t.Fatalf("hash: %v", err)
	}
	u, err := fakeUsers{e.store}.Create(context.Background(), username, hash, role)
	if err != nil {
		e.t.Fatalf("create user: %v", err)
	}
	return u
}

func (e *testEnv) tokenFor(u models.User) string {
	e.t.Helper()
	tok, err := e.tm.Generate(u.ID, u.Role)
	if err != nil {
		e.t.Fatalf("token: %v", err)
	}
	return tok
}

func (e *testEnv) createSegment(name string) models.Segment {
	e.t.Helper()
	seg, err := fakeSegments{e.store}.Create(context.Background(), name)
	if err != nil {
		e.t.Fatalf("create segment: %v", err)
	}
	return seg
}

func (e *testEnv) createBrand(name string) models.Brand {
	e.t.Helper()
	b, err := fakeBrands{e.store}.Create(context.Background(), name)
	if err != nil {
		e.t.Fatalf("create brand: %v", err)
	}
	return b
}

func (e *testEnv) createVehicle(userID, segmentID, brandID string) models.Vehicle {
	e.t.Helper()
	v, err := fakeVehicles{e.store}.Create(context.Background(), models.Vehicle{
		VehicleName: "MODEL S",
		ReleaseYear: 2019,
		Price:       500.00,
		UserID:      userID,
		SegmentID:   segmentID,
		BrandID:     brandID,
	})
	if err != nil {
		e.t.Fatalf("create vehicle: %v", err)
	}
	return v
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rec.Code, rec.Body.String())
	}
}
