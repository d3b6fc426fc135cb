package api

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ayasuda/vehicle-catalog/internal/models"
	repo "github.com/ayasuda/vehicle-catalog/internal/repository"
)

// fakeStore is an in-memory implementation of the repository interfaces. It
// honors the same contracts as the postgres implementation, including the
// cascade on segment/brand/user deletion.
type fakeStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	segments map[string]models.Segment
	brands   map[string]models.Brand
	vehicles map[string]models.Vehicle
	audits   []models.AuditLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]models.User{},
		segments: map[string]models.Segment{},
		brands:   map[string]models.Brand{},
		vehicles: map[string]models.Vehicle{},
	}
}

type fakeUsers struct{ s *fakeStore }

func (f fakeUsers) Create(_ context.Context, username, hash, role string) (models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Username == username {
			return models.User{}, repo.ErrUsernameTaken
		}
	}
	u := models.User{ID: uuid.NewString(), Username: username, PasswordHash: hash, Role: role}
	f.s.users[u.ID] = u
	return u, nil
}

func (f fakeUsers) GetByID(_ context.Context, id string) (models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (f fakeUsers) GetByUsername(_ context.Context, username string) (models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (f fakeUsers) Delete(_ context.Context, id string) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.users[id]; !ok {
		return 0, repo.ErrNotFound
	}
	var cascaded int64
	for vid, v := range f.s.vehicles {
		if v.UserID == id {
			delete(f.s.vehicles, vid)
			cascaded++
		}
	}
	delete(f.s.users, id)
	return cascaded, nil
}

type fakeSegments struct{ s *fakeStore }

func (f fakeSegments) Create(_ context.Context, name string) (models.Segment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	seg := models.Segment{ID: uuid.NewString(), SegmentName: name}
	f.s.segments[seg.ID] = seg
	return seg, nil
}

func (f fakeSegments) GetByID(_ context.Context, id string) (models.Segment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	seg, ok := f.s.segments[id]
	if !ok {
		return models.Segment{}, repo.ErrNotFound
	}
	return seg, nil
}

func (f fakeSegments) List(_ context.Context) ([]models.Segment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []models.Segment{}
	for _, seg := range f.s.segments {
		out = append(out, seg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeSegments) Update(_ context.Context, seg models.Segment) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.segments[seg.ID]; !ok {
		return repo.ErrNotFound
	}
	f.s.segments[seg.ID] = seg
	return nil
}

func (f fakeSegments) Delete(_ context.Context, id string) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.segments[id]; !ok {
		return 0, repo.ErrNotFound
	}
	var cascaded int64
	for vid, v := range f.s.vehicles {
		if v.SegmentID == id {
			delete(f.s.vehicles, vid)
			cascaded++
		}
	}
	delete(f.s.segments, id)
	return cascaded, nil
}

type fakeBrands struct{ s *fakeStore }

func (f fakeBrands) Create(_ context.Context, name string) (models.Brand, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	b := models.Brand{ID: uuid.NewString(), BrandName: name}
	f.s.brands[b.ID] = b
	return b, nil
}

func (f fakeBrands) GetByID(_ context.Context, id string) (models.Brand, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	b, ok := f.s.brands[id]
	if !ok {
		return models.Brand{}, repo.ErrNotFound
	}
	return b, nil
}

func (f fakeBrands) List(_ context.Context) ([]models.Brand, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []models.Brand{}
	for _, b := range f.s.brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeBrands) Update(_ context.Context, b models.Brand) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.brands[b.ID]; !ok {
		return repo.ErrNotFound
	}
	f.s.brands[b.ID] = b
	return nil
}

func (f fakeBrands) Delete(_ context.Context, id string) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.brands[id]; !ok {
		return 0, repo.ErrNotFound
	}
	var cascaded int64
	for vid, v := range f.s.vehicles {
		if v.BrandID == id {
			delete(f.s.vehicles, vid)
			cascaded++
		}
	}
	delete(f.s.brands, id)
	return cascaded, nil
}

type fakeVehicles struct{ s *fakeStore }

// denormalize fills the read-only name fields the way the SQL join does.
func (f fakeVehicles) denormalize(v models.Vehicle) models.Vehicle {
	if seg, ok := f.s.segments[v.SegmentID]; ok {
		v.SegmentName = seg.SegmentName
	}
	if b, ok := f.s.brands[v.BrandID]; ok {
		v.BrandName = b.BrandName
	}
	return v
}

func (f fakeVehicles) Create(_ context.Context, v models.Vehicle) (models.Vehicle, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	stored := v
	stored.SegmentName, stored.BrandName = "", ""
	f.s.vehicles[v.ID] = stored
	return f.denormalize(stored), nil
}

func (f fakeVehicles) GetByID(_ context.Context, id string) (models.Vehicle, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	v, ok := f.s.vehicles[id]
	if !ok {
		return models.Vehicle{}, repo.ErrNotFound
	}
	return f.denormalize(v), nil
}

func (f fakeVehicles) List(_ context.Context) ([]models.Vehicle, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []models.Vehicle{}
	for _, v := range f.s.vehicles {
		out = append(out, f.denormalize(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeVehicles) Update(_ context.Context, v models.Vehicle) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	old, ok := f.s.vehicles[v.ID]
	if !ok {
		return repo.ErrNotFound
	}
	v.UserID = old.UserID // owner column never changes on update
	v.SegmentName, v.BrandName = "", ""
	f.s.vehicles[v.ID] = v
	return nil
}

func (f fakeVehicles) Delete(_ context.Context, id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.vehicles[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.s.vehicles, id)
	return nil
}

type fakeAuditLogs struct{ s *fakeStore }

func (f fakeAuditLogs) Create(_ context.Context, l models.AuditLog) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.audits = append(f.s.audits, l)
	return nil
}
