package api

import (
	"net/http"
	"testing"

	"github.com/ayasuda/vehicle-catalog/internal/models"
)

func TestBrandCRUD(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser("dummy", "dummy_pw", "user")
	tok := e.tokenFor(u)

	rec := e.request(http.MethodPost, "/api/brands/", tok, map[string]string{"brand_name": "Tesla"})
	mustStatus(t, rec, http.StatusCreated)
	var b models.Brand
	decodeBody(t, rec, &b)
	if b.BrandName != "Tesla" {
		t.Fatalf("unexpected brand: %+v", b)
	}

	rec = e.request(http.MethodGet, "/api/brands/"+b.ID, tok, nil)
	mustStatus(t, rec, http.StatusOK)

	rec = e.request(http.MethodGet, "/api/brands/", tok, nil)
	mustStatus(t, rec, http.StatusOK)
	var list []models.Brand
	decodeBody(t, rec, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 brand, got %d", len(list))
	}

	rec = e.request(http.MethodPatch, "/api/brands/"+b.ID, tok, map[string]string{"brand_name": "Toyota"})
	mustStatus(t, rec, http.StatusOK)
	if e.store.brands[b.ID].BrandName != "Toyota" {
		t.Fatalf("patch not applied")
	}

	rec = e.request(http.MethodDelete, "/api/brands/"+b.ID, tok, nil)
	mustStatus(t, rec, http.StatusNoContent)
	if len(e.store.brands) != 0 {
		t.Fatalf("brand not deleted")
	}
}

func TestBrandCreateRejectsEmptyName(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser("dummy", "dummy_pw", "user")

	rec := e.request(http.MethodPost, "/api/brands/", e.tokenFor(u), map[string]string{"brand_name": ""})
	mustStatus(t, rec, http.StatusBadRequest)
	if len(e.store.brands) != 0 {
		t.Fatalf("nothing should be persisted")
	}
}

func TestBrandsRequireToken(t *testing.T) {
	e := newTestEnv(t)
	rec := e.request(http.MethodGet, "/api/brands/", "", nil)
	mustStatus(t, rec, http.StatusUnauthorized)
}
