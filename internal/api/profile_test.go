package api

import (
	"net/http"
	"testing"
)

func TestProfileReturnsOwnRecord(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser("dummy", "dummy_pw", "user")

	rec := e.request(http.MethodGet, "/api/profile", e.tokenFor(u), nil)
	mustStatus(t, rec, http.StatusOK)

	var body map[string]any
	decodeBody(t, rec, &body)
	if body["id"] != u.ID || body["username"] != "dummy" {
		t.Fatalf("unexpected profile: %v", body)
	}
	if len(body) != 2 {
		t.Fatalf("profile must expose only id and username, got %v", body)
	}
}

func TestProfileRejectsPutAndPatch(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser("dummy", "dummy_pw", "user")
	tok := e.tokenFor(u)
	payload := map[string]string{"username": "dummy", "password": "dummy_pw"}

	rec := e.request(http.MethodPut, "/api/profile", tok, payload)
	mustStatus(t, rec, http.StatusMethodNotAllowed)
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["message"] != "PUT method is not allowed" {
		t.Fatalf("unexpected message: %q", body["message"])
	}

	rec = e.request(http.MethodPatch, "/api/profile", tok, payload)
	mustStatus(t, rec, http.StatusMethodNotAllowed)
	decodeBody(t, rec, &body)
	if body["message"] != "PATCH method is not allowed" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestProfileRequiresToken(t *testing.T) {
	e := newTestEnv(t)

	rec := e.request(http.MethodGet, "/api/profile", "", nil)
	mustStatus(t, rec, http.StatusUnauthorized)

	rec = e.request(http.MethodGet, "/api/profile", "garbage-token", nil)
	mustStatus(t, rec, http.StatusUnauthorized)
}
