package api

import (
	"net/http"
	"testing"
)

func TestUserDeleteRequiresAdmin(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser("dummy", "dummy_pw", "user")
	victim := e.createUser("victim", "dummy_pw", "user")

	rec := e.request(http.MethodDelete, "/api/users/"+victim.ID, e.tokenFor(u), nil)
	mustStatus(t, rec, http.StatusForbidden)
	if _, ok := e.store.users[victim.ID]; !ok {
		t.Fatalf("user must not be deleted by a non-admin")
	}
}

func TestAdminUserDeleteCascadesToVehicles(t *testing.T) {
	e := newTestEnv(t)
	admin := e.createUser("root", "dummy_pw", "admin")
	victim := e.createUser("victim", "dummy_pw", "user")
	seg := e.createSegment("Sedan")
	brand := e.createBrand("Tesla")
	e.createVehicle(victim.ID, seg.ID, brand.ID)
	e.createVehicle(victim.ID, seg.ID, brand.ID)

	rec := e.request(http.MethodDelete, "/api/users/"+victim.ID, e.tokenFor(admin), nil)
	mustStatus(t, rec, http.StatusNoContent)

	if _, ok := e.store.users[victim.ID]; ok {
		t.Fatalf("user not deleted")
	}
	if len(e.store.vehicles) != 0 {
		t.Fatalf("expected the user's vehicles removed with the account")
	}
}
