package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayasuda/vehicle-catalog/internal/services"
)

// UserAdminHandler exposes the administrative user deletion. Regular user
// lifecycle ends at registration; only admins remove accounts, and the
// removal cascades to the user's vehicles.
type UserAdminHandler struct {
	Users *services.UserService
}

func NewUserAdminHandler(us *services.UserService) *UserAdminHandler {
	return &UserAdminHandler{Users: us}
}

func (h *UserAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
