package handlers

import (
	"net/http"

	"github.com/ayasuda/vehicle-catalog/internal/api/httpx"
	"github.com/ayasuda/vehicle-catalog/internal/middleware"
	"github.com/ayasuda/vehicle-catalog/internal/services"
)

type ProfileHandler struct {
	Users *services.UserService
}

func NewProfileHandler(us *services.UserService) *ProfileHandler {
	return &ProfileHandler{Users: us}
}

// Get returns the caller's own record. The identity always comes from the
// token, not from a path parameter, so no one can read another profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}
	u, err := h.Users.Profile(r.Context(), uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// NotAllowed serves the deliberately disabled profile mutations. The storage
// layer could do these; the API surface refuses them.
func (h *ProfileHandler) NotAllowed(verb string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"message": verb + " method is not allowed",
		})
	}
}
