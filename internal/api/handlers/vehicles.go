package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayasuda/vehicle-catalog/internal/api/httpx"
	"github.com/ayasuda/vehicle-catalog/internal/middleware"
	"github.com/ayasuda/vehicle-catalog/internal/services"
)

type VehicleHandler struct {
	Svc *services.VehicleService
}

func NewVehicleHandler(svc *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{Svc: svc}
}

type vehicleReq struct {
	VehicleName string   `json:"vehicle_name"`
	ReleaseYear *int     `json:"release_year"`
	Price       *float64 `json:"price"`
	Segment     string   `json:"segment"`
	Brand       string   `json:"brand"`
}

func (req vehicleReq) input() services.VehicleInput {
	return services.VehicleInput{
		VehicleName: req.VehicleName,
		ReleaseYear: req.ReleaseYear,
		Price:       req.Price,
		Segment:     req.Segment,
		Brand:       req.Brand,
	}
}

type vehiclePatchReq struct {
	VehicleName *string  `json:"vehicle_name"`
	ReleaseYear *int     `json:"release_year"`
	Price       *float64 `json:"price"`
	Segment     *string  `json:"segment"`
	Brand       *string  `json:"brand"`
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vs, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, vs)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}
	var req vehicleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	v, err := h.Svc.Create(r.Context(), uid, req.input())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, v)
}

func (h *VehicleHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req vehicleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	v, err := h.Svc.Replace(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	var req vehiclePatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	patch := services.VehiclePatch{
		VehicleName: req.VehicleName,
		ReleaseYear: req.ReleaseYear,
		Price:       req.Price,
		Segment:     req.Segment,
		Brand:       req.Brand,
	}
	v, err := h.Svc.PartialUpdate(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
