package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayasuda/vehicle-catalog/internal/api/httpx"
	"github.com/ayasuda/vehicle-catalog/internal/services"
)

type BrandHandler struct {
	Svc *services.BrandService
}

func NewBrandHandler(svc *services.BrandService) *BrandHandler {
	return &BrandHandler{Svc: svc}
}

type brandReq struct {
	BrandName string `json:"brand_name"`
}

type brandPatchReq struct {
	BrandName *string `json:"brand_name"`
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, brands)
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req brandReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	b, err := h.Svc.Create(r.Context(), req.BrandName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, b)
}

func (h *BrandHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req brandReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	b, err := h.Svc.Replace(r.Context(), chi.URLParam(r, "id"), req.BrandName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BrandHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	var req brandPatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	b, err := h.Svc.PartialUpdate(r.Context(), chi.URLParam(r, "id"), req.BrandName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
