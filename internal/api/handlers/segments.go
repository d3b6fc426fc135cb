package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayasuda/vehicle-catalog/internal/api/httpx"
	"github.com/ayasuda/vehicle-catalog/internal/services"
)

type SegmentHandler struct {
	Svc *services.SegmentService
}

func NewSegmentHandler(svc *services.SegmentService) *SegmentHandler {
	return &SegmentHandler{Svc: svc}
}

type segmentReq struct {
	SegmentName string `json:"segment_name"`
}

type segmentPatchReq struct {
	SegmentName *string `json:"segment_name"`
}

func (h *SegmentHandler) List(w http.ResponseWriter, r *http.Request) {
	segs, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, segs)
}

func (h *SegmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	seg, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, seg)
}

func (h *SegmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req segmentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	seg, err := h.Svc.Create(r.Context(), req.SegmentName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, seg)
}

func (h *SegmentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req segmentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	seg, err := h.Svc.Replace(r.Context(), chi.URLParam(r, "id"), req.SegmentName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, seg)
}

func (h *SegmentHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	var req segmentPatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w)
		return
	}
	seg, err := h.Svc.PartialUpdate(r.Context(), chi.URLParam(r, "id"), req.SegmentName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, seg)
}

func (h *SegmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
