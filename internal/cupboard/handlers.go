package cupboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"campusbooking/internal/api"
)

type Handlers struct {
	Cupboards *Repository
}

type UpsertRequest struct {
	ResourceID   int64  `json:"resourceId"`
	Name         string `json:"name"`
	TotalShelves int    `json:"totalShelves"`
}

func (req *UpsertRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	if req.ResourceID <= 0 {
		return "resourceId is required"
	}
	if req.Name == "" {
		return "name is required"
	}
	if req.TotalShelves < 0 {
		return "totalShelves must not be negative"
	}
	return ""
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	var resourceID *int64
	if s := r.URL.Query().Get("resource_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid resource_id")
			return
		}
		resourceID = &id
	}

	items, err := h.Cupboards.List(r.Context(), resourceID)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Cupboard{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	c, err := h.Cupboards.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "cupboard not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"cupboard": c})
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if msg := req.validate(); msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	c, err := h.Cupboards.Insert(r.Context(), req.ResourceID, req.Name, req.TotalShelves)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unknown resourceId")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"cupboard": c})
}

func (h Handlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if msg := req.validate(); msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	c, err := h.Cupboards.Update(r.Context(), id, req.ResourceID, req.Name, req.TotalShelves)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "cupboard not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"cupboard": c})
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	deleted, err := h.Cupboards.Delete(r.Context(), id)
	if err != nil {
		// Shelves still reference the cupboard.
		api.WriteError(w, http.StatusConflict, "CUPBOARD_IN_USE", "cupboard has shelves attached")
		return
	}
	if !deleted {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "cupboard not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
