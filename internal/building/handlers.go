package building

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"campusbooking/internal/api"
)

type Handlers struct {
	Buildings *Repository
}

type UpsertRequest struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Floors int    `json:"floors"`
}

func (req *UpsertRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.TrimSpace(req.Code)
	if req.Name == "" {
		return "name is required"
	}
	if req.Floors < 0 {
		return "floors must not be negative"
	}
	return ""
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Buildings.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Building{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
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

	b, err := h.Buildings.Insert(r.Context(), req.Name, req.Code, req.Floors)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"building": b})
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

	b, err := h.Buildings.Update(r.Context(), id, req.Name, req.Code, req.Floors)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "building not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"building": b})
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	deleted, err := h.Buildings.Delete(r.Context(), id)
	if err != nil {
		// Resources still reference the building.
		api.WriteError(w, http.StatusConflict, "BUILDING_IN_USE", "building has resources attached")
		return
	}
	if !deleted {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "building not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
