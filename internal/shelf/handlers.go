package shelf

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"campusbooking/internal/api"
)

type Handlers struct {
	Shelves *Repository
}

type UpsertRequest struct {
	CupboardID  int64  `json:"cupboardId"`
	ShelfNumber int    `json:"shelfNumber"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
}

func (req *UpsertRequest) validate() string {
	req.Description = strings.TrimSpace(req.Description)
	if req.CupboardID <= 0 {
		return "cupboardId is required"
	}
	if req.ShelfNumber <= 0 {
		return "shelfNumber must be positive"
	}
	if req.Capacity < 0 {
		return "capacity must not be negative"
	}
	return ""
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	var cupboardID *int64
	if s := r.URL.Query().Get("cupboard_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid cupboard_id")
			return
		}
		cupboardID = &id
	}

	items, err := h.Shelves.List(r.Context(), cupboardID)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Shelf{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	s, err := h.Shelves.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "shelf not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"shelf": s})
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

	s, err := h.Shelves.Insert(r.Context(), req.CupboardID, req.ShelfNumber, req.Capacity, req.Description)
	if err != nil {
		// FK violation (unknown cupboard) or duplicate shelf number.
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unknown cupboardId or shelfNumber already taken")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"shelf": s})
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

	s, err := h.Shelves.Update(r.Context(), id, req.CupboardID, req.ShelfNumber, req.Capacity, req.Description)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "shelf not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"shelf": s})
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	deleted, err := h.Shelves.Delete(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if !deleted {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "shelf not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
