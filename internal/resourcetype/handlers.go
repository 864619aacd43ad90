package resourcetype

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"campusbooking/internal/api"
)

type Handlers struct {
	Types *Repository
}

type UpsertRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Types.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []ResourceType{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "name is required")
		return
	}

	rt, err := h.Types.Insert(r.Context(), strings.TrimSpace(req.Name), strings.TrimSpace(req.Description))
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"resourceType": rt})
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
	if strings.TrimSpace(req.Name) == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "name is required")
		return
	}

	rt, err := h.Types.Update(r.Context(), id, strings.TrimSpace(req.Name), strings.TrimSpace(req.Description))
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource type not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"resourceType": rt})
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	deleted, err := h.Types.Delete(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusConflict, "TYPE_IN_USE", "resource type has resources attached")
		return
	}
	if !deleted {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource type not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
