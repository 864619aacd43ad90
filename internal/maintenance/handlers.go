package maintenance

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"campusbooking/internal/api"
)

type Handlers struct {
	Records *Repository
}

type UpsertRequest struct {
	ResourceID      int64      `json:"resourceId"`
	MaintenanceType string     `json:"maintenanceType"`
	ScheduledDate   *time.Time `json:"scheduledDate"`
	Status          string     `json:"status"`
	Cost            string     `json:"cost"`
	Notes           string     `json:"notes"`
}

type parsedUpsert struct {
	status Status
	cost   decimal.Decimal
}

func (req *UpsertRequest) validate() (*parsedUpsert, string) {
	req.MaintenanceType = strings.TrimSpace(req.MaintenanceType)
	req.Notes = strings.TrimSpace(req.Notes)
	if req.MaintenanceType == "" {
		return nil, "maintenanceType is required"
	}

	status, err := ParseStatus(req.Status)
	if err != nil {
		return nil, "invalid status"
	}

	cost := decimal.Zero
	if req.Cost != "" {
		cost, err = decimal.NewFromString(req.Cost)
		if err != nil || cost.IsNegative() {
			return nil, "cost must be a non-negative decimal"
		}
	}

	return &parsedUpsert{status: status, cost: cost}, ""
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

	items, err := h.Records.List(r.Context(), resourceID)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Record{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if req.ResourceID <= 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "resourceId is required")
		return
	}
	parsed, msg := req.validate()
	if msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	rec, err := h.Records.Insert(r.Context(), req.ResourceID, req.MaintenanceType, req.ScheduledDate, parsed.status, parsed.cost, req.Notes)
	if err != nil {
		// FK violation: the resource does not exist.
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unknown resourceId")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"maintenance": rec})
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
	parsed, msg := req.validate()
	if msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	rec, err := h.Records.Update(r.Context(), id, req.MaintenanceType, req.ScheduledDate, parsed.status, parsed.cost, req.Notes)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "maintenance record not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"maintenance": rec})
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	deleted, err := h.Records.Delete(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if !deleted {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "maintenance record not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
