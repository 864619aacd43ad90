package resource

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"campusbooking/internal/api"
)

type Handlers struct {
	Resources *Repository
}

type UpsertRequest struct {
	Name        string `json:"name"`
	TypeID      int64  `json:"typeId"`
	BuildingID  int64  `json:"buildingId"`
	FloorNumber int    `json:"floorNumber"`
	Description string `json:"description"`
}

func (req *UpsertRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" {
		return "name is required"
	}
	if req.TypeID <= 0 {
		return "typeId is required"
	}
	if req.BuildingID <= 0 {
		return "buildingId is required"
	}
	return ""
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	var buildingID *int64
	if s := r.URL.Query().Get("building_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid building_id")
			return
		}
		buildingID = &id
	}

	items, err := h.Resources.List(r.Context(), buildingID)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Resource{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// parseLocationQuery extracts the building/floor filters for the
// by-location view. building_id is mandatory there, unlike the plain list.
func parseLocationQuery(values url.Values) (buildingID int64, floor *int, errMsg string) {
	s := values.Get("building_id")
	if s == "" {
		return 0, nil, "building_id is required"
	}
	buildingID, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, nil, "invalid building_id"
	}
	if f := values.Get("floor_number"); f != "" {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, nil, "invalid floor_number"
		}
		floor = &n
	}
	return buildingID, floor, ""
}

func (h Handlers) ByLocation(w http.ResponseWriter, r *http.Request) {
	buildingID, floor, errMsg := parseLocationQuery(r.URL.Query())
	if errMsg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", errMsg)
		return
	}

	items, err := h.Resources.ListByLocation(r.Context(), buildingID, floor)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Resource{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	res, err := h.Resources.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"resource": res})
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

	res, err := h.Resources.Insert(r.Context(), req.Name, req.TypeID, req.BuildingID, req.FloorNumber, req.Description)
	if err != nil {
		// The FK violations here mean the referenced type or building is gone.
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unknown typeId or buildingId")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"resource": res})
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

	res, err := h.Resources.Update(r.Context(), id, req.Name, req.TypeID, req.BuildingID, req.FloorNumber, req.Description)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"resource": res})
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	deleted, err := h.Resources.Delete(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusConflict, "RESOURCE_IN_USE", "resource has bookings or maintenance attached")
		return
	}
	if !deleted {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
