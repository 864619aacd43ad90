package booking

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusbooking/internal/api"
	"campusbooking/internal/audit"
	"campusbooking/internal/user"
	"campusbooking/pkg/db"
)

type Handlers struct {
	DB       *pgxpool.Pool
	Bookings *Repository
}

type CreateRequest struct {
	ResourceID int64     `json:"resourceId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

type PatchStatusRequest struct {
	Status string `json:"status"`
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	actor := api.ActorFromContext(r.Context())
	if actor == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if req.ResourceID <= 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "resourceId is required")
		return
	}

	if err := PlanCreate(actor.Role, req.Start, req.End); err != nil {
		writeWorkflowError(w, err)
		return
	}

	var created *Booking
	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		// Lock the resource row so concurrent creates for the same resource
		// serialize their conflict checks.
		if err := LockResource(r.Context(), tx, req.ResourceID); err != nil {
			return err
		}

		active, err := ListActiveForResource(r.Context(), tx, req.ResourceID)
		if err != nil {
			return err
		}
		if c := FindConflict(active, req.Start, req.End, 0); c != nil {
			return &ConflictError{Existing: c}
		}

		created, err = Insert(r.Context(), tx, req.ResourceID, actor.ID, req.Start, req.End)
		if err != nil {
			return err
		}

		return audit.Insert(r.Context(), tx, &created.ID, "BOOKING_CREATED", actor.ID, map[string]any{
			"resourceId": req.ResourceID,
			"start":      req.Start,
			"end":        req.End,
		})
	})
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{"booking": created})
}

func (h Handlers) PatchStatus(w http.ResponseWriter, r *http.Request) {
	actor := api.ActorFromContext(r.Context())
	if actor == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid booking id")
		return
	}

	var req PatchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	target, err := ParseStatus(req.Status)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status")
		return
	}

	var updated *Booking
	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}
		from := b.Status

		if err := ApplyTransition(b, actor.ID, actor.Role, target); err != nil {
			return err
		}

		updated, err = UpdateStatus(r.Context(), tx, b.ID, b.Status, b.ApproverID)
		if err != nil {
			return err
		}

		return audit.Insert(r.Context(), tx, &b.ID, "BOOKING_STATUS_CHANGED", actor.ID, map[string]any{
			"from": from,
			"to":   target,
		})
	})
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"booking": updated})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	actor := api.ActorFromContext(r.Context())
	if actor == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid booking id")
		return
	}

	b, err := h.Bookings.GetByID(r.Context(), id)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	if actor.Role != user.RoleAdmin && b.RequesterID != actor.ID {
		api.WriteError(w, http.StatusForbidden, "FORBIDDEN", "not your booking")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"booking": b})
}

// List serves both views: admins see every booking and may filter by status,
// students and faculty see their own.
func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	actor := api.ActorFromContext(r.Context())
	if actor == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	var (
		items []Booking
		err   error
	)
	if actor.Role == user.RoleAdmin {
		var status *Status
		if s := r.URL.Query().Get("status"); s != "" {
			parsed, perr := ParseStatus(s)
			if perr != nil {
				api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status")
				return
			}
			status = &parsed
		}
		items, err = h.Bookings.ListAll(r.Context(), status)
	} else {
		items, err = h.Bookings.ListByRequester(r.Context(), actor.ID)
	}
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Booking{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func writeWorkflowError(w http.ResponseWriter, err error) {
	var conflict *ConflictError
	switch {
	case errors.Is(err, ErrInvalidInterval):
		api.WriteError(w, http.StatusBadRequest, "INVALID_INTERVAL", "start must be before end")
	case errors.As(err, &conflict):
		api.WriteError(w, http.StatusConflict, "RESOURCE_CONFLICT", conflict.Error())
	case errors.Is(err, ErrNotFound):
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking or resource not found")
	case errors.Is(err, ErrForbidden):
		api.WriteError(w, http.StatusForbidden, "FORBIDDEN", "action not permitted")
	case errors.Is(err, ErrInvalidTransition):
		api.WriteError(w, http.StatusConflict, "INVALID_STATE_TRANSITION", "invalid status transition")
	default:
		log.Printf("[booking] workflow error: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}
