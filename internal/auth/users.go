package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campusbooking/internal/api"
	"campusbooking/internal/user"
)

// Admin-only account administration. Routes under /v1/users are gated on the
// admin role by the router; these handlers assume that gate already ran.

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (req *UpdateUserRequest) validate() (user.Role, string) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" {
		return "", "name is required"
	}
	if req.Email == "" {
		return "", "email is required"
	}
	role, err := user.ParseRole(req.Role)
	if err != nil {
		return "", "invalid role"
	}
	return role, ""
}

func (h Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	items, err := h.Users.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []user.User{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	u, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	role, msg := req.validate()
	if msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	u, err := h.Users.Update(r.Context(), id, req.Name, req.Email, role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			api.WriteError(w, http.StatusConflict, "EMAIL_TAKEN", "a user with this email already exists")
			return
		}
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	if actor := api.ActorFromContext(r.Context()); actor != nil && actor.ID == id {
		api.WriteError(w, http.StatusForbidden, "FORBIDDEN", "cannot delete your own account")
		return
	}

	deleted, err := h.Users.Delete(r.Context(), id)
	if err != nil {
		// Bookings still reference the user.
		api.WriteError(w, http.StatusConflict, "USER_IN_USE", "user has bookings attached")
		return
	}
	if !deleted {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
