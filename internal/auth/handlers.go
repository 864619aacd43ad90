package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"campusbooking/internal/api"
	"campusbooking/internal/user"
	"campusbooking/pkg/config"
	"campusbooking/pkg/token"
)

type Handlers struct {
	Cfg   config.Config
	Users *user.Repository
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// Role, when set, must match the registered role. The login form sends
	// it so a student cannot sign in through the admin entry point.
	Role string `json:"role,omitempty"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (h Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "name, email and password are required")
		return
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid role")
		return
	}
	// Admin accounts are pre-seeded, never self-registered.
	if role == user.RoleAdmin {
		api.WriteError(w, http.StatusForbidden, "FORBIDDEN", "admin accounts cannot be created via signup")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	u, err := h.Users.Insert(r.Context(), req.Name, req.Email, role, string(hash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			api.WriteError(w, http.StatusConflict, "EMAIL_TAKEN", "a user with this email already exists")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	signed, err := token.Sign(u.ID, string(u.Role), u.Name, u.Email, h.Cfg.JWT.Secret, h.Cfg.JWT.TTL, time.Now())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusCreated, AuthResponse{Token: signed, User: u})
}

func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	u, err := h.Users.FindByEmail(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid email or password")
		return
	}

	if req.Role != "" && string(u.Role) != req.Role {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "you are registered as "+string(u.Role))
		return
	}

	signed, err := token.Sign(u.ID, string(u.Role), u.Name, u.Email, h.Cfg.JWT.Secret, h.Cfg.JWT.TTL, time.Now())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, AuthResponse{Token: signed, User: u})
}

func (h Handlers) Me(w http.ResponseWriter, r *http.Request) {
	actor := api.ActorFromContext(r.Context())
	if actor == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	u, err := h.Users.GetByID(r.Context(), actor.ID)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"user": u})
}
