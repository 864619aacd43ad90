package user

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %s", s)
	}
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`

	// PasswordHash never leaves the server.
	PasswordHash string `json:"-"`
}
