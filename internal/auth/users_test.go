package auth

import (
	"testing"

	"campusbooking/internal/user"
)

func TestUpdateUserRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  UpdateUserRequest
		role user.Role
		msg  string
	}{
		{"valid", UpdateUserRequest{Name: "Ada", Email: "ada@campus.edu", Role: "faculty"}, user.RoleFaculty, ""},
		{"role change to admin", UpdateUserRequest{Name: "Ada", Email: "ada@campus.edu", Role: "admin"}, user.RoleAdmin, ""},
		{"missing name", UpdateUserRequest{Email: "ada@campus.edu", Role: "student"}, "", "name is required"},
		{"missing email", UpdateUserRequest{Name: "Ada", Role: "student"}, "", "email is required"},
		{"unknown role", UpdateUserRequest{Name: "Ada", Email: "ada@campus.edu", Role: "staff"}, "", "invalid role"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			role, msg := tc.req.validate()
			if msg != tc.msg {
				t.Fatalf("validate() msg = %q, want %q", msg, tc.msg)
			}
			if role != tc.role {
				t.Fatalf("validate() role = %q, want %q", role, tc.role)
			}
		})
	}
}

func TestUpdateUserRequestNormalizesEmail(t *testing.T) {
	req := UpdateUserRequest{Name: " Ada ", Email: " Ada@Campus.EDU ", Role: "student"}
	if _, msg := req.validate(); msg != "" {
		t.Fatalf("unexpected error %q", msg)
	}
	if req.Name != "Ada" {
		t.Fatalf("name = %q", req.Name)
	}
	if req.Email != "ada@campus.edu" {
		t.Fatalf("email = %q", req.Email)
	}
}
