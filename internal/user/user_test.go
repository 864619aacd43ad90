package user

import "testing"

func TestParseRole(t *testing.T) {
	for _, s := range []string{"student", "faculty", "admin"} {
		if _, err := ParseRole(s); err != nil {
			t.Fatalf("expected %q to parse, got %v", s, err)
		}
	}
	for _, s := range []string{"", "Admin", "staff", "user"} {
		if _, err := ParseRole(s); err == nil {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}
