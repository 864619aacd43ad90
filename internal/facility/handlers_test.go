package facility

import "testing"

func TestUpsertRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  UpsertRequest
		msg  string
	}{
		{"valid", UpsertRequest{ResourceID: 1, Name: "Projector"}, ""},
		{"trims name", UpsertRequest{ResourceID: 1, Name: "  Whiteboard  "}, ""},
		{"missing resource", UpsertRequest{Name: "Projector"}, "resourceId is required"},
		{"negative resource", UpsertRequest{ResourceID: -3, Name: "Projector"}, "resourceId is required"},
		{"missing name", UpsertRequest{ResourceID: 1}, "name is required"},
		{"blank name", UpsertRequest{ResourceID: 1, Name: "   "}, "name is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.validate(); got != tc.msg {
				t.Fatalf("validate() = %q, want %q", got, tc.msg)
			}
		})
	}
}
