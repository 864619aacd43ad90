package cupboard

import "testing"

func TestUpsertRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  UpsertRequest
		msg  string
	}{
		{"valid", UpsertRequest{ResourceID: 1, Name: "Lab cabinet", TotalShelves: 4}, ""},
		{"zero shelves ok", UpsertRequest{ResourceID: 1, Name: "Empty unit"}, ""},
		{"missing resource", UpsertRequest{Name: "Lab cabinet"}, "resourceId is required"},
		{"missing name", UpsertRequest{ResourceID: 1}, "name is required"},
		{"negative shelves", UpsertRequest{ResourceID: 1, Name: "Lab cabinet", TotalShelves: -1}, "totalShelves must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.validate(); got != tc.msg {
				t.Fatalf("validate() = %q, want %q", got, tc.msg)
			}
		})
	}
}
