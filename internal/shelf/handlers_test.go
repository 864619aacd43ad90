package shelf

import "testing"

func TestUpsertRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  UpsertRequest
		msg  string
	}{
		{"valid", UpsertRequest{CupboardID: 1, ShelfNumber: 2, Capacity: 10}, ""},
		{"zero capacity ok", UpsertRequest{CupboardID: 1, ShelfNumber: 1}, ""},
		{"missing cupboard", UpsertRequest{ShelfNumber: 1}, "cupboardId is required"},
		{"zero shelf number", UpsertRequest{CupboardID: 1}, "shelfNumber must be positive"},
		{"negative capacity", UpsertRequest{CupboardID: 1, ShelfNumber: 1, Capacity: -5}, "capacity must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.validate(); got != tc.msg {
				t.Fatalf("validate() = %q, want %q", got, tc.msg)
			}
		})
	}
}
