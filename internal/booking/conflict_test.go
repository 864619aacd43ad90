package booking

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 4, 7, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"partial overlap", at(9, 0), at(10, 30), at(10, 0), at(11, 0), true},
		{"contained", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"containing", at(10, 0), at(11, 0), at(9, 0), at(12, 0), true},
		{"back to back, a then b", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"back to back, b then a", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(14, 0), at(15, 0), false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
		// Overlap is symmetric.
		if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
			t.Errorf("%s (swapped): Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFindConflict(t *testing.T) {
	existing := []Booking{
		{ID: 1, ResourceID: 7, Start: at(9, 0), End: at(10, 30), Status: StatusApproved},
		{ID: 2, ResourceID: 7, Start: at(13, 0), End: at(14, 0), Status: StatusPending},
	}

	if c := FindConflict(existing, at(10, 0), at(11, 0), 0); c == nil || c.ID != 1 {
		t.Fatalf("expected conflict with booking 1, got %+v", c)
	}
	if c := FindConflict(existing, at(10, 30), at(11, 30), 0); c != nil {
		t.Fatalf("back-to-back request should not conflict, got booking %d", c.ID)
	}
	if c := FindConflict(existing, at(11, 0), at(12, 0), 0); c != nil {
		t.Fatalf("free slot should not conflict, got booking %d", c.ID)
	}
}

func TestFindConflict_ExcludesSelf(t *testing.T) {
	existing := []Booking{
		{ID: 5, ResourceID: 7, Start: at(9, 0), End: at(10, 0), Status: StatusPending},
	}

	if c := FindConflict(existing, at(9, 30), at(10, 30), 5); c != nil {
		t.Fatalf("re-validation of booking 5 against itself should not conflict")
	}
	if c := FindConflict(existing, at(9, 30), at(10, 30), 0); c == nil {
		t.Fatalf("expected conflict without exclusion")
	}
}

func TestValidateInterval(t *testing.T) {
	if err := ValidateInterval(at(9, 0), at(10, 0)); err != nil {
		t.Fatalf("valid interval rejected: %v", err)
	}
	for _, tc := range []struct {
		name       string
		start, end time.Time
	}{
		{"end before start", at(10, 0), at(9, 0)},
		{"zero length", at(9, 0), at(9, 0)},
		{"zero start", time.Time{}, at(9, 0)},
		{"zero end", at(9, 0), time.Time{}},
	} {
		if err := ValidateInterval(tc.start, tc.end); err != ErrInvalidInterval {
			t.Errorf("%s: expected ErrInvalidInterval, got %v", tc.name, err)
		}
	}
}
