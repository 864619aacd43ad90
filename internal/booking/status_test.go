package booking

import "testing"

var allStatuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

func TestCanTransition_Table(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusPending, StatusApproved}:   true,
		{StatusPending, StatusRejected}:   true,
		{StatusPending, StatusCancelled}:  true,
		{StatusApproved, StatusCancelled}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_TerminalStatesSticky(t *testing.T) {
	for _, from := range []Status{StatusRejected, StatusCancelled} {
		if !IsTerminal(from) {
			t.Errorf("expected %s to be terminal", from)
		}
		for _, to := range allStatuses {
			if CanTransition(from, to) {
				t.Errorf("expected no transition out of %s, but %s → %s allowed", from, from, to)
			}
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := ParseStatus(string(s))
		if err != nil || got != s {
			t.Errorf("ParseStatus(%q) = %v, %v", s, got, err)
		}
	}
	for _, s := range []string{"", "Pending", "confirmed", "deleted"} {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("expected ParseStatus(%q) to fail", s)
		}
	}
}
