package maintenance

import "testing"

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "in_progress", "completed", "cancelled"} {
		got, err := ParseStatus(s)
		if err != nil || string(got) != s {
			t.Errorf("ParseStatus(%q) = %v, %v", s, got, err)
		}
	}
}

func TestParseStatus_NormalizesLegacyHyphen(t *testing.T) {
	got, err := ParseStatus("in-progress")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != StatusInProgress {
		t.Fatalf("expected in_progress, got %q", got)
	}
}

func TestParseStatus_Rejects(t *testing.T) {
	for _, s := range []string{"", "done", "Scheduled", "pending"} {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("expected ParseStatus(%q) to fail", s)
		}
	}
}
