package model

import (
	"testing"
	"time"
)

func TestFormatOrderNumber(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "#001"},
		{42, "#042"},
		{999, "#999"},
		{1000, "#1000"},
	}

	for _, tc := range cases {
		if got := FormatOrderNumber(tc.n); got != tc.want {
			t.Fatalf("expected %s for %d, got %s", tc.want, tc.n, got)
		}
	}
}

func TestRequestStatusPredicates(t *testing.T) {
	pending := Request{Status: StatusPending}
	if !pending.Pending() || pending.Cancelled() {
		t.Fatalf("empty status must be pending")
	}

	cancelled := Request{Status: StatusCancelled}
	if cancelled.Pending() || !cancelled.Cancelled() {
		t.Fatalf("STORNIERT must be cancelled")
	}

	fulfilled := Request{Status: "bestellt 12.05."}
	if fulfilled.Pending() || fulfilled.Cancelled() {
		t.Fatalf("any other non-empty status means fulfilled")
	}
}

func TestTimestampLayouts(t *testing.T) {
	ts := time.Date(2025, 3, 17, 9, 30, 15, 0, time.UTC)
	if got := ts.Format(CreatedAtLayout); got != "2025-03-17 09:30:15" {
		t.Fatalf("unexpected created_at format: %s", got)
	}
	if got := ts.Format(FulfilledAtLayout); got != "2025-03-17 09:30" {
		t.Fatalf("unexpected fulfilled_at format: %s", got)
	}
}
