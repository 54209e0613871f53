package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"unavailable", ErrUnavailable},
		{"not found", ErrNotFound},
		{"invalid urgency", ErrInvalidUrgency},
		{"invalid cost center", ErrInvalidCostCenter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}
