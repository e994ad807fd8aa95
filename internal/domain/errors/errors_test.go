package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"forbidden", ErrForbidden},
		{"invalid date", ErrInvalidDate},
		{"date required", ErrDateRequired},
		{"slot required", ErrSlotRequired},
		{"slot unavailable", ErrSlotUnavailable},
		{"empty cart", ErrEmptyCart},
		{"invalid quantity", ErrInvalidQuantity},
		{"invalid item", ErrInvalidItem},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("create appointment: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match: %v", tc.err)
			}
		})
	}
}
