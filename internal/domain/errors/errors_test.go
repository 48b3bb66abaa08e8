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
		{"not found", ErrNotFound},
		{"missing requester", ErrMissingRequester},
		{"offer already submitted", ErrOfferAlreadySubmitted},
		{"offer accepted", ErrOfferAccepted},
		{"invalid order status", ErrInvalidOrderStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}
