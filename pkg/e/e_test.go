package e

import (
	"errors"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{name: "empty name is validation", err: ErrEmptyName, kind: ErrValidation},
		{name: "negative quantity is validation", err: ErrNegativeQuantity, kind: ErrValidation},
		{name: "fractional quantity is malformed", err: ErrFractionalQuantity, kind: ErrMalformedInput},
		{name: "item not found", err: ErrItemNotFound, kind: ErrNotFound},
		{name: "wrapped keeps kind", err: Wrap("Cart.Remove", ErrItemNotFound), kind: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Fatalf("expected %q to be of kind %q", tt.err, tt.kind)
			}
		})
	}
}

func TestKindErrorMessage(t *testing.T) {
	if got := ErrEmptyName.Error(); got != "item name cannot be empty" {
		t.Fatalf("unexpected message: %q", got)
	}
	if errors.Is(ErrEmptyName, ErrNotFound) {
		t.Fatalf("validation error must not match not-found kind")
	}
}
