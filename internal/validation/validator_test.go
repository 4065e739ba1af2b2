package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

type priced struct {
	Name  string          `validate:"notblank"`
	Price decimal.Decimal `validate:"gte=0"`
}

func TestValidator(t *testing.T) {
	tests := []struct {
		name    string
		in      priced
		wantErr bool
	}{
		{name: "valid", in: priced{Name: "Pencil", Price: decimal.RequireFromString("1.25")}},
		{name: "zero price", in: priced{Name: "Pencil", Price: decimal.Zero}},
		{name: "blank name", in: priced{Name: "   ", Price: decimal.NewFromInt(1)}, wantErr: true},
		{name: "negative price", in: priced{Name: "Pencil", Price: decimal.RequireFromString("-0.01")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Get().Struct(tt.in)
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
