package domain

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/shopspring/decimal"
)

func testCart(t *testing.T, items ...Item) *Cart {
	t.Helper()
	cart := NewCart("Ann", "October 19, 2026")
	for _, it := range items {
		cart.Add(it)
	}
	return cart
}

func pencil() Item {
	return Item{Name: "Pencil", Description: "wooden", Price: decimal.NewFromInt(1), Quantity: 5}
}

func notebook() Item {
	return Item{Name: "Notebook", Description: "ruled", Price: decimal.RequireFromString("2.5"), Quantity: 3}
}

func TestNewCartDefaults(t *testing.T) {
	cart := NewCart("", " ")
	if cart.CustomerName != DefaultCustomerName || cart.CurrentDate != DefaultCurrentDate {
		t.Fatalf("expected defaults, got %q %q", cart.CustomerName, cart.CurrentDate)
	}
	if got := cart.Header(); got != "none's Shopping Cart - January 1, 2020" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestCartItemCountAndTotal(t *testing.T) {
	cart := testCart(t, pencil(), notebook())

	if got := cart.ItemCount(); got != 8 {
		t.Fatalf("expected item count 8, got %d", got)
	}
	if got := cart.Len(); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
	if got := cart.TotalCost(); !got.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("expected total 12.5, got %s", got)
	}

	cart.Add(Item{Name: "Broken", Description: "x", Price: decimal.NewFromInt(4), Quantity: -2})
	if got := cart.ItemCount(); got != 8 {
		t.Fatalf("negative quantity must count as zero, got %d", got)
	}
}

func TestCartRemove(t *testing.T) {
	tests := []struct {
		name      string
		items     []Item
		remove    string
		wantErr   error
		wantNames []string
	}{
		{
			name:    "empty cart",
			remove:  "Pencil",
			wantErr: e.ErrItemNotFound,
		},
		{
			name:      "different case",
			items:     []Item{pencil(), notebook()},
			remove:    "PENCIL",
			wantNames: []string{"Notebook"},
		},
		{
			name:      "no match",
			items:     []Item{pencil(), notebook()},
			remove:    "Stapler",
			wantErr:   e.ErrItemNotFound,
			wantNames: []string{"Pencil", "Notebook"},
		},
		{
			name:      "first of duplicates",
			items:     []Item{pencil(), notebook(), {Name: "pencil", Description: "red", Price: decimal.NewFromInt(2), Quantity: 1}},
			remove:    "pencil",
			wantNames: []string{"Notebook", "pencil"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := testCart(t, tt.items...)

			err := cart.Remove(tt.remove)
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			items := cart.Items()
			if len(items) != len(tt.wantNames) {
				t.Fatalf("expected %d items, got %d", len(tt.wantNames), len(items))
			}
			for i, name := range tt.wantNames {
				if items[i].Name != name {
					t.Fatalf("expected %q at %d, got %q", name, i, items[i].Name)
				}
			}
		})
	}
}

func TestCartModify(t *testing.T) {
	t.Run("zero quantity leaves item unchanged", func(t *testing.T) {
		cart := testCart(t, pencil())

		if err := cart.Modify("pencil", NewSentinelPatch(NoneSentinel, decimal.Zero, 0)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cart.Items()[0].Quantity; got != 5 {
			t.Fatalf("expected quantity 5, got %d", got)
		}
	})

	t.Run("nonzero quantity changes only quantity", func(t *testing.T) {
		cart := testCart(t, pencil())

		if err := cart.Modify("Pencil", NewSentinelPatch(NoneSentinel, decimal.Zero, 9)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := cart.Items()[0]
		want := pencil()
		want.Quantity = 9
		if got.Name != want.Name || got.Description != want.Description || !got.Price.Equal(want.Price) || got.Quantity != 9 {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("not found leaves cart unchanged", func(t *testing.T) {
		cart := testCart(t, pencil(), notebook())
		countBefore, totalBefore := cart.ItemCount(), cart.TotalCost()

		err := cart.Modify("Stapler", NewSentinelPatch(NoneSentinel, decimal.Zero, 4))
		if !errors.Is(err, e.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		if cart.ItemCount() != countBefore || !cart.TotalCost().Equal(totalBefore) {
			t.Fatalf("cart changed after failed modify")
		}
	})

	t.Run("validation failure rejects whole patch", func(t *testing.T) {
		cart := testCart(t, pencil())
		desc := "graphite"
		qty := -4

		err := cart.Modify("Pencil", ItemPatch{Description: &desc, Quantity: &qty})
		if !errors.Is(err, e.ErrNegativeQuantity) {
			t.Fatalf("expected negative quantity error, got %v", err)
		}
		if got := cart.Items()[0]; got.Description != "wooden" || got.Quantity != 5 {
			t.Fatalf("item must be unchanged, got %+v", got)
		}
	})

	t.Run("explicit zero quantity through patch", func(t *testing.T) {
		cart := testCart(t, pencil())
		zero := 0

		if err := cart.Modify("Pencil", ItemPatch{Quantity: &zero}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cart.Items()[0].Quantity; got != 0 {
			t.Fatalf("expected quantity 0, got %d", got)
		}
	})
}

func TestCartItemsIsCopy(t *testing.T) {
	cart := testCart(t, pencil())

	items := cart.Items()
	items[0].Quantity = 100

	if got := cart.Items()[0].Quantity; got != 5 {
		t.Fatalf("cart must not be mutated through Items, got %d", got)
	}
}

func TestCartItemCountWithLargestQuantities(t *testing.T) {
	cart := testCart(t)
	for i := 0; i < 4; i++ {
		item, err := NewItem("Bulk", "x", decimal.NewFromInt(1), MaxQuantity)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cart.Add(*item)
	}

	if got := cart.ItemCount(); got != 4*MaxQuantity {
		t.Fatalf("expected %d items, got %d", 4*MaxQuantity, got)
	}
	if !cart.TotalCost().Equal(decimal.NewFromInt(4 * MaxQuantity)) {
		t.Fatalf("unexpected total %s", cart.TotalCost())
	}

	if _, err := NewItem("Bulk", "x", decimal.NewFromInt(1), MaxQuantity*1000); !errors.Is(err, e.ErrQuantityTooLarge) {
		t.Fatalf("expected quantity limit error, got %v", err)
	}

	tooMany := MaxQuantity + 1
	if err := cart.Modify("bulk", ItemPatch{Quantity: &tooMany}); !errors.Is(err, e.ErrQuantityTooLarge) {
		t.Fatalf("expected quantity limit error on modify, got %v", err)
	}
	if got := cart.ItemCount(); got != 4*MaxQuantity {
		t.Fatalf("rejected modify must not change the cart, got %d", got)
	}
}
