package usecase

import (
	"github.com/DRSN-tech/shopping-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// CartRepository: хранилище товаров одной сессии. Реализуется *domain.Cart.
type CartRepository interface {
	Add(item domain.Item)
	Remove(name string) error
	Modify(name string, patch domain.ItemPatch) error
	Items() []domain.Item
	ItemCount() int
	TotalCost() decimal.Decimal
	Header() string
}
