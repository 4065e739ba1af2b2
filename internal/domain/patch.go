package domain

import "github.com/shopspring/decimal"

// ItemPatch: частичное обновление товара. nil означает «поле не менять».
type ItemPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Quantity == nil
}

// NewSentinelPatch строит патч из значений в старом формате, где значения по умолчанию
// означают «не менять»: описание "none", цена 0, количество 0.
// Это единственное место, где действует это соглашение: через него нельзя
// явно выставить цену или количество в ноль.
func NewSentinelPatch(description string, price decimal.Decimal, quantity int) ItemPatch {
	var patch ItemPatch
	if description != NoneSentinel {
		patch.Description = &description
	}
	if !price.IsZero() {
		patch.Price = &price
	}
	if quantity != 0 {
		patch.Quantity = &quantity
	}
	return patch
}
