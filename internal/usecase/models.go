package usecase

import (
	"github.com/DRSN-tech/shopping-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// AddItemReq: запрос на добавление товара в корзину.
type AddItemReq struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// RemoveItemReq: запрос на удаление товара по имени.
type RemoveItemReq struct {
	Name string
}

// ModifyItemReq: запрос на изменение товара. Patch задаёт, какие поля менять.
type ModifyItemReq struct {
	Name  string
	Patch domain.ItemPatch
}

// CartSummaryRes: данные для вывода корзины.
type CartSummaryRes struct {
	Header    string
	ItemCount int
	CostLines []string
	Total     decimal.Decimal
}

// IsEmpty сообщает, что в корзине нет ни одной единицы товара.
func (r *CartSummaryRes) IsEmpty() bool {
	return r.ItemCount == 0
}

// ItemDescriptionsRes: данные для вывода описаний товаров.
type ItemDescriptionsRes struct {
	Header           string
	DescriptionLines []string
}

// MAPPERS
func NewAddItemReq(name, description string, price decimal.Decimal, quantity int) *AddItemReq {
	return &AddItemReq{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
}

func NewRemoveItemReq(name string) *RemoveItemReq {
	return &RemoveItemReq{Name: name}
}

func NewModifyItemReq(name string, patch domain.ItemPatch) *ModifyItemReq {
	return &ModifyItemReq{
		Name:  name,
		Patch: patch,
	}
}

// NewChangeQuantityReq строит запрос команды «изменить количество».
// Количество 0 означает «не менять» (см. domain.NewSentinelPatch).
func NewChangeQuantityReq(name string, quantity int) *ModifyItemReq {
	return NewModifyItemReq(name, domain.NewSentinelPatch(domain.NoneSentinel, decimal.Zero, quantity))
}

func NewCartSummaryRes(header string, itemCount int, costLines []string, total decimal.Decimal) *CartSummaryRes {
	return &CartSummaryRes{
		Header:    header,
		ItemCount: itemCount,
		CostLines: costLines,
		Total:     total,
	}
}

func NewItemDescriptionsRes(header string, lines []string) *ItemDescriptionsRes {
	return &ItemDescriptionsRes{
		Header:           header,
		DescriptionLines: lines,
	}
}
