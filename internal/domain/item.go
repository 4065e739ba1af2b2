package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/shopping-cart/internal/validation"
	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NoneSentinel: значение по умолчанию для текстовых полей товара.
const NoneSentinel = "none"

// MaxQuantity ограничивает количество в одной позиции, чтобы сумма количеств в корзине не переполнялась.
// Должно совпадать с тегом lte у Item.Quantity.
const MaxQuantity = 1_000_000

// Item описывает одну позицию корзины
type Item struct {
	Name        string          `validate:"notblank"`
	Description string          `validate:"notblank"`
	Price       decimal.Decimal `validate:"gte=0"`
	Quantity    int             `validate:"gte=0,lte=1000000"`
}

// NewDefaultItem возвращает товар со значениями по умолчанию.
func NewDefaultItem() Item {
	return Item{
		Name:        NoneSentinel,
		Description: NoneSentinel,
		Price:       decimal.Zero,
	}
}

// NewItem создаёт проверенный товар. Имя и описание обрезаются.
func NewItem(name, description string, price decimal.Decimal, quantity int) (*Item, error) {
	const op = "domain.NewItem"

	item := Item{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
		Quantity:    quantity,
	}
	if err := item.validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &item, nil
}

// TotalCost возвращает price × quantity. Отрицательные значения считаются нулём.
func (i Item) TotalCost() decimal.Decimal {
	price := i.Price
	if price.IsNegative() {
		price = decimal.Zero
	}

	qty := i.Quantity
	if qty < 0 {
		qty = 0
	}

	return price.Mul(decimal.NewFromInt(int64(qty)))
}

// Update применяет только заданные поля патча и возвращает новый товар.
// Исходный товар не меняется; при любой ошибке валидации не применяется ни одно поле.
func (i Item) Update(patch ItemPatch) (Item, error) {
	const op = "Item.Update"

	updated := i
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return i, e.Wrap(op, e.ErrEmptyName)
		}
		updated.Name = name
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		if description == "" {
			return i, e.Wrap(op, e.ErrEmptyDescription)
		}
		updated.Description = description
	}
	if patch.Price != nil {
		updated.Price = *patch.Price
	}
	if patch.Quantity != nil {
		updated.Quantity = *patch.Quantity
	}

	if err := updated.validate(); err != nil {
		return i, e.Wrap(op, err)
	}

	return updated, nil
}

// CostLine: "<name> <quantity> @ $<price> = $<total>"
func (i Item) CostLine() string {
	return fmt.Sprintf("%s %d @ $%s = $%s", i.Name, i.Quantity, FormatMoney(i.Price), FormatMoney(i.TotalCost()))
}

// DescriptionLine: "<name>: <description>"
func (i Item) DescriptionLine() string {
	return fmt.Sprintf("%s: %s", i.Name, i.Description)
}

// validate переводит ошибки validator в ошибки из пакета e.
func (i Item) validate() error {
	err := validation.Get().Struct(i)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return err
	}

	switch vErrs[0].Field() {
	case "Name":
		return e.ErrEmptyName
	case "Description":
		return e.ErrEmptyDescription
	case "Price":
		return e.ErrNegativePrice
	case "Quantity":
		if vErrs[0].Tag() == "lte" {
			return e.ErrQuantityTooLarge
		}
		return e.ErrNegativeQuantity
	default:
		return e.Wrap(vErrs[0].Field(), e.ErrValidation)
	}
}
