package domain

import (
	"fmt"
	"strings"

	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/shopspring/decimal"
)

const (
	DefaultCustomerName = NoneSentinel
	DefaultCurrentDate  = "January 1, 2020"
)

// Cart: упорядоченный набор товаров одного покупателя на одну сессию.
// Дубликаты по имени не запрещены, операции по имени работают с первым совпадением.
type Cart struct {
	CustomerName string
	CurrentDate  string
	items        []Item
}

func NewCart(customerName, currentDate string) *Cart {
	if strings.TrimSpace(customerName) == "" {
		customerName = DefaultCustomerName
	}
	if strings.TrimSpace(currentDate) == "" {
		currentDate = DefaultCurrentDate
	}

	return &Cart{
		CustomerName: customerName,
		CurrentDate:  currentDate,
	}
}

// Add добавляет товар в конец корзины.
func (c *Cart) Add(item Item) {
	c.items = append(c.items, item)
}

// Remove удаляет первый товар с совпадающим (без учёта регистра) именем.
func (c *Cart) Remove(name string) error {
	const op = "Cart.Remove"

	idx := c.indexOf(name)
	if idx < 0 {
		return e.Wrap(op, e.ErrItemNotFound)
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return nil
}

// Modify применяет патч к первому товару с совпадающим именем.
// Если патч не проходит валидацию, товар остаётся без изменений.
func (c *Cart) Modify(name string, patch ItemPatch) error {
	const op = "Cart.Modify"

	idx := c.indexOf(name)
	if idx < 0 {
		return e.Wrap(op, e.ErrItemNotFound)
	}

	updated, err := c.items[idx].Update(patch)
	if err != nil {
		return e.Wrap(op, err)
	}

	c.items[idx] = updated
	return nil
}

// Items возвращает копию товаров в порядке добавления.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Len возвращает количество позиций (строк) в корзине.
func (c *Cart) Len() int {
	return len(c.items)
}

// ItemCount возвращает сумму количеств всех позиций, а не число позиций.
func (c *Cart) ItemCount() int {
	var count int
	for _, it := range c.items {
		count += max(0, it.Quantity)
	}
	return count
}

// TotalCost возвращает сумму TotalCost всех позиций.
func (c *Cart) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.TotalCost())
	}
	return total
}

// Header: "<customer>'s Shopping Cart - <date>"
func (c *Cart) Header() string {
	return fmt.Sprintf("%s's Shopping Cart - %s", c.CustomerName, c.CurrentDate)
}

func (c *Cart) indexOf(name string) int {
	name = strings.TrimSpace(name)
	for i, it := range c.items {
		if strings.EqualFold(it.Name, name) {
			return i
		}
	}
	return -1
}
