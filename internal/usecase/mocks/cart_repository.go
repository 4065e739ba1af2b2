package mocks

import (
	"errors"

	"github.com/DRSN-tech/shopping-cart/internal/domain"
	"github.com/shopspring/decimal"
)

type CartRepositoryMock struct {
	AddFunc       func(item domain.Item)
	RemoveFunc    func(name string) error
	ModifyFunc    func(name string, patch domain.ItemPatch) error
	ItemsFunc     func() []domain.Item
	ItemCountFunc func() int
	TotalCostFunc func() decimal.Decimal
	HeaderFunc    func() string
	AddCalls      int
	RemoveCalls   int
	ModifyCalls   int
}

func (m *CartRepositoryMock) Add(item domain.Item) {
	m.AddCalls++
	if m.AddFunc != nil {
		m.AddFunc(item)
	}
}

func (m *CartRepositoryMock) Remove(name string) error {
	m.RemoveCalls++
	if m.RemoveFunc == nil {
		return errors.New("RemoveFunc not set")
	}
	return m.RemoveFunc(name)
}

func (m *CartRepositoryMock) Modify(name string, patch domain.ItemPatch) error {
	m.ModifyCalls++
	if m.ModifyFunc == nil {
		return errors.New("ModifyFunc not set")
	}
	return m.ModifyFunc(name, patch)
}

func (m *CartRepositoryMock) Items() []domain.Item {
	if m.ItemsFunc == nil {
		return nil
	}
	return m.ItemsFunc()
}

func (m *CartRepositoryMock) ItemCount() int {
	if m.ItemCountFunc == nil {
		return 0
	}
	return m.ItemCountFunc()
}

func (m *CartRepositoryMock) TotalCost() decimal.Decimal {
	if m.TotalCostFunc == nil {
		return decimal.Zero
	}
	return m.TotalCostFunc()
}

func (m *CartRepositoryMock) Header() string {
	if m.HeaderFunc == nil {
		return ""
	}
	return m.HeaderFunc()
}
