package domain

import (
	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/shopspring/decimal"
)

const MonthsPerYear = 12

// RainfallAccumulator накапливает помесячные осадки.
type RainfallAccumulator struct {
	total  decimal.Decimal
	months int
}

func NewRainfallAccumulator() *RainfallAccumulator {
	return &RainfallAccumulator{total: decimal.Zero}
}

// Add учитывает один месяц. Отрицательные значения отклоняются.
func (r *RainfallAccumulator) Add(inches decimal.Decimal) error {
	if inches.IsNegative() {
		return e.Wrap("RainfallAccumulator.Add", e.ErrNegativeValue)
	}

	r.total = r.total.Add(inches)
	r.months++
	return nil
}

func (r *RainfallAccumulator) Months() int {
	return r.months
}

func (r *RainfallAccumulator) Total() decimal.Decimal {
	return r.total
}

// Average возвращает среднее за месяц или ноль, если месяцев нет.
func (r *RainfallAccumulator) Average() decimal.Decimal {
	if r.months == 0 {
		return decimal.Zero
	}
	return r.total.Div(decimal.NewFromInt(int64(r.months)))
}
