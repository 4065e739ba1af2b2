package domain

import (
	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/shopspring/decimal"
)

// MealRates: ставки чаевых и налога в долях (0.18 = 18%).
type MealRates struct {
	Tip decimal.Decimal
	Tax decimal.Decimal
}

// MealReceipt: чек за еду с чаевыми и налогом.
type MealReceipt struct {
	FoodCharge decimal.Decimal
	Tip        decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
}

func NewMealReceipt(foodCharge decimal.Decimal, rates MealRates) (*MealReceipt, error) {
	const op = "domain.NewMealReceipt"

	if foodCharge.IsNegative() {
		return nil, e.Wrap(op, e.ErrNegativeValue)
	}

	tip := foodCharge.Mul(rates.Tip)
	tax := foodCharge.Mul(rates.Tax)

	return &MealReceipt{
		FoodCharge: foodCharge,
		Tip:        tip,
		Tax:        tax,
		Total:      foodCharge.Add(tip).Add(tax),
	}, nil
}
