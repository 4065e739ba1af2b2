package domain

import "github.com/shopspring/decimal"

// FormatMoney выводит целые суммы без дробной части ("12"), остальные с двумя знаками ("2.55").
func FormatMoney(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.StringFixed(2)
}
