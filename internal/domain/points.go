package domain

import "github.com/DRSN-tech/shopping-cart/pkg/e"

// pointTiers упорядочены по убыванию порога.
var pointTiers = []struct {
	minBooks int
	points   int
}{
	{minBooks: 8, points: 60},
	{minBooks: 6, points: 30},
	{minBooks: 4, points: 15},
	{minBooks: 2, points: 5},
}

// BookClubPoints возвращает баллы книжного клуба за число купленных за месяц книг.
func BookClubPoints(books int) (int, error) {
	if books < 0 {
		return 0, e.Wrap("domain.BookClubPoints", e.ErrNegativeValue)
	}

	for _, tier := range pointTiers {
		if books >= tier.minBooks {
			return tier.points, nil
		}
	}
	return 0, nil
}
