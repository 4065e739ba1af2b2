package domain

import "github.com/DRSN-tech/shopping-cart/pkg/e"

const HoursPerDay = 24

// AlarmHour возвращает час срабатывания будильника на 24-часовом циферблате.
func AlarmHour(currentHour, waitHours int) (int, error) {
	const op = "domain.AlarmHour"

	if currentHour < 0 || currentHour >= HoursPerDay {
		return 0, e.Wrap(op, e.ErrOutOfRange)
	}
	if waitHours < 0 {
		return 0, e.Wrap(op, e.ErrNegativeValue)
	}

	return (currentHour + waitHours%HoursPerDay) % HoursPerDay, nil
}
