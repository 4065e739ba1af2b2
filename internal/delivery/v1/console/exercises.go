package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DRSN-tech/shopping-cart/internal/domain"
	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/shopspring/decimal"
)

const (
	msgOperationCancelled = "Operation cancelled by user."
	msgGoodbye            = "Goodbye."
)

// Exercises: небольшие программы, работающие на том же механизме запросов, что и корзина.
type Exercises struct {
	prompter *Prompter
	out      io.Writer
}

func NewExercises(prompter *Prompter, out io.Writer) *Exercises {
	return &Exercises{prompter: prompter, out: out}
}

// aborted сообщает об отмене, если ввод уже отменён.
func (x *Exercises) aborted() bool {
	if !x.prompter.Cancelled() {
		return false
	}
	fmt.Fprintln(x.out, msgOperationCancelled)
	return true
}

// TwoItems собирает два товара и печатает стоимость каждого и общий итог.
// При отмене недостающие поля берутся по умолчанию, итог всё равно печатается.
func (x *Exercises) TwoItems(ctx context.Context) error {
	const op = "Exercises.TwoItems"

	cart := domain.NewCart(domain.NoneSentinel, domain.NoneSentinel)
	for n := 1; n <= 2; n++ {
		if n > 1 {
			fmt.Fprintln(x.out)
		}

		item, err := x.collectItem(ctx, fmt.Sprintf("Item %d", n))
		if err != nil {
			return e.Wrap(op, err)
		}
		cart.Add(*item)
	}

	fmt.Fprintln(x.out, "\nTOTAL COST")
	for _, item := range cart.Items() {
		fmt.Fprintln(x.out, item.CostLine())
	}
	fmt.Fprintf(x.out, "\nTotal: $%s\n", domain.FormatMoney(cart.TotalCost()))

	return nil
}

func (x *Exercises) collectItem(ctx context.Context, label string) (*domain.Item, error) {
	fmt.Fprintln(x.out, label)

	name, err := x.prompter.String(ctx, "Enter the item name: ", domain.NoneSentinel)
	if err != nil {
		return nil, err
	}
	price, err := x.prompter.NonNegativeDecimal(ctx, "Enter the item price: ", decimal.Zero)
	if err != nil {
		return nil, err
	}
	quantity, err := x.prompter.Quantity(ctx, "Enter the item quantity: ", 0)
	if err != nil {
		return nil, err
	}

	return domain.NewItem(name, domain.NoneSentinel, price, quantity)
}

// Meal считает чек за еду с чаевыми и налогом.
func (x *Exercises) Meal(ctx context.Context, rates domain.MealRates) error {
	const op = "Exercises.Meal"

	charge, err := x.prompter.Decimal(ctx, "Enter the charge for the food: $", decimal.Zero, func(v decimal.Decimal) string {
		if v.IsNegative() {
			return "Food charge cannot be negative. Please try again."
		}
		return ""
	})
	if err != nil {
		return e.Wrap(op, err)
	}
	if x.aborted() {
		return nil
	}

	receipt, err := domain.NewMealReceipt(charge, rates)
	if err != nil {
		return e.Wrap(op, err)
	}

	fmt.Fprintln(x.out, "\n----- Receipt -----")
	fmt.Fprintf(x.out, "Food Charge:   $%s\n", receipt.FoodCharge.StringFixed(2))
	fmt.Fprintf(x.out, "Tip (%s%%):     $%s\n", percent(rates.Tip), receipt.Tip.StringFixed(2))
	fmt.Fprintf(x.out, "Sales Tax (%s%%):$%s\n", percent(rates.Tax), receipt.Tax.StringFixed(2))
	fmt.Fprintf(x.out, "Total Price:   $%s\n", receipt.Total.StringFixed(2))
	fmt.Fprintln(x.out, "-------------------")

	return nil
}

// Alarm считает час срабатывания будильника через заданное число часов.
func (x *Exercises) Alarm(ctx context.Context) error {
	const op = "Exercises.Alarm"

	current, err := x.prompter.Int(ctx, "Enter the current time (0-23 hours): ", 0, func(v int) string {
		if v < 0 || v >= domain.HoursPerDay {
			return fmt.Sprintf("Invalid hour. Please enter a number between 0 and %d.", domain.HoursPerDay-1)
		}
		return ""
	})
	if err != nil {
		return e.Wrap(op, err)
	}
	if x.aborted() {
		return nil
	}

	wait, err := x.prompter.Int(ctx, "Enter the number of hours to wait for the alarm: ", 0, func(v int) string {
		if v < 0 {
			return "Wait time cannot be negative. Please enter a valid number."
		}
		return ""
	})
	if err != nil {
		return e.Wrap(op, err)
	}
	if x.aborted() {
		return nil
	}

	alarm, err := domain.AlarmHour(current, wait)
	if err != nil {
		return e.Wrap(op, err)
	}

	fmt.Fprintln(x.out, "\n----- Alarm Clock -----")
	fmt.Fprintf(x.out, "Current Time: %02d:00 hours\n", current)
	fmt.Fprintf(x.out, "Wait Hours:   %d\n", wait)
	fmt.Fprintf(x.out, "Alarm Time:   %02d:00 hours (24-hour clock)\n", alarm)
	fmt.Fprintln(x.out, "-----------------------")

	return nil
}

// Rainfall собирает помесячные осадки за несколько лет и печатает итог и среднее.
func (x *Exercises) Rainfall(ctx context.Context) error {
	const op = "Exercises.Rainfall"

	years, err := x.prompter.Int(ctx, "Enter the number of years: ", 0, func(v int) string {
		if v < 1 {
			return "Please enter an integer 1 or greater."
		}
		return ""
	})
	if err != nil {
		return e.Wrap(op, err)
	}
	if x.aborted() {
		return nil
	}

	acc := domain.NewRainfallAccumulator()
	for year := 1; year <= years; year++ {
		fmt.Fprintf(x.out, "\nYear %d\n", year)

		for month := 1; month <= domain.MonthsPerYear; month++ {
			prompt := fmt.Sprintf("  Enter the inches of rainfall for month %d: ", month)
			inches, err := x.prompter.NonNegativeDecimal(ctx, prompt, decimal.Zero)
			if err != nil {
				return e.Wrap(op, err)
			}
			if x.aborted() {
				return nil
			}

			if err := acc.Add(inches); err != nil {
				return e.Wrap(op, err)
			}
		}
	}

	fmt.Fprintln(x.out, "\nResults")
	fmt.Fprintf(x.out, "  Total months: %d\n", acc.Months())
	fmt.Fprintf(x.out, "  Total inches of rainfall: %s\n", acc.Total().StringFixed(2))
	fmt.Fprintf(x.out, "  Average rainfall per month: %s inches\n", acc.Average().StringFixed(2))

	return nil
}

// Points печатает баллы книжного клуба за число купленных книг.
func (x *Exercises) Points(ctx context.Context) error {
	const op = "Exercises.Points"

	books, err := x.prompter.NonNegativeInt(ctx, "Enter the number of books purchased this month: ", 0)
	if err != nil {
		return e.Wrap(op, err)
	}
	if x.aborted() {
		return nil
	}

	points, err := domain.BookClubPoints(books)
	if err != nil {
		return e.Wrap(op, err)
	}

	fmt.Fprintf(x.out, "Points earned: %d\n", points)
	return nil
}

// Courses работает как справочник курсов и по коду печатает аудиторию, преподавателя и время.
// Пустой ввод или Q завершает работу.
func (x *Exercises) Courses(ctx context.Context, catalog *domain.Catalog) error {
	const op = "Exercises.Courses"

	fmt.Fprintln(x.out, "Course Lookup. Enter a course number like CSC101.")
	fmt.Fprintln(x.out, `Type "Q" to quit.`)

	for {
		raw, err := x.prompter.Line(ctx, "> ")
		if err != nil {
			if errors.Is(err, e.ErrCancelled) {
				fmt.Fprintln(x.out, "\n"+msgGoodbye)
				return nil
			}
			return e.Wrap(op, err)
		}

		code := domain.NormalizeCourseCode(raw)
		if code == "" || code == "Q" {
			fmt.Fprintln(x.out, msgGoodbye)
			return nil
		}

		info, err := catalog.Lookup(code)
		if err != nil {
			if !errors.Is(err, e.ErrNotFound) {
				return e.Wrap(op, err)
			}
			fmt.Fprintln(x.out, "Course not found. Available courses:")
			fmt.Fprintln(x.out, strings.Join(catalog.Codes(), ", "))
			continue
		}

		fmt.Fprintf(x.out, "Course: %s\n", code)
		fmt.Fprintf(x.out, "  Room Number:  %s\n", info.Room)
		fmt.Fprintf(x.out, "  Instructor:   %s\n", info.Instructor)
		fmt.Fprintf(x.out, "  Meeting Time: %s\n", info.Time)
	}
}

// percent печатает долю как проценты: 0.18 -> 18.
func percent(rate decimal.Decimal) string {
	return rate.Shift(2).String()
}
