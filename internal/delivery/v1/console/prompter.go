package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/DRSN-tech/shopping-cart/internal/domain"
	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/DRSN-tech/shopping-cart/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	msgInputCancelled = "Input cancelled. Using default."
	msgEmptyString    = "Input cannot be empty. Please try again."
	msgNotADecimal    = "Invalid input. Enter a number such as 3 or 3.5."
	msgNotAWholeNum   = "Invalid input. Enter a whole number such as 0, 1, 2."
	msgEmptyWholeNum  = "Please enter a whole number."
	msgNegativeValue  = "Value must be nonnegative."
)

// Prompter читает строки ввода и переспрашивает, пока значение не пройдёт проверку.
//
// Отмена (конец ввода или сигнал, отменивший ctx) «залипает»: после неё каждый
// запрос сразу возвращает значение по умолчанию.
type Prompter struct {
	out    io.Writer
	logger logger.Logger

	lines   chan string
	stop    chan struct{}
	stopped sync.Once
	readErr error

	cancelled bool
}

func NewPrompter(in io.Reader, out io.Writer, logger logger.Logger) *Prompter {
	p := &Prompter{
		out:    out,
		logger: logger,
		lines:  make(chan string),
		stop:   make(chan struct{}),
	}
	go p.scan(in)

	return p
}

// scan читает ввод построчно в отдельной горутине, чтобы ожидание строки можно было прервать через ctx.
// Длина строки не ограничена.
func (p *Prompter) scan(in io.Reader) {
	defer close(p.lines)

	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if err == nil || line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			select {
			case p.lines <- line:
			case <-p.stop:
				return
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.readErr = err
			}
			return
		}
	}
}

// Close останавливает чтение. Заблокированный на Read источник не прерывается.
func (p *Prompter) Close() error {
	p.stopped.Do(func() { close(p.stop) })
	return nil
}

// Cancelled сообщает, что ввод уже был отменён.
func (p *Prompter) Cancelled() bool {
	return p.cancelled
}

// Line печатает приглашение и возвращает следующую строку как есть.
// При отмене возвращается ошибка вида e.ErrCancelled, при сбое чтения возвращается исходная ошибка.
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	const op = "Prompter.Line"

	fmt.Fprint(p.out, prompt)

	if p.cancelled {
		return "", e.Wrap(op, e.ErrCancelled)
	}
	if err := ctx.Err(); err != nil {
		return "", p.cancel(op, err)
	}

	select {
	case <-ctx.Done():
		return "", p.cancel(op, ctx.Err())
	case line, ok := <-p.lines:
		if !ok {
			if p.readErr != nil {
				return "", e.Wrap(op, p.readErr)
			}
			return "", p.cancel(op, io.EOF)
		}
		return line, nil
	}
}

func (p *Prompter) cancel(op string, cause error) error {
	p.cancelled = true
	p.logger.Debugf("input cancelled: %v", cause)

	return e.Wrap(op, e.ErrCancelled)
}

// String запрашивает непустую строку (пробелы по краям обрезаются).
func (p *Prompter) String(ctx context.Context, prompt, def string) (string, error) {
	for {
		raw, err := p.Line(ctx, prompt)
		if err != nil {
			return fallbackValue(p, def, err)
		}

		if v := strings.TrimSpace(raw); v != "" {
			return v, nil
		}
		fmt.Fprintln(p.out, msgEmptyString)
	}
}

// NonNegativeDecimal запрашивает неотрицательное число.
func (p *Prompter) NonNegativeDecimal(ctx context.Context, prompt string, def decimal.Decimal) (decimal.Decimal, error) {
	return p.Decimal(ctx, prompt, def, nonNegativeDecimal)
}

// Decimal запрашивает число. check возвращает сообщение для пользователя или пустую строку, если значение подходит.
func (p *Prompter) Decimal(ctx context.Context, prompt string, def decimal.Decimal, check func(decimal.Decimal) string) (decimal.Decimal, error) {
	for {
		raw, err := p.Line(ctx, prompt)
		if err != nil {
			return fallbackValue(p, def, err)
		}

		v, err := parseDecimal(raw)
		if err != nil {
			fmt.Fprintln(p.out, msgNotADecimal)
			continue
		}
		if msg := check(v); msg != "" {
			fmt.Fprintln(p.out, msg)
			continue
		}
		return v, nil
	}
}

// NonNegativeInt запрашивает целое число не меньше нуля.
func (p *Prompter) NonNegativeInt(ctx context.Context, prompt string, def int) (int, error) {
	return p.Int(ctx, prompt, def, nonNegativeInt)
}

// Quantity запрашивает количество товара: целое число от 0 до domain.MaxQuantity.
func (p *Prompter) Quantity(ctx context.Context, prompt string, def int) (int, error) {
	return p.Int(ctx, prompt, def, quantityInRange)
}

// Int запрашивает целое число. Дробные значения отклоняются, а не округляются.
func (p *Prompter) Int(ctx context.Context, prompt string, def int, check func(int) string) (int, error) {
	for {
		raw, err := p.Line(ctx, prompt)
		if err != nil {
			return fallbackValue(p, def, err)
		}

		v, err := parseWholeNumber(raw)
		if err != nil {
			fmt.Fprintln(p.out, wholeNumberMessage(err))
			continue
		}
		if msg := check(v); msg != "" {
			fmt.Fprintln(p.out, msg)
			continue
		}
		return v, nil
	}
}

// fallbackValue возвращает значение по умолчанию при отмене. Прочие ошибки пробрасываются.
func fallbackValue[T any](p *Prompter, def T, err error) (T, error) {
	if !errors.Is(err, e.ErrCancelled) {
		return def, err
	}

	fmt.Fprintln(p.out, "\n"+msgInputCancelled)
	return def, nil
}

func nonNegativeDecimal(v decimal.Decimal) string {
	if v.IsNegative() {
		return msgNegativeValue
	}
	return ""
}

func quantityInRange(v int) string {
	if v > domain.MaxQuantity {
		return fmt.Sprintf("Quantity cannot exceed %d.", domain.MaxQuantity)
	}
	return nonNegativeInt(v)
}

func nonNegativeInt(v int) string {
	if v < 0 {
		return msgNegativeValue
	}
	return ""
}
