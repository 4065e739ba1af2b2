package console

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/shopspring/decimal"
)

const msgUnexpected = "An unexpected error occurred"

// userErrors: конкретные ошибки, текст которых можно показать пользователю.
var userErrors = []error{
	e.ErrEmptyName,
	e.ErrEmptyDescription,
	e.ErrNegativePrice,
	e.ErrNegativeQuantity,
	e.ErrQuantityTooLarge,
	e.ErrNegativeValue,
	e.ErrOutOfRange,
	e.ErrEmptyInput,
	e.ErrNotANumber,
	e.ErrFractionalQuantity,
	e.ErrItemNotFound,
	e.ErrCourseNotFound,
}

// ToUserMessage превращает ошибку в сообщение для пользователя.
// Для известных ошибок берётся их текст без цепочки оборачиваний, остальные считаются непредвиденными.
func ToUserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, e.ErrCancelled):
		return msgInputCancelled
	}

	for _, known := range userErrors {
		if errors.Is(err, known) {
			return sentence(known.Error())
		}
	}

	return msgUnexpected + ": " + err.Error()
}

// wholeNumberMessage подбирает подсказку для переспроса целого числа.
func wholeNumberMessage(err error) string {
	if errors.Is(err, e.ErrEmptyInput) {
		return msgEmptyWholeNum
	}
	return msgNotAWholeNum
}

const wholeNumberOp = "parseWholeNumber"

// parseDecimal разбирает число вида "3" или "3.5".
func parseDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, e.Wrap("parseDecimal: "+strconv.Quote(s), e.ErrNotANumber)
	}

	return d, nil
}

// parseWholeNumber разбирает целое число. "3.0" отклоняется как дробное.
func parseWholeNumber(raw string) (int, error) {
	s := strings.TrimSpace(raw)

	if s == "" {
		return 0, e.Wrap(wholeNumberOp, e.ErrEmptyInput)
	}
	if strings.Contains(s, ".") {
		return 0, e.Wrap(wholeNumberOp+": "+strconv.Quote(s), e.ErrFractionalQuantity)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, e.Wrap(wholeNumberOp+": "+strconv.Quote(s), e.ErrNotANumber)
	}

	return n, nil
}

// sentence делает первую букву заглавной и ставит точку в конце.
func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}

	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
