package e

import "fmt"

var (
	// Виды ошибок. Конкретные ошибки ниже оборачивают один из них,
	// поэтому вызывающий код проверяет вид через errors.Is.
	ErrMalformedInput = fmt.Errorf("malformed input")
	ErrValidation     = fmt.Errorf("validation failed")
	ErrNotFound       = fmt.Errorf("not found")
	ErrCancelled      = fmt.Errorf("input cancelled")

	// Ошибки конфигурации и запуска
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrCatalogIntegrity     = fmt.Errorf("catalog tables are not aligned")

	// Некорректный ввод
	ErrEmptyInput         = kind(ErrMalformedInput, "input is empty")
	ErrNotANumber         = kind(ErrMalformedInput, "value is not a number")
	ErrFractionalQuantity = kind(ErrMalformedInput, "quantity must be a whole number")

	// Нарушение инвариантов товара
	ErrEmptyName        = kind(ErrValidation, "item name cannot be empty")
	ErrEmptyDescription = kind(ErrValidation, "item description cannot be empty")
	ErrNegativePrice    = kind(ErrValidation, "item price cannot be negative")
	ErrNegativeQuantity = kind(ErrValidation, "item quantity cannot be negative")
	ErrQuantityTooLarge = kind(ErrValidation, "item quantity cannot exceed 1000000")
	ErrNegativeValue    = kind(ErrValidation, "value must be nonnegative")
	ErrOutOfRange       = kind(ErrValidation, "value is out of range")

	// Поиск
	ErrItemNotFound   = kind(ErrNotFound, "item not found in cart")
	ErrCourseNotFound = kind(ErrNotFound, "course not found")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// kind создаёт ошибку с собственным текстом, которая при этом errors.Is(err, parent).
func kind(parent error, msg string) error {
	return &kindError{parent: parent, msg: msg}
}

type kindError struct {
	parent error
	msg    string
}

func (k *kindError) Error() string { return k.msg }

func (k *kindError) Unwrap() error { return k.parent }
