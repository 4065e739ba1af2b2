// Package validation содержит общий экземпляр validator с поддержкой decimal.Decimal.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// New создаёт validator, который умеет сравнивать decimal.Decimal (gte, lte, gt)
// и проверять строки после обрезки пробелов (notblank).
func New() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Get возвращает общий экземпляр. validator.Validate безопасен для повторного использования и кэширует структуры.
func Get() *validator.Validate {
	once.Do(func() {
		instance = New()
	})
	return instance
}

func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}
