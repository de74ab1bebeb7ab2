// Package validation содержит функции разбора и проверки пользовательского ввода.
package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ParseMoney разбирает денежную сумму в точное десятичное представление.
// Отрицательные суммы отклоняются.
func ParseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, errors.New("amount must be a decimal number")
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errors.New("amount must not be negative")
	}
	return d, nil
}

// ParseQuantity разбирает количество товара; допустимы только целые числа больше нуля.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("quantity must be a whole number")
	}
	if n <= 0 {
		return 0, errors.New("quantity must be positive")
	}
	return n, nil
}

// ParseDelta разбирает изменение складского остатка: положительное для прихода,
// отрицательное для списания.
func ParseDelta(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("stock change must be a whole number")
	}
	return n, nil
}

// ParseDate разбирает календарную дату в формате YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.New("date must be in YYYY-MM-DD format")
	}
	return d, nil
}

// ParseMonth разбирает номер календарного месяца (1-12).
func ParseMonth(s string) (time.Month, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 12 {
		return 0, errors.New("month must be a number from 1 to 12")
	}
	return time.Month(n), nil
}
