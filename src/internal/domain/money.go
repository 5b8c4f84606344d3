package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount. Construction rejects negative
// magnitudes; arithmetic never loses precision. Values are immutable,
// every operation returns a new Money.
type Money struct {
	value decimal.Decimal
}

func NewMoney(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, fmt.Errorf("amount %s is negative: %w", value.String(), ErrInvalidAmount)
	}
	return Money{value: value}, nil
}

func MoneyFromString(raw string) (Money, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Money{}, fmt.Errorf("amount %q is malformed: %w", raw, ErrInvalidAmount)
	}
	return NewMoney(value)
}

func ZeroMoney() Money {
	return Money{value: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

// Sub returns the raw difference. The non-negativity policy belongs to
// Account, which checks sufficiency before subtracting.
func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value)}
}

func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) String() string {
	return m.value.String()
}
