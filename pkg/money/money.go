// Package money provides a decimal monetary value type used for all prices,
// commissions and totals. Amounts are stored and transmitted as base-10
// decimal strings; binary floating point is never used for currency math.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMalformedAmount is returned when a string cannot be parsed as a
// decimal amount.
var ErrMalformedAmount = errors.New("malformed amount")

// Money is an immutable arbitrary-precision decimal amount. The zero value
// is a valid zero amount.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

// Parse parses a decimal string into a Money value.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	return Money{d: d}, nil
}

// MustParse parses a decimal string and panics on malformed input. Intended
// for constants, seed data and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromInt creates a Money value from an integer amount of whole units.
func FromInt(n int64) Money {
	return Money{d: decimal.NewFromInt(n)}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{d: m.d.Sub(other.d)}
}

// MulInt returns m multiplied by an integer quantity.
func (m Money) MulInt(qty int) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(int64(qty)))}
}

// MulRate returns m multiplied by a fractional rate (e.g. a 0.4 commission
// rate).
func (m Money) MulRate(rate Money) Money {
	return Money{d: m.d.Mul(rate.d)}
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.d.Cmp(other.d)
}

// Equal reports whether two amounts are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

// Round0 rounds to zero fractional digits, the display precision for IDR.
func (m Money) Round0() Money {
	return Money{d: m.d.Round(0)}
}

// Float64 returns the nearest float64 value. Only for derived ratios such
// as growth percentages, never for currency arithmetic.
func (m Money) Float64() float64 {
	return m.d.InexactFloat64()
}

// String returns the canonical decimal string representation.
func (m Money) String() string {
	return m.d.String()
}

// MarshalJSON encodes the amount as a JSON string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.d.String() + `"`), nil
}

// UnmarshalJSON decodes a JSON string (or bare number) into an amount.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value implements driver.Valuer, persisting the amount as a decimal string.
func (m Money) Value() (driver.Value, error) {
	return m.d.String(), nil
}

// Scan implements sql.Scanner for decimal string, byte and numeric columns.
func (m *Money) Scan(value interface{}) error {
	if value == nil {
		*m = Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedAmount, value)
	}
	*m = Money{d: d}
	return nil
}
