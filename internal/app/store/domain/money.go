package domain

import (
	"bytes"
	"fmt"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// It stores the value as a rational number to avoid floating-point drift in
// subtotal and tax computations. Values serialize to JSON as plain decimal
// numbers with two fractional digits, matching the wire format of the catalog.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(4500, 100) represents 45.00 currency units.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// FromCents creates a Money from an integer number of cents.
func FromCents(cents int64) *Money {
	return &Money{rat: big.NewRat(cents, 100)}
}

// Zero returns a zero monetary value.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Cents returns the value as integer cents, rounding half away from zero.
func (m *Money) Cents() int64 {
	rounded := m.RoundTo(2)
	scaled := new(big.Rat).Mul(rounded.rat, big.NewRat(100, 1))
	return scaled.Num().Int64()
}

// Add returns the sum of two Money values.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Sub returns the difference of two Money values.
func (m *Money) Sub(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MulInt returns the value multiplied by an integer quantity.
func (m *Money) MulInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, big.NewRat(n, 1))}
}

// MulRat returns the value multiplied by a rational factor.
func (m *Money) MulRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// RoundTo returns the value rounded to the given number of decimal places,
// half away from zero.
func (m *Money) RoundTo(places int) *Money {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Rat).Mul(m.rat, new(big.Rat).SetInt(scale))

	// (2*num ± den) / (2*den) with truncating division rounds half away from zero.
	num := new(big.Int).Mul(scaled.Num(), big.NewInt(2))
	den := scaled.Denom()
	if num.Sign() >= 0 {
		num.Add(num, den)
	} else {
		num.Sub(num, den)
	}
	q := new(big.Int).Quo(num, new(big.Int).Mul(den, big.NewInt(2)))

	return &Money{rat: new(big.Rat).SetFrac(q, scale)}
}

// IsZero returns true if the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan returns true if this value is less than the other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this value is greater than the other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if the two values are equal.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the value formatted with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// MarshalJSON encodes the value as a plain decimal number, e.g. 45.00.
func (m *Money) MarshalJSON() ([]byte, error) {
	return []byte(m.rat.FloatString(2)), nil
}

// UnmarshalJSON decodes a decimal number (quoted or bare) into the value.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" {
		return fmt.Errorf("money cannot be null")
	}
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return fmt.Errorf("invalid money value %q", s)
	}
	m.rat = rat
	return nil
}
