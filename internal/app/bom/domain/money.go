package domain

import (
	"fmt"
	"math/big"
)

// Money is a monetary amount backed by big.Rat so that cost and price
// rollups stay exact no matter how many edge multiplications they go through.
// Persisted as a numerator/denominator pair of int64 columns.
type Money struct {
	rat *big.Rat
}

// NewMoney builds a Money from a numerator and denominator.
// NewMoney(249900, 100) is 2499.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("money denominator must be positive, got %d", denominator)
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// MoneyFromRat wraps an existing rational value. A nil rat yields zero.
func MoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// ZeroMoney returns a zero amount.
func ZeroMoney() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Numerator returns the numerator of the reduced fraction.
func (m *Money) Numerator() int64 { return m.rat.Num().Int64() }

// Denominator returns the denominator of the reduced fraction.
func (m *Money) Denominator() int64 { return m.rat.Denom().Int64() }

// Rat returns a copy of the underlying rational value.
func (m *Money) Rat() *big.Rat { return new(big.Rat).Set(m.rat) }

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns m - other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByQuantity scales the amount by an edge quantity.
func (m *Money) MultiplyByQuantity(q *Quantity) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, q.rat)}
}

// Divide returns m / other, erroring on a zero divisor.
func (m *Money) Divide(other *Money) (*Money, error) {
	if other.rat.Sign() == 0 {
		return nil, fmt.Errorf("cannot divide money by zero")
	}
	return &Money{rat: new(big.Rat).Quo(m.rat, other.rat)}, nil
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool { return m.rat.Sign() == 0 }

// IsNegative reports whether the amount is below zero.
func (m *Money) IsNegative() bool { return m.rat.Sign() < 0 }

// Equals reports numeric equality with other.
func (m *Money) Equals(other *Money) bool { return m.rat.Cmp(other.rat) == 0 }

// Float64 returns an approximate value for display, never for arithmetic.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the amount with two decimal places.
func (m *Money) String() string { return m.rat.FloatString(2) }

// Copy returns an independent copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
