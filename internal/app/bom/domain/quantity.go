package domain

import (
	"fmt"
	"math/big"
)

// Quantity is a dimensionless multiplier on a component edge, or an
// accumulated product of such multipliers along a path. Like Money it is
// backed by big.Rat so nested quantities (0.5 kg of X inside 3 of Y inside
// 7 of Z) never lose precision.
type Quantity struct {
	rat *big.Rat
}

// NewQuantity builds a Quantity from a numerator and denominator.
func NewQuantity(numerator, denominator int64) (*Quantity, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("quantity denominator must be positive, got %d", denominator)
	}
	return &Quantity{rat: big.NewRat(numerator, denominator)}, nil
}

// QuantityFromRat wraps an existing rational value. A nil rat yields zero.
func QuantityFromRat(rat *big.Rat) *Quantity {
	if rat == nil {
		return &Quantity{rat: big.NewRat(0, 1)}
	}
	return &Quantity{rat: new(big.Rat).Set(rat)}
}

// OneQuantity is the multiplicative identity, the accumulated quantity of a
// BOM root before any edge has been followed.
func OneQuantity() *Quantity {
	return &Quantity{rat: big.NewRat(1, 1)}
}

// ZeroQuantity returns a zero quantity.
func ZeroQuantity() *Quantity {
	return &Quantity{rat: big.NewRat(0, 1)}
}

// Numerator returns the numerator of the reduced fraction.
func (q *Quantity) Numerator() int64 { return q.rat.Num().Int64() }

// Denominator returns the denominator of the reduced fraction.
func (q *Quantity) Denominator() int64 { return q.rat.Denom().Int64() }

// Rat returns a copy of the underlying rational value.
func (q *Quantity) Rat() *big.Rat { return new(big.Rat).Set(q.rat) }

// Mul returns q * other.
func (q *Quantity) Mul(other *Quantity) *Quantity {
	return &Quantity{rat: new(big.Rat).Mul(q.rat, other.rat)}
}

// Add returns q + other.
func (q *Quantity) Add(other *Quantity) *Quantity {
	return &Quantity{rat: new(big.Rat).Add(q.rat, other.rat)}
}

// IsPositive reports whether the quantity is strictly above zero.
func (q *Quantity) IsPositive() bool { return q.rat.Sign() > 0 }

// IsNegative reports whether the quantity is below zero.
func (q *Quantity) IsNegative() bool { return q.rat.Sign() < 0 }

// IsZero reports whether the quantity is zero.
func (q *Quantity) IsZero() bool { return q.rat.Sign() == 0 }

// Equals reports numeric equality with other.
func (q *Quantity) Equals(other *Quantity) bool { return q.rat.Cmp(other.rat) == 0 }

// Float64 returns an approximate value for display, never for arithmetic.
func (q *Quantity) Float64() float64 {
	f, _ := q.rat.Float64()
	return f
}

// String renders the quantity with up to four decimal places.
func (q *Quantity) String() string { return q.rat.FloatString(4) }

// Copy returns an independent copy.
func (q *Quantity) Copy() *Quantity {
	return &Quantity{rat: new(big.Rat).Set(q.rat)}
}
