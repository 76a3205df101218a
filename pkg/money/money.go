// Package money provides the monetary value object used across the session.
//
// It is a value object that represents an amount of Brazilian real.
// Invariants:
//   - Amount is always stored as an integer number of centavos.
//   - All comparisons are integer-exact, so a displayed amount and the
//     amount used in balance checks can never disagree.
package money

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrTooManyDecimals is returned when an amount carries more than two
	// decimal places.
	ErrTooManyDecimals = errors.New("amount has more than 2 decimal places")

	// ErrAmountExceedsMaxSafeInt is returned when an amount does not fit in
	// the centavo range.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")
)

// Amount represents a monetary amount as an integer number of centavos.
type Amount = int64

// Money represents an amount of Brazilian real.
type Money struct {
	amount Amount
}

// Zero is the zero monetary value.
var Zero = Money{}

// New creates a Money from a float amount in reais.
// Invariants enforced:
//   - The amount must not have more than two decimal places.
//   - The amount must fit in the centavo range.
//
// Returns Money or an error if any invariant is violated.
func New(amount float64) (Money, error) {
	centavos, err := toCentavos(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: centavos}, nil
}

// FromCentavos creates a Money directly from a centavo amount. It is used
// for test setup and for hydrating known-good values.
func FromCentavos(amount int64) Money {
	return Money{amount: amount}
}

// Parse converts an operator-entered amount string to Money.
// Unparsable or over-precise input yields the zero value rather than an
// error; downstream validation uniformly rejects a zero amount. The session
// must never abort on bad numeric input.
func Parse(s string) Money {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Zero
	}
	m, err := New(f)
	if err != nil {
		return Zero
	}
	return m
}

// Amount returns the amount in centavos.
func (m Money) Amount() Amount {
	return m.amount
}

// AmountFloat returns the amount as a float64 in reais.
func (m Money) AmountFloat() float64 {
	return float64(m.amount) / 100
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Subtract returns the difference of the two amounts.
func (m Money) Subtract(other Money) Money {
	return Money{amount: m.amount - other.amount}
}

// Equals reports whether the two amounts are equal.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String renders the amount in the statement wire format, e.g. "R$ 100.00".
func (m Money) String() string {
	return fmt.Sprintf("R$ %.2f", m.AmountFloat())
}

// toCentavos converts a float64 amount in reais to centavos.
// This ensures precision by avoiding floating-point arithmetic issues.
func toCentavos(amount float64) (int64, error) {
	// Reject sub-centavo precision before formatting rounds it away.
	amountStr := fmt.Sprintf("%.10f", amount)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 {
		decimals := strings.TrimRight(parts[1], "0")
		if len(decimals) > 2 {
			return 0, ErrTooManyDecimals
		}
	}

	// Use big.Rat for precise decimal arithmetic.
	amountStr = fmt.Sprintf("%.2f", amount)
	amountRat, ok := new(big.Rat).SetString(amountStr)
	if !ok {
		return 0, fmt.Errorf("invalid amount format: %f", amount)
	}

	centavosRat := new(big.Rat).Mul(amountRat, big.NewRat(100, 1))
	if !centavosRat.IsInt() {
		return 0, ErrTooManyDecimals
	}

	centavos := centavosRat.Num()
	if !centavos.IsInt64() {
		return 0, ErrAmountExceedsMaxSafeInt
	}

	return centavos.Int64(), nil
}
