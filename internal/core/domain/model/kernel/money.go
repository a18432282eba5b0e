package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoneyFromCents or
// MoneyFromDecimal so that monetary arithmetic never runs over zero values
// that merely look like "0.00".
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoneyFromCents or MoneyFromDecimal constructors")

// Money is an immutable monetary value object backed by integer cents.
// Binary floating point is never used: repeated additions stay exact and
// rounding happens in exactly one place, ApplyRate.
//
// Money may be negative. Option price deltas are not assumed non-negative,
// and callers that require a non-negative amount (e.g. a base price) enforce
// that rule themselves via IsNegative.
//
// Example:
//
//	base := kernel.NewMoneyFromCents(1299)
//	delta := kernel.NewMoneyFromCents(200)
//	unit, _ := base.Add(delta)         // 14.99
//	line, _ := unit.MulInt(3)          // 44.97
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoneyFromCents creates a Money from an amount in cents. Any sign is
// accepted.
func NewMoneyFromCents(cents int64) Money {
	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}
}

// ZeroMoney returns a properly constructed zero amount.
func ZeroMoney() Money {
	return NewMoneyFromCents(0)
}

// MoneyFromDecimal creates a Money from a decimal amount in major units
// (e.g. 12.99). Returns an error if the amount carries sub-cent precision;
// amounts are never silently rounded on the way in.
func MoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	cents := amount.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has sub-cent precision", amount),
		)
	}
	return NewMoneyFromCents(cents.IntPart()), nil
}

// Validate checks that the Money was created through a constructor.
// The zero value of Money is invalid and fails this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount in major units with two decimal places.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// Add returns the sum of two amounts. Both operands must be constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoneyFromCents(m.cents + other.cents), nil
}

// MulInt returns the amount multiplied by an integer factor. Used for
// quantity arithmetic, which stays exact in cents.
func (m Money) MulInt(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoneyFromCents(m.cents * int64(factor)), nil
}

// ApplyRate multiplies the amount by a decimal rate and rounds half-up to the
// cent. This is the single place where rounding occurs: callers apply a rate
// once to an aggregate amount, never per line.
//
// Example: 24.97 at rate 0.0825 yields 2.06 (2.058525 rounded half-up).
func (m Money) ApplyRate(rate decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts rates are applied to.
	cents := decimal.NewFromInt(m.cents).Mul(rate).Round(0)
	return NewMoneyFromCents(cents.IntPart()), nil
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality. Both must be constructed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m.cents == other.cents, nil
}

// String returns the amount with two decimal places, e.g. "12.99".
// Implements fmt.Stringer; currency rendering and locale formatting belong to
// the presentation layer.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
