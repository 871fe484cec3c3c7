package kernel

import (
	"fmt"

	"furniture/internal/pkg/errs"
	"furniture/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative monetary amount with fixed two-digit scale.
// Currency is not modelled; all amounts of one deployment share a currency.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount, rounding to cents.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"total amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(2), guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses an amount such as "1250.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("total amount is invalid", err)
	}
	return NewMoney(amount)
}

// Validate ensures Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the amount as a decimal for persistence and transport.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount with two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Compare returns -1, 0 or +1 comparing m to other.
func (m Money) Compare(other Money) int {
	return m.amount.Cmp(other.amount)
}
