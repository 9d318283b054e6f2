package denom

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is a named denomination of the chain's base currency.
type Unit struct {
	name     string
	exponent int32
}

var (
	Wei    = Unit{"wei", 0}
	Kwei   = Unit{"kwei", 3}
	Mwei   = Unit{"mwei", 6}
	Gwei   = Unit{"gwei", 9}
	Szabo  = Unit{"szabo", 12}
	Finney = Unit{"finney", 15}
	Ether  = Unit{"ether", 18}
	Kether = Unit{"kether", 21}
	Mether = Unit{"mether", 24}
	Gether = Unit{"gether", 27}
	Tether = Unit{"tether", 30}
)

var unitsByName = map[string]Unit{
	Wei.name:    Wei,
	Kwei.name:   Kwei,
	Mwei.name:   Mwei,
	Gwei.name:   Gwei,
	Szabo.name:  Szabo,
	Finney.name: Finney,
	Ether.name:  Ether,
	Kether.name: Kether,
	Mether.name: Mether,
	Gether.name: Gether,
	Tether.name: Tether,
}

// ParseUnit returns the unit matching the given (case insensitive) name.
func ParseUnit(name string) (Unit, error) {
	unit, ok := unitsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Unit{}, ErrUnknownUnit
	}
	return unit, nil
}

func (u Unit) String() string {
	return u.name
}

// ToWei converts an amount expressed in the given unit to its exact wei
// representation. Amounts that would produce fractional wei are rejected.
func ToWei(amount string, unit Unit) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if value.Sign() <= 0 {
		return decimal.Zero, ErrNonPositiveAmount
	}

	wei := value.Shift(unit.exponent)
	if !wei.Equal(wei.Truncate(0)) {
		return decimal.Zero, ErrFractionalWei
	}
	return wei, nil
}

// FromWei renders a wei amount in the given unit for display.
func FromWei(wei decimal.Decimal, unit Unit) string {
	return wei.Shift(-unit.exponent).String()
}
