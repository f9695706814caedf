package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal digit counts used by the importers.
const (
	CurrencyDigits  int32 = 2 // currency amounts
	UnitPriceDigits int32 = 7 // computed per-unit prices
	UnitQtyDigits   int32 = 5 // fund unit quantities
)

// Amount is a number of a commodity, carrying its display precision.
type Amount struct {
	Number        decimal.Decimal
	Commodity     string
	DecimalDigits int32
}

// NewAmount returns an Amount with currency precision.
func NewAmount(number decimal.Decimal, commodity string) Amount {
	return Amount{Number: number, Commodity: commodity, DecimalDigits: CurrencyDigits}
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Number.StringFixed(a.DecimalDigits), a.Commodity)
}
