package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawLine is one parsed record from a source format, before description
// cleanup and mapping lookups.
type RawLine struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // positive = inflow to the known account
	Payee       string          // set only for special-case records
	Price       *Amount         // set for currency-converted purchases
}

// ImportedTransaction wraps a built transaction for one-at-a-time review.
type ImportedTransaction struct {
	Transaction         Transaction
	OriginalDescription string       // sanitized but unmapped, mapping store key
	PossibleDuplicate   *Transaction // set by duplicate detection
	AllowUserEdit       bool         // false for entries the importer vouches for; accepted without review
}
