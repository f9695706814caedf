// Package dupe flags probable duplicates of newly imported transactions
// against an existing ledger.
package dupe

import (
	"time"

	"github.com/beanport-dev/beanport/internal/model"
)

// FindDuplicate returns the first ledger transaction that has a posting with
// the same account and amount as the candidate's primary posting and a date
// within toleranceDays of the candidate's date, inclusive on both ends. The
// ledger's transaction order decides ties. Returns nil when there is no
// match or the candidate has no postings.
func FindDuplicate(candidate model.Transaction, ledger *model.Ledger, toleranceDays int) *model.Transaction {
	if ledger == nil || len(candidate.Postings) == 0 {
		return nil
	}

	primary := candidate.Postings[0]
	window := time.Duration(toleranceDays) * 24 * time.Hour
	earliest := candidate.MetaData.Date.Add(-window)
	latest := candidate.MetaData.Date.Add(window)

	for i := range ledger.Transactions {
		existing := &ledger.Transactions[i]
		date := existing.MetaData.Date
		if date.Before(earliest) || date.After(latest) {
			continue
		}
		for _, posting := range existing.Postings {
			if posting.Account.Name == primary.Account.Name &&
				posting.Amount.Commodity == primary.Amount.Commodity &&
				posting.Amount.Number.Equal(primary.Amount.Number) {
				return existing
			}
		}
	}
	return nil
}
