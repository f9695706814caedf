package dupe

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanport-dev/beanport/internal/model"
)

func txn(t *testing.T, date time.Time, account string, amount string) model.Transaction {
	t.Helper()
	acct, err := model.NewAccount(account)
	require.NoError(t, err)
	number, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	return model.Transaction{
		MetaData: model.TransactionMetaData{Date: date, Flag: model.FlagComplete},
		Postings: []model.Posting{
			{Account: acct, Amount: model.NewAmount(number, "CAD")},
		},
	}
}

func TestFindDuplicate_WithinTolerance(t *testing.T) {
	existing := time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC)
	ledger := model.NewLedger()
	ledger.Transactions = []model.Transaction{txn(t, existing, "Assets:Checking", "42.00")}

	candidate := txn(t, existing.AddDate(0, 0, 1), "Assets:Checking", "42.00")
	match := FindDuplicate(candidate, ledger, 2)
	require.NotNil(t, match)
	assert.Equal(t, existing, match.MetaData.Date)
}

func TestFindDuplicate_ToleranceBoundary(t *testing.T) {
	existing := time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC)
	ledger := model.NewLedger()
	ledger.Transactions = []model.Transaction{txn(t, existing, "Assets:Checking", "42.00")}

	// Exactly tolerance days before and after both match.
	before := txn(t, existing.AddDate(0, 0, -2), "Assets:Checking", "42.00")
	after := txn(t, existing.AddDate(0, 0, 2), "Assets:Checking", "42.00")
	assert.NotNil(t, FindDuplicate(before, ledger, 2))
	assert.NotNil(t, FindDuplicate(after, ledger, 2))

	// One day beyond does not.
	tooEarly := txn(t, existing.AddDate(0, 0, -3), "Assets:Checking", "42.00")
	tooLate := txn(t, existing.AddDate(0, 0, 3), "Assets:Checking", "42.00")
	assert.Nil(t, FindDuplicate(tooEarly, ledger, 2))
	assert.Nil(t, FindDuplicate(tooLate, ledger, 2))
}

func TestFindDuplicate_RequiresAccountAndAmount(t *testing.T) {
	existing := time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC)
	ledger := model.NewLedger()
	ledger.Transactions = []model.Transaction{txn(t, existing, "Assets:Checking", "42.00")}

	differentAmount := txn(t, existing, "Assets:Checking", "42.01")
	differentAccount := txn(t, existing, "Assets:Savings", "42.00")
	assert.Nil(t, FindDuplicate(differentAmount, ledger, 2))
	assert.Nil(t, FindDuplicate(differentAccount, ledger, 2))
}

func TestFindDuplicate_NilAndEmpty(t *testing.T) {
	candidate := txn(t, time.Now(), "Assets:Checking", "1.00")
	assert.Nil(t, FindDuplicate(candidate, nil, 2))
	assert.Nil(t, FindDuplicate(model.Transaction{}, model.NewLedger(), 2))
}
