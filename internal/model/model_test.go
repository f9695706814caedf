package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name    string
		valid   bool
		account string
	}{
		{"two segments", true, "Assets:Checking"},
		{"deep hierarchy", true, "Assets:Retirement:ML:Employee:Basic"},
		{"digit segment", true, "Liabilities:CC:2Checkout"},
		{"hyphenated segment", true, "Expenses:Food:Take-Out"},
		{"root only", false, "Assets"},
		{"unknown root", false, "Banking:Checking"},
		{"lowercase segment", false, "Assets:checking"},
		{"empty segment", false, "Assets::Checking"},
		{"empty string", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := NewAccount(tt.account)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.account, account.String())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAccountType(t *testing.T) {
	account, err := NewAccount("Expenses:Food:Groceries")
	require.NoError(t, err)
	assert.Equal(t, AccountTypeExpenses, account.Type())
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "5.00 CAD", NewAmount(decimal.RequireFromString("5"), "CAD").String())
	assert.Equal(t, "-42.45 CAD", NewAmount(decimal.RequireFromString("-42.45"), "CAD").String())

	perUnit := Amount{
		Number:        decimal.RequireFromString("0.6666667"),
		Commodity:     "EUR",
		DecimalDigits: UnitPriceDigits,
	}
	assert.Equal(t, "0.6666667 EUR", perUnit.String())
}

func TestTransactionString(t *testing.T) {
	checking, err := NewAccount("Assets:Checking")
	require.NoError(t, err)
	groceries, err := NewAccount("Expenses:Food:Groceries")
	require.NoError(t, err)

	txn := Transaction{
		MetaData: TransactionMetaData{
			Date:      time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
			Payee:     "Safeway",
			Narration: "Groceries",
			Flag:      FlagComplete,
			Tags:      []string{"food"},
		},
		Postings: []Posting{
			{Account: checking, Amount: NewAmount(decimal.RequireFromString("-42.45"), "CAD")},
			{Account: groceries, Amount: NewAmount(decimal.RequireFromString("42.45"), "CAD")},
		},
	}

	expected := `2020-01-05 * "Safeway" "Groceries" #food
  Assets:Checking -42.45 CAD
  Expenses:Food:Groceries 42.45 CAD`
	assert.Equal(t, expected, txn.String())
}

func TestPostingStringWithPriceAndCost(t *testing.T) {
	account, err := NewAccount("Expenses:TODO")
	require.NoError(t, err)

	price := Amount{
		Number:        decimal.RequireFromString("0.6666667"),
		Commodity:     "EUR",
		DecimalDigits: UnitPriceDigits,
	}
	posting := Posting{
		Account: account,
		Amount:  NewAmount(decimal.RequireFromString("225"), "CAD"),
		Price:   &price,
	}
	assert.Equal(t, "  Expenses:TODO 225.00 CAD @ 0.6666667 EUR", posting.String())

	cost := NewAmount(decimal.RequireFromString("22.13"), "CAD")
	posting = Posting{
		Account: account,
		Amount:  NewAmount(decimal.RequireFromString("2.682"), "MLBR2045"),
		Cost:    &cost,
	}
	assert.Equal(t, "  Expenses:TODO 2.68 MLBR2045 {22.13 CAD}", posting.String())
}

func TestBalanceAndPriceString(t *testing.T) {
	account, err := NewAccount("Assets:Retirement:ML:Employee:Basic:MLBR2045")
	require.NoError(t, err)

	balance := Balance{
		Date:    time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC),
		Account: account,
		Amount:  NewAmount(decimal.RequireFromString("39.84"), "MLBR2045"),
	}
	assert.Equal(t, "2019-04-01 balance Assets:Retirement:ML:Employee:Basic:MLBR2045 39.84 MLBR2045", balance.String())

	price := Price{
		Date:      time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC),
		Commodity: "MLBR2045",
		Amount:    NewAmount(decimal.RequireFromString("12.98"), "CAD"),
	}
	assert.Equal(t, "2019-04-01 price MLBR2045 12.98 CAD", price.String())
}

func TestCommoditySymbol(t *testing.T) {
	ledger := NewLedger()
	ledger.Commodities["4515 ML BlackRock LifePath Index 2045 q4"] = "MLBR2045"

	assert.Equal(t, "MLBR2045", ledger.CommoditySymbol("4515 ML BlackRock LifePath Index 2045 q4"))
	assert.Equal(t, "Unknown Fund", ledger.CommoditySymbol("Unknown Fund"))
}
