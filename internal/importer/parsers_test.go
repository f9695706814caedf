package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTangerineParser_InterestPaid(t *testing.T) {
	p := &TangerineParser{}
	line, err := p.ParseRow(Row{
		"Date": "1/2/2020", "Transaction": "DEBIT", "Name": "Interest Paid", "Memo": "", "Amount": "5.00",
	})
	require.NoError(t, err)

	assert.Equal(t, 2020, line.Date.Year())
	assert.Equal(t, 1, int(line.Date.Month()))
	assert.Equal(t, 2, line.Date.Day())
	assert.Equal(t, "", line.Description)
	assert.Equal(t, "5.00", line.Amount.StringFixed(2))
	assert.Equal(t, "Tangerine", line.Payee)
}

func TestTangerineParser_MemoAndInterac(t *testing.T) {
	p := &TangerineParser{}

	line, err := p.ParseRow(Row{
		"Date": "1/5/2020", "Transaction": "DEBIT", "Name": "EFT Withdrawal",
		"Memo": "IDP PURCHASE - 1234 Safeway", "Amount": "-42.45",
	})
	require.NoError(t, err)
	assert.Equal(t, "IDP PURCHASE - 1234 Safeway", line.Description)
	assert.Empty(t, line.Payee)

	line, err = p.ParseRow(Row{
		"Date": "1/3/2020", "Transaction": "CREDIT", "Name": "INTERAC e-Transfer From: John Doe",
		"Memo": "rent", "Amount": "650.00",
	})
	require.NoError(t, err)
	assert.Equal(t, "John Doe - rent", line.Description)
}

func TestTangerineParser_BadDate(t *testing.T) {
	p := &TangerineParser{}
	_, err := p.ParseRow(Row{"Date": "NOTADATE", "Name": "x", "Memo": "y", "Amount": "1.00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestRBCParser_CombinesDescriptions(t *testing.T) {
	p := &RBCParser{}
	line, err := p.ParseRow(Row{
		"Transaction Date": "3/2/2020", "Description 1": "IDP PURCHASE - 9876",
		"Description 2": "SAFEWAY #1234", "CAD$": "-55.20",
	})
	require.NoError(t, err)
	assert.Equal(t, "IDP PURCHASE - 9876 SAFEWAY #1234", line.Description)
	assert.Equal(t, "-55.20", line.Amount.StringFixed(2))
	assert.Empty(t, line.Payee)
}

func TestRBCParser_MonthlyFee(t *testing.T) {
	p := &RBCParser{}
	line, err := p.ParseRow(Row{
		"Transaction Date": "3/1/2020", "Description 1": "MONTHLY FEE", "Description 2": "", "CAD$": "-4.00",
	})
	require.NoError(t, err)
	assert.Equal(t, "RBC", line.Payee)
}

func TestLunchOnUsParser_PurchaseIsOutflow(t *testing.T) {
	p := &LunchOnUsParser{}
	line, err := p.ParseRow(Row{
		"date": "Sep 03, 2019 | 12:01:15", "type": "Purchase", "amount": "8.50",
		"invoice": "73210", "remaining": "91.50", "location": "EBITEN ROBSON",
	})
	require.NoError(t, err)
	assert.Equal(t, "-8.50", line.Amount.StringFixed(2))
	assert.Equal(t, "EBITEN ROBSON", line.Description)
	assert.Empty(t, line.Payee)
}

func TestLunchOnUsParser_ActivateCardIsInflow(t *testing.T) {
	p := &LunchOnUsParser{}
	line, err := p.ParseRow(Row{
		"date": "Sep 01, 2019 | 09:00:00", "type": "Activate Card", "amount": "100.00",
		"invoice": "73102", "remaining": "100.00", "location": "",
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", line.Amount.StringFixed(2))
	assert.Equal(t, "", line.Description)
	assert.Equal(t, "SAP Canada Inc.", line.Payee)
}

func TestN26Parser_DomesticRow(t *testing.T) {
	p := &N26Parser{}
	line, err := p.ParseRow(Row{
		"Datum": "2019-10-01", "Empfänger": "REWE Berlin", "Verwendungszweck": "REWE SAGT DANKE",
		"Betrag (EUR)": "-24.56", "Betrag (Fremdwährung)": "", "Fremdwährung": "",
	})
	require.NoError(t, err)
	assert.Equal(t, "REWE Berlin", line.Payee)
	assert.Equal(t, "REWE SAGT DANKE", line.Description)
	assert.Nil(t, line.Price)
}

func TestN26Parser_ForeignCurrencyRow(t *testing.T) {
	p := &N26Parser{}
	line, err := p.ParseRow(Row{
		"Datum": "2019-10-05", "Empfänger": "Hotel Vancouver", "Verwendungszweck": "HOTEL VANCOUVER BC",
		"Betrag (EUR)": "-150.00", "Betrag (Fremdwährung)": "-225.00", "Fremdwährung": "CAD",
	})
	require.NoError(t, err)
	require.NotNil(t, line.Price)
	assert.Equal(t, "CAD", line.Price.Commodity)
	assert.Equal(t, "225.00", line.Price.Number.StringFixed(2))
}

func TestParsers_DistinctHeaders(t *testing.T) {
	r := DefaultRegistry()
	for _, kind := range r.Kinds() {
		p := r.Get(kind)
		detected := r.Detect(p.Header())
		require.NotNil(t, detected)
		assert.Equal(t, kind, detected.Kind())
	}
}

var _ = []Parser{&TangerineParser{}, &RBCParser{}, &LunchOnUsParser{}, &N26Parser{}}
