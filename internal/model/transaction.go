package model

import (
	"fmt"
	"strings"
	"time"
)

// Flag marks whether a transaction still needs manual attention.
type Flag string

const (
	FlagComplete   Flag = "*"
	FlagIncomplete Flag = "!"
)

// TransactionMetaData is the header line of a transaction.
type TransactionMetaData struct {
	Date      time.Time
	Payee     string
	Narration string
	Flag      Flag
	Tags      []string
}

// Posting is one account+amount leg of a transaction. Price is a per-unit
// price, Cost a per-unit cost basis; both are optional.
type Posting struct {
	Account Account
	Amount  Amount
	Price   *Amount
	Cost    *Amount
}

// Transaction is a dated entry with an ordered list of postings.
type Transaction struct {
	MetaData TransactionMetaData
	Postings []Posting
}

// Balance asserts an account's expected balance at a date.
type Balance struct {
	Date    time.Time
	Account Account
	Amount  Amount
}

// Price records a commodity's value in another commodity at a date.
type Price struct {
	Date      time.Time
	Commodity string
	Amount    Amount
}

// DateFormat is the date layout used in rendered ledger text.
const DateFormat = "2006-01-02"

func (p Posting) String() string {
	result := fmt.Sprintf("  %s %s", p.Account, p.Amount)
	if p.Cost != nil {
		result += fmt.Sprintf(" {%s}", p.Cost)
	}
	if p.Price != nil {
		result += fmt.Sprintf(" @ %s", p.Price)
	}
	return result
}

func (t Transaction) String() string {
	lines := make([]string, 0, len(t.Postings)+1)
	header := fmt.Sprintf("%s %s %q %q", t.MetaData.Date.Format(DateFormat), t.MetaData.Flag, t.MetaData.Payee, t.MetaData.Narration)
	for _, tag := range t.MetaData.Tags {
		header += " #" + tag
	}
	lines = append(lines, header)
	for _, p := range t.Postings {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}

func (b Balance) String() string {
	return fmt.Sprintf("%s balance %s %s", b.Date.Format(DateFormat), b.Account, b.Amount)
}

func (p Price) String() string {
	return fmt.Sprintf("%s price %s %s", p.Date.Format(DateFormat), p.Commodity, p.Amount)
}
