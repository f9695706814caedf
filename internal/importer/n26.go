package importer

import (
	"fmt"
	"time"

	"github.com/beanport-dev/beanport/internal/model"
)

// N26Parser parses N26 bank CSV exports (German column names).
type N26Parser struct{}

const (
	n26DateFormat     = "2006-01-02"
	n26ColDate        = "Datum"
	n26ColRecipient   = "Empfänger"
	n26ColDesc        = "Verwendungszweck"
	n26ColAmount      = "Betrag (EUR)"
	n26ColForeignAmt  = "Betrag (Fremdwährung)"
	n26ColForeignCurr = "Fremdwährung"
	n26HomeCurrency   = "EUR"
)

var n26Header = []string{
	"Datum", "Empfänger", "Kontonummer", "Transaktionstyp", "Verwendungszweck",
	"Kategorie", "Betrag (EUR)", "Betrag (Fremdwährung)", "Fremdwährung", "Wechselkurs",
}

// Kind returns the parser name.
func (p *N26Parser) Kind() string { return "n26" }

// Header returns the detection signature.
func (p *N26Parser) Header() []string { return n26Header }

// ParseRow converts one N26 record. Rows settled in another currency carry
// the foreign amount as a price so the category leg can be booked in the
// purchase currency.
func (p *N26Parser) ParseRow(row Row) (model.RawLine, error) {
	date, err := time.Parse(n26DateFormat, row[n26ColDate])
	if err != nil {
		return model.RawLine{}, fmt.Errorf("parsing date %q: %w", row[n26ColDate], err)
	}

	amount, err := parseAmount(row[n26ColAmount])
	if err != nil {
		return model.RawLine{}, err
	}

	var price *model.Amount
	if foreign := row[n26ColForeignAmt]; foreign != "" && row[n26ColForeignCurr] != n26HomeCurrency {
		foreignAmount, err := parseAmount(foreign)
		if err != nil {
			return model.RawLine{}, err
		}
		// The export carries the foreign amount with the same sign as the
		// EUR amount; the category leg needs the opposite one.
		priceAmount := model.NewAmount(foreignAmount.Neg(), row[n26ColForeignCurr])
		price = &priceAmount
	}

	return model.RawLine{
		Date:        date,
		Description: row[n26ColDesc],
		Amount:      amount,
		Payee:       row[n26ColRecipient],
		Price:       price,
	}, nil
}
