package importer

import (
	"fmt"
	"time"

	"github.com/beanport-dev/beanport/internal/model"
)

// LunchOnUsParser parses LunchOnUs meal-card CSV exports.
type LunchOnUsParser struct{}

const (
	lunchOnUsDateFormat = "Jan 02, 2006 | 15:04:05"
	lunchOnUsColDate    = "date"
	lunchOnUsColType    = "type"
	lunchOnUsColAmount  = "amount"
	lunchOnUsColDesc    = "location"

	lunchOnUsActivate = "Activate Card"
	lunchOnUsPayee    = "SAP Canada Inc."
)

var lunchOnUsHeader = []string{"date", "type", "amount", "invoice", "remaining", "location"}

// Kind returns the parser name.
func (p *LunchOnUsParser) Kind() string { return "lunchonus" }

// Header returns the detection signature.
func (p *LunchOnUsParser) Header() []string { return lunchOnUsHeader }

// ParseRow converts one LunchOnUs record. Amounts are exported unsigned:
// purchases are outflows, card activations are inflows credited by the
// employer with a synthetic payee and no description.
func (p *LunchOnUsParser) ParseRow(row Row) (model.RawLine, error) {
	date, err := time.Parse(lunchOnUsDateFormat, row[lunchOnUsColDate])
	if err != nil {
		return model.RawLine{}, fmt.Errorf("parsing date %q: %w", row[lunchOnUsColDate], err)
	}

	amount, err := parseAmount(row[lunchOnUsColAmount])
	if err != nil {
		return model.RawLine{}, err
	}

	var description, payee string
	if row[lunchOnUsColType] == lunchOnUsActivate {
		payee = lunchOnUsPayee
	} else {
		description = row[lunchOnUsColDesc]
		amount = amount.Neg()
	}

	return model.RawLine{
		Date:        date,
		Description: description,
		Amount:      amount,
		Payee:       payee,
	}, nil
}
