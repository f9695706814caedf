package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/beanport-dev/beanport/internal/model"
)

// TangerineParser parses Tangerine bank account CSV exports.
type TangerineParser struct{}

const (
	tangerineDateFormat = "1/2/2006"
	tangerineColDate    = "Date"
	tangerineColName    = "Name"
	tangerineColMemo    = "Memo"
	tangerineColAmount  = "Amount"

	tangerineInterest      = "Interest Paid"
	tangerineInteracPrefix = "INTERAC e-Transfer From: "
	tangerinePayee         = "Tangerine"
)

var tangerineHeader = []string{"Date", "Transaction", "Name", "Memo", "Amount"}

// Kind returns the parser name.
func (p *TangerineParser) Kind() string { return "tangerine" }

// Header returns the detection signature.
func (p *TangerineParser) Header() []string { return tangerineHeader }

// ParseRow converts one Tangerine record. Interest rows get a synthetic
// payee and no description; incoming e-transfers fold the sender name into
// the description.
func (p *TangerineParser) ParseRow(row Row) (model.RawLine, error) {
	date, err := time.Parse(tangerineDateFormat, row[tangerineColDate])
	if err != nil {
		return model.RawLine{}, fmt.Errorf("parsing date %q: %w", row[tangerineColDate], err)
	}

	amount, err := parseAmount(row[tangerineColAmount])
	if err != nil {
		return model.RawLine{}, err
	}

	var description, payee string
	name := row[tangerineColName]
	switch {
	case name == tangerineInterest:
		payee = tangerinePayee
	case strings.HasPrefix(name, tangerineInteracPrefix):
		description = strings.TrimPrefix(name, tangerineInteracPrefix) + " - " + row[tangerineColMemo]
	default:
		description = row[tangerineColMemo]
	}

	return model.RawLine{
		Date:        date,
		Description: description,
		Amount:      amount,
		Payee:       payee,
	}, nil
}
