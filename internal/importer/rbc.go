package importer

import (
	"fmt"
	"time"

	"github.com/beanport-dev/beanport/internal/model"
)

// RBCParser parses RBC chequing/savings CSV exports.
type RBCParser struct{}

const (
	rbcDateFormat = "1/2/2006"
	rbcColDate    = "Transaction Date"
	rbcColDesc1   = "Description 1"
	rbcColDesc2   = "Description 2"
	rbcColAmount  = "CAD$"

	rbcMonthlyFee = "MONTHLY FEE "
	rbcPayee      = "RBC"
)

var rbcHeader = []string{
	"Account Type", "Account Number", "Transaction Date", "Cheque Number",
	"Description 1", "Description 2", "CAD$", "USD$",
}

// Kind returns the parser name.
func (p *RBCParser) Kind() string { return "rbc" }

// Header returns the detection signature.
func (p *RBCParser) Header() []string { return rbcHeader }

// ParseRow converts one RBC record, combining both description columns.
// Monthly account fees get a synthetic payee.
func (p *RBCParser) ParseRow(row Row) (model.RawLine, error) {
	date, err := time.Parse(rbcDateFormat, row[rbcColDate])
	if err != nil {
		return model.RawLine{}, fmt.Errorf("parsing date %q: %w", row[rbcColDate], err)
	}

	amount, err := parseAmount(row[rbcColAmount])
	if err != nil {
		return model.RawLine{}, err
	}

	description := row[rbcColDesc1] + " " + row[rbcColDesc2]
	var payee string
	if description == rbcMonthlyFee {
		payee = rbcPayee
	}

	return model.RawLine{
		Date:        date,
		Description: description,
		Amount:      amount,
		Payee:       payee,
	}, nil
}
