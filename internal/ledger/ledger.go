// Package ledger reads the subset of an existing plain-text ledger the
// import pipeline needs (transactions for duplicate detection, commodity
// names for autocomplete) and appends accepted entries to a result file.
package ledger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/beanport-dev/beanport/internal/model"
)

var (
	transactionRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) ([*!]) "([^"]*)" "([^"]*)"`)
	postingRe     = regexp.MustCompile(`^\s+(\S+)\s+(-?[0-9.]+)\s+(\S+)`)
	commodityRe   = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) commodity (\S+)`)
	nameMetaRe    = regexp.MustCompile(`^\s+name:\s*"([^"]*)"`)
)

// Read parses ledger text from r. Unrecognized lines are skipped; only
// transactions, their postings, and commodity declarations with name
// metadata are kept.
func Read(r io.Reader) (*model.Ledger, error) {
	result := model.NewLedger()

	var current *model.Transaction
	var currentCommodity string
	flush := func() {
		if current != nil {
			result.Transactions = append(result.Transactions, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if groups := transactionRe.FindStringSubmatch(line); groups != nil {
			flush()
			currentCommodity = ""
			date, err := time.Parse(model.DateFormat, groups[1])
			if err != nil {
				return nil, fmt.Errorf("parsing date %q: %w", groups[1], err)
			}
			flag := model.FlagComplete
			if groups[2] == string(model.FlagIncomplete) {
				flag = model.FlagIncomplete
			}
			current = &model.Transaction{
				MetaData: model.TransactionMetaData{
					Date:      date,
					Flag:      flag,
					Payee:     groups[3],
					Narration: groups[4],
				},
			}
			continue
		}

		if groups := commodityRe.FindStringSubmatch(line); groups != nil {
			flush()
			currentCommodity = groups[2]
			continue
		}

		if currentCommodity != "" {
			if groups := nameMetaRe.FindStringSubmatch(line); groups != nil {
				result.Commodities[groups[1]] = currentCommodity
				continue
			}
		}

		if current != nil {
			if groups := postingRe.FindStringSubmatch(line); groups != nil {
				account, err := model.NewAccount(groups[1])
				if err != nil {
					continue
				}
				number, err := decimal.NewFromString(groups[2])
				if err != nil {
					continue
				}
				current.Postings = append(current.Postings, model.Posting{
					Account: account,
					Amount:  model.NewAmount(number, groups[3]),
				})
				continue
			}
		}

		if strings.TrimSpace(line) == "" {
			flush()
			currentCommodity = ""
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return result, nil
}

// LoadOrEmpty reads a ledger file, degrading to an empty ledger when the
// file is missing or unreadable: imports proceed without autocomplete
// rather than failing.
func LoadOrEmpty(path string) *model.Ledger {
	if path == "" {
		return model.NewLedger()
	}
	f, err := os.Open(path)
	if err != nil {
		return model.NewLedger()
	}
	defer f.Close()

	result, err := Read(f)
	if err != nil {
		return model.NewLedger()
	}
	return result
}
