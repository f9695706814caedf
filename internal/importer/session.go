package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beanport-dev/beanport/internal/dupe"
	"github.com/beanport-dev/beanport/internal/mapping"
	"github.com/beanport-dev/beanport/internal/model"
	"github.com/beanport-dev/beanport/internal/sanitize"
)

// Session drives one import run, yielding transactions one at a time for
// interactive review. Not safe for concurrent callers.
type Session struct {
	parser    Parser
	rows      []Row
	account   model.Account
	commodity string
	store     *mapping.Store
	ledger    *model.Ledger

	loaded bool
	lines  []model.RawLine
}

// NewSession reads a CSV export, detects its format by header signature, and
// returns a session bound to the known account. Returns ErrNoParserFound when
// the header matches no registered format. The ledger may be nil.
func NewSession(r io.Reader, registry *Registry, account model.Account, commodity string, store *mapping.Store, ledger *model.Ledger) (*Session, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	parser := registry.Detect(header)
	if parser == nil {
		return nil, ErrNoParserFound
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		row := make(Row, len(header))
		for i, name := range header {
			row[name] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, row)
	}

	if commodity == "" {
		commodity = FallbackCommodity
	}

	return &Session{
		parser:    parser,
		rows:      rows,
		account:   account,
		commodity: commodity,
		store:     store,
		ledger:    ledger,
	}, nil
}

// Kind returns the detected parser kind.
func (s *Session) Kind() string {
	return s.parser.Kind()
}

// Load parses every raw record and queues the results by descending date so
// Next yields oldest-first. A row with an unparseable date or amount aborts
// the whole load. Idempotent: a second call is a no-op.
func (s *Session) Load() error {
	if s.loaded {
		return nil
	}
	for i, row := range s.rows {
		line, err := s.parser.ParseRow(row)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		s.lines = append(s.lines, line)
	}
	sort.SliceStable(s.lines, func(i, j int) bool {
		return s.lines[i].Date.After(s.lines[j].Date)
	})
	s.loaded = true
	return nil
}

// Next pops the next queued record, built into a reviewable transaction with
// duplicate detection applied. Returns nil once the queue is exhausted or
// when Load has not been called.
func (s *Session) Next() *model.ImportedTransaction {
	if !s.loaded || len(s.lines) == 0 {
		return nil
	}
	line := s.lines[len(s.lines)-1]
	s.lines = s.lines[:len(s.lines)-1]

	imported := s.build(line)
	imported.PossibleDuplicate = dupe.FindDuplicate(imported.Transaction, s.ledger, s.store.DateTolerance())
	return imported
}

// build turns a RawLine into a balanced two-posting transaction, consulting
// the mapping store for payee, narration, and category account.
func (s *Session) build(line model.RawLine) *model.ImportedTransaction {
	sanitized := sanitize.Sanitize(line.Description)

	payee := line.Payee
	narration := sanitized
	if mapped, ok := s.store.Payee(sanitized); ok {
		payee = mapped
	}
	if mapped, ok := s.store.Narration(sanitized); ok {
		narration = mapped
	}

	category, _ := model.NewAccount(DefaultCategoryAccount)
	if name, ok := s.store.CategoryAccount(payee); ok {
		if acct, err := model.NewAccount(name); err == nil {
			category = acct
		}
	}

	flag := model.FlagIncomplete
	if payee != line.Payee && narration != sanitized {
		flag = model.FlagComplete
	}

	transaction := model.Transaction{
		MetaData: model.TransactionMetaData{
			Date:      line.Date,
			Payee:     payee,
			Narration: narration,
			Flag:      flag,
		},
		Postings: []model.Posting{
			{
				Account: s.account,
				Amount:  model.NewAmount(line.Amount, s.commodity),
			},
		},
	}

	if line.Price != nil {
		// Currency-converted purchase: the category leg carries the foreign
		// amount at a computed per-unit price.
		perUnit := model.Amount{
			Number:        line.Amount.Neg().Div(line.Price.Number),
			Commodity:     s.commodity,
			DecimalDigits: model.UnitPriceDigits,
		}
		transaction.Postings = append(transaction.Postings, model.Posting{
			Account: category,
			Amount:  *line.Price,
			Price:   &perUnit,
		})
	} else {
		transaction.Postings = append(transaction.Postings, model.Posting{
			Account: category,
			Amount:  model.NewAmount(line.Amount.Neg(), s.commodity),
		})
	}

	return &model.ImportedTransaction{
		Transaction:         transaction,
		OriginalDescription: sanitized,
		AllowUserEdit:       true,
	}
}
