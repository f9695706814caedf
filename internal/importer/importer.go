// Package importer converts bank and credit-card exports into ledger
// transactions. CSV formats are detected by their exact header signature;
// text-block formats are dispatched by kind.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/beanport-dev/beanport/internal/model"
)

// DefaultCategoryAccount receives the balancing posting when no category
// mapping exists for a payee.
const DefaultCategoryAccount = "Expenses:TODO"

// FallbackCommodity is used when neither config nor importer settings name
// a currency.
const FallbackCommodity = "CAD"

// ErrNoParserFound is returned when an input matches no registered format.
var ErrNoParserFound = errors.New("no importer found for input")

// Row is one CSV record keyed by column header.
type Row map[string]string

// Parser translates one record of a specific institution's format into a
// RawLine.
type Parser interface {
	// Kind is the parser's stable identifier, e.g. "tangerine".
	Kind() string
	// Header is the exact ordered CSV header this format is detected by.
	Header() []string
	// ParseRow converts one record. A bad date or amount fails the row.
	ParseRow(row Row) (model.RawLine, error)
}

// Registry holds the registered per-institution parsers.
type Registry struct {
	parsers []Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a parser. Panics on a duplicate kind or header signature;
// ambiguous registration is a configuration bug, not a runtime case.
func (r *Registry) Register(p Parser) {
	for _, existing := range r.parsers {
		if existing.Kind() == p.Kind() {
			panic("duplicate parser kind: " + p.Kind())
		}
		if headerEqual(existing.Header(), p.Header()) {
			panic("duplicate parser header: " + strings.Join(p.Header(), ","))
		}
	}
	r.parsers = append(r.parsers, p)
}

// Detect returns the parser whose header signature exactly matches the given
// header row, or nil. First registered match wins.
func (r *Registry) Detect(header []string) Parser {
	for _, p := range r.parsers {
		if headerEqual(p.Header(), header) {
			return p
		}
	}
	return nil
}

// Get returns the parser with the given kind, or nil.
func (r *Registry) Get(kind string) Parser {
	for _, p := range r.parsers {
		if p.Kind() == kind {
			return p
		}
	}
	return nil
}

// Kinds returns the registered parser kinds in registration order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, len(r.parsers))
	for i, p := range r.parsers {
		kinds[i] = p.Kind()
	}
	return kinds
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&TangerineParser{})
	r.Register(&RBCParser{})
	r.Register(&LunchOnUsParser{})
	r.Register(&N26Parser{})
	return r
}

func headerEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// parseAmount parses a decimal amount, tolerating thousands separators.
func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	number, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	return number, nil
}
