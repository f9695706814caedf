package model

// Ledger is an in-memory view of an existing plain-text ledger, used for
// autocomplete suggestions and duplicate detection during imports.
type Ledger struct {
	Transactions []Transaction
	Accounts     []Account
	Commodities  map[string]string // commodity name -> symbol
	Tags         []string
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{Commodities: make(map[string]string)}
}

// CommoditySymbol resolves a commodity display name to its symbol, falling
// back to the name itself when unknown.
func (l *Ledger) CommoditySymbol(name string) string {
	if symbol, ok := l.Commodities[name]; ok {
		return symbol
	}
	return name
}
