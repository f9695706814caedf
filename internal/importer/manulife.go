package importer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/beanport-dev/beanport/internal/model"
)

// ManuLifeImporter parses semi-structured text pasted from ManuLife
// retirement statements into balance assertions, price statements, and a
// contribution transaction, rendered as ledger text. Unlike the CSV
// importers it does not stream transactions for review; balances and prices
// are collected in one pass.
type ManuLifeImporter struct {
	ledger    *model.Ledger
	account   model.Account
	commodity string
	today     time.Time

	balances []model.Balance
	prices   []model.Price
}

const (
	manuLifeKind           = "manulife"
	manuLifeImportDate     = "January 2, 2006"
	commodityPadding       = 29
	balanceAccountPadding  = 69
	purchaseAccountPadding = 67
	purchaseAmountPadding  = 10

	// The statement's cash leg amount is not present in the pasted text and
	// is left for the reviewer to fill in.
	purchasePlaceholderAmount = "0.00"
)

// Contribution units are split across four sub-accounts in fixed
// proportions of the plan's 7.5 shares.
var (
	manuLifeSplitTotal = decimal.RequireFromString("7.5")
	manuLifeSplits     = []struct {
		category string
		weight   decimal.Decimal
	}{
		{"Employee:Basic", decimal.RequireFromString("2.0")},
		{"Employer:Basic", decimal.RequireFromString("2.5")},
		{"Employer:Match", decimal.RequireFromString("2.5")},
		{"Employee:Voluntary", decimal.RequireFromString("0.5")},
	}
)

var (
	manuLifeCommodityRe    = regexp.MustCompile(`(?m)\s*?(\d{4}\s*?-\s*?.*?[a-z]\d)\s*?$`)
	manuLifeEmployeeBasic  = regexp.MustCompile(`(?m)\s*?Employee Basic\s*([0-9.]*)`)
	manuLifeEmployeeVolunt = regexp.MustCompile(`(?m)\s*?Employee voluntary\s*([0-9.]*)`)
	manuLifeMemberVolunt   = regexp.MustCompile(`(?m)\s*?Member Voluntary\s*([0-9.]*)`)
	manuLifeEmployerBasic  = regexp.MustCompile(`(?m)\s*?Employer Basic\s*([0-9.]*)`)
	manuLifeEmployerMatch  = regexp.MustCompile(`(?m)\s*?Employer Match\s*([0-9.]*)`)
	manuLifeUnitValue      = regexp.MustCompile(`(?m)\s*?(?:Employer Basic|Member Voluntary)\s*[0-9.]*\s*([0-9.]*)\s*[0-9.]*`)
	manuLifeDate           = regexp.MustCompile(`(?m)^(.*) Contribution \(Ref\.`)
	manuLifeBuyRe          = regexp.MustCompile(`(?m)\s*.*?\.gif\s*(\d{4}.*?[a-z]\d)\s*$\s*Contribution\s*([0-9.]*)\s*units\s*@\s*\$([0-9.]*)/unit\s*[0-9.]*\s*$`)
)

// manuLifeBalance is one TOTAL-delimited statement segment.
type manuLifeBalance struct {
	commodity         string
	unitValue         string
	employeeBasic     string
	employeeVoluntary string
	memberVoluntary   string
	employerBasic     string
	employerMatch     string
}

// manuLifeBuy is one purchased (commodity, units, price) triple.
type manuLifeBuy struct {
	commodity string
	units     string
	price     string
}

// NewManuLife creates a text-block importer for the given retirement account
// root. The ledger supplies commodity name to symbol lookups and may be nil.
func NewManuLife(ledger *model.Ledger, account model.Account, commodity string) *ManuLifeImporter {
	if commodity == "" {
		commodity = FallbackCommodity
	}
	return &ManuLifeImporter{
		ledger:    ledger,
		account:   account,
		commodity: commodity,
		today:     time.Now(),
	}
}

// Kind returns the importer's dispatch key.
func (m *ManuLifeImporter) Kind() string { return manuLifeKind }

// Parse extracts a contribution transaction from transactionBlock and
// balance assertions from balanceBlock, either of which may be empty, and
// returns the rendered ledger text.
func (m *ManuLifeImporter) Parse(transactionBlock, balanceBlock string) string {
	m.balances = nil
	m.prices = nil

	var result string
	if transactionBlock != "" {
		result = m.parsePurchase(transactionBlock)
	}
	if balanceBlock != "" {
		result += "\n\n" + m.stringifyBalances(m.parseBalances(balanceBlock))
	}
	return strings.TrimSpace(result)
}

// BalancesToImport returns the balance assertions collected by Parse. These
// need no individual review.
func (m *ManuLifeImporter) BalancesToImport() []model.Balance {
	return m.balances
}

// PricesToImport returns the price statements collected by Parse.
func (m *ManuLifeImporter) PricesToImport() []model.Price {
	return m.prices
}

// commoditySymbol resolves a statement commodity name through the ledger,
// falling back to the raw matched string.
func (m *ManuLifeImporter) commoditySymbol(name string) string {
	if m.ledger == nil {
		return name
	}
	return m.ledger.CommoditySymbol(name)
}

func firstMatch(input string, re *regexp.Regexp) (string, bool) {
	groups := re.FindStringSubmatch(input)
	if len(groups) < 2 {
		return "", false
	}
	return groups[1], true
}

func (m *ManuLifeImporter) parseBalances(input string) []manuLifeBalance {
	var results []manuLifeBalance
	for _, segment := range strings.Split(input, "TOTAL") {
		commodity, ok := firstMatch(segment, manuLifeCommodityRe)
		if !ok {
			continue
		}
		unitValue, ok := firstMatch(segment, manuLifeUnitValue)
		if !ok {
			continue
		}
		commodity = strings.ReplaceAll(commodity, " -", "")
		balance := manuLifeBalance{
			commodity: m.commoditySymbol(commodity),
			unitValue: unitValue,
		}
		balance.employeeBasic, _ = firstMatch(segment, manuLifeEmployeeBasic)
		balance.employeeVoluntary, _ = firstMatch(segment, manuLifeEmployeeVolunt)
		balance.memberVoluntary, _ = firstMatch(segment, manuLifeMemberVolunt)
		balance.employerBasic, _ = firstMatch(segment, manuLifeEmployerBasic)
		balance.employerMatch, _ = firstMatch(segment, manuLifeEmployerMatch)
		results = append(results, balance)
	}
	return results
}

func (m *ManuLifeImporter) stringifyBalances(balances []manuLifeBalance) string {
	date := m.today.Format(model.DateFormat)

	var lines []string
	for _, balance := range balances {
		categories := []struct {
			category string
			amount   string
		}{
			{"Employee:Basic", balance.employeeBasic},
			{"Employer:Basic", balance.employerBasic},
			{"Employer:Match", balance.employerMatch},
			{"Employee:Voluntary", balance.employeeVoluntary},
			{"Member:Voluntary", balance.memberVoluntary},
		}
		for _, c := range categories {
			if c.amount == "" {
				continue
			}
			accountName := fmt.Sprintf("%s:%s:%s", m.account, c.category, balance.commodity)
			lines = append(lines, fmt.Sprintf("%s balance %s %s %s",
				date, padRight(accountName, balanceAccountPadding), padLeft(c.amount, 8), balance.commodity))
			m.collectBalance(accountName, c.amount, balance.commodity)
		}
	}

	priceLines := make([]string, 0, len(balances))
	for _, balance := range balances {
		priceLines = append(priceLines, fmt.Sprintf("%s price %s %s %s",
			date, padRight(balance.commodity, commodityPadding), balance.unitValue, m.commodity))
		m.collectPrice(m.today, balance.commodity, balance.unitValue)
	}
	sort.Strings(priceLines)

	return strings.Join(lines, "\n") + "\n\n" + strings.Join(priceLines, "\n")
}

func (m *ManuLifeImporter) parsePurchase(input string) string {
	var purchaseDate time.Time
	var dateString string
	if raw, ok := firstMatch(input, manuLifeDate); ok {
		if parsed, err := time.Parse(manuLifeImportDate, raw); err == nil {
			purchaseDate = parsed
			dateString = parsed.Format(model.DateFormat)
		}
	}

	var buys []manuLifeBuy
	for _, groups := range manuLifeBuyRe.FindAllStringSubmatch(input, -1) {
		buys = append(buys, manuLifeBuy{
			commodity: m.commoditySymbol(groups[1]),
			units:     groups[2],
			price:     groups[3],
		})
	}

	lines := []string{
		fmt.Sprintf("%s * %q %q", dateString, "", ""),
		fmt.Sprintf("  %s%s %s", padRight(m.account.Name, purchaseAccountPadding),
			padRight(purchasePlaceholderAmount, purchaseAmountPadding), m.commodity),
	}
	for _, buy := range buys {
		units, err := decimal.NewFromString(buy.units)
		if err != nil {
			continue
		}
		for _, split := range manuLifeSplits {
			allocated := units.Mul(split.weight).DivRound(manuLifeSplitTotal, model.UnitQtyDigits)
			accountName := fmt.Sprintf("%s:%s:%s", m.account, split.category, buy.commodity)
			lines = append(lines, fmt.Sprintf("  %s%s %s {%s %s}",
				padRight(accountName, purchaseAccountPadding),
				allocated.StringFixed(model.UnitQtyDigits),
				padRight(buy.commodity, 18), buy.price, m.commodity))
		}
	}

	priceLines := make([]string, 0, len(buys))
	for _, buy := range buys {
		priceLines = append(priceLines, fmt.Sprintf("%s price %s %s %s",
			dateString, padRight(buy.commodity, commodityPadding), buy.price, m.commodity))
		m.collectPrice(purchaseDate, buy.commodity, buy.price)
	}
	sort.Strings(priceLines)

	return strings.Join(lines, "\n") + "\n\n" + strings.Join(priceLines, "\n")
}

// collectBalance records a structured balance when the account name and
// amount are well-formed; malformed statement tokens stay text-only.
func (m *ManuLifeImporter) collectBalance(accountName, amount, commodity string) {
	account, err := model.NewAccount(accountName)
	if err != nil {
		return
	}
	number, err := decimal.NewFromString(amount)
	if err != nil {
		return
	}
	m.balances = append(m.balances, model.Balance{
		Date:    m.today,
		Account: account,
		Amount:  model.NewAmount(number, commodity),
	})
}

func (m *ManuLifeImporter) collectPrice(date time.Time, commodity, value string) {
	number, err := decimal.NewFromString(value)
	if err != nil {
		return
	}
	m.prices = append(m.prices, model.Price{
		Date:      date,
		Commodity: commodity,
		Amount:    model.NewAmount(number, m.commodity),
	})
}

func padRight(value string, length int) string {
	if len(value) >= length {
		return value
	}
	return value + strings.Repeat(" ", length-len(value))
}

func padLeft(value string, length int) string {
	if len(value) >= length {
		return value
	}
	return strings.Repeat(" ", length-len(value)) + value
}
