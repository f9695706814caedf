package model

import (
	"fmt"
	"regexp"
	"strings"
)

// AccountType is the root segment of an account name.
type AccountType string

const (
	AccountTypeAssets      AccountType = "Assets"
	AccountTypeLiabilities AccountType = "Liabilities"
	AccountTypeIncome      AccountType = "Income"
	AccountTypeExpenses    AccountType = "Expenses"
	AccountTypeEquity      AccountType = "Equity"
)

// accountTypes lists all valid root segments.
var accountTypes = []AccountType{
	AccountTypeAssets,
	AccountTypeLiabilities,
	AccountTypeIncome,
	AccountTypeExpenses,
	AccountTypeEquity,
}

var segmentPattern = regexp.MustCompile(`^[A-Z0-9][A-Za-z0-9-]*$`)

// Account is a validated, colon-delimited hierarchical account name.
type Account struct {
	Name string
}

// NewAccount validates name and returns an Account. The first segment must be
// one of the five root types, and every following segment must start with an
// uppercase letter or digit.
func NewAccount(name string) (Account, error) {
	segments := strings.Split(name, ":")
	if len(segments) < 2 {
		return Account{}, fmt.Errorf("invalid account name %q: need a root type and at least one segment", name)
	}

	validRoot := false
	for _, t := range accountTypes {
		if segments[0] == string(t) {
			validRoot = true
			break
		}
	}
	if !validRoot {
		return Account{}, fmt.Errorf("invalid account name %q: unknown root type %q", name, segments[0])
	}

	for _, seg := range segments[1:] {
		if !segmentPattern.MatchString(seg) {
			return Account{}, fmt.Errorf("invalid account name %q: bad segment %q", name, seg)
		}
	}

	return Account{Name: name}, nil
}

// Type returns the account's root type.
func (a Account) Type() AccountType {
	root, _, _ := strings.Cut(a.Name, ":")
	return AccountType(root)
}

func (a Account) String() string {
	return a.Name
}
