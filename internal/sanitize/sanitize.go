// Package sanitize strips bank-specific noise tokens from raw transaction
// descriptions via an ordered list of regex passes.
package sanitize

import "regexp"

// pass removes every match of re, except matches for which keep returns true.
type pass struct {
	re   *regexp.Regexp
	keep func(match string) bool
}

// Each pass operates on the output of the one before it. Patterns must not
// depend on text an earlier pass already removed.
var passes = []pass{
	{re: regexp.MustCompile(`(C-)?IDP PURCHASE( )?-( )?[0-9]{4}`)},
	{re: regexp.MustCompile(`VISA DEBIT (PUR|REF)-[0-9]{4}`)},
	{re: regexp.MustCompile(`WWWINTERAC PUR [0-9]{4}`)},
	{re: regexp.MustCompile(`INTERAC E-TRF- [0-9]{4}`)},
	{re: regexp.MustCompile(`[0-9]* ~ Internet Withdrawal`)},
	// " SAP" is stripped unless followed by " CANADA". Go's regexp has no
	// negative lookahead, so the optional suffix is matched and kept instead.
	{
		re:   regexp.MustCompile(`(-)? SAP( CANADA)?`),
		keep: func(match string) bool { return sapCanada.MatchString(match) },
	},
	{re: regexp.MustCompile(`-( )?(MAY|JUNE)( )?201(4|6)`)},
	{re: regexp.MustCompile(`[^ ]*  BC  CA`)},
	{re: regexp.MustCompile(`#( )?[0-9]{1,5}`)},
}

var sapCanada = regexp.MustCompile(` SAP CANADA$`)

// Sanitize removes known noise tokens from a description. Pure and
// idempotent; input without matches passes through unchanged.
func Sanitize(description string) string {
	result := description
	for _, p := range passes {
		if p.keep == nil {
			result = p.re.ReplaceAllString(result, "")
			continue
		}
		keep := p.keep
		result = p.re.ReplaceAllStringFunc(result, func(match string) string {
			if keep(match) {
				return match
			}
			return ""
		})
	}
	return result
}
