package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_PurchaseCodes(t *testing.T) {
	assert.Equal(t, " Safeway", Sanitize("IDP PURCHASE - 1234 Safeway"))
	assert.Equal(t, " Safeway", Sanitize("C-IDP PURCHASE-1234 Safeway"))
	assert.Equal(t, " Starbucks", Sanitize("VISA DEBIT PUR-5678 Starbucks"))
	assert.Equal(t, " Starbucks", Sanitize("VISA DEBIT REF-5678 Starbucks"))
	assert.Equal(t, " Tim Horton's", Sanitize("WWWINTERAC PUR 4321 Tim Horton's"))
	assert.Equal(t, " John", Sanitize("INTERAC E-TRF- 1001 John"))
}

func TestSanitize_InternetWithdrawal(t *testing.T) {
	assert.Equal(t, "", Sanitize("573849 ~ Internet Withdrawal"))
}

func TestSanitize_SAP(t *testing.T) {
	assert.Equal(t, "SALARY", Sanitize("SALARY SAP"))
	assert.Equal(t, "SALARY", Sanitize("SALARY- SAP"))
	// " SAP CANADA" is the employer name, not a noise token.
	assert.Equal(t, "SALARY SAP CANADA", Sanitize("SALARY SAP CANADA"))
}

func TestSanitize_MonthSuffixes(t *testing.T) {
	assert.Equal(t, "RENT", Sanitize("RENT-MAY 2014"))
	assert.Equal(t, "RENT", Sanitize("RENT- JUNE 2016"))
}

func TestSanitize_ProvinceAndStoreCodes(t *testing.T) {
	assert.Equal(t, "SAFEWAY ", Sanitize("SAFEWAY VANCOUVER  BC  CA"))
	assert.Equal(t, "SAFEWAY ", Sanitize("SAFEWAY #1234"))
	assert.Equal(t, "SAFEWAY ", Sanitize("SAFEWAY # 42"))
}

func TestSanitize_NoMatchPassesThrough(t *testing.T) {
	assert.Equal(t, "Plain grocery run", Sanitize("Plain grocery run"))
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"IDP PURCHASE - 1234 Safeway",
		"SALARY SAP CANADA",
		"573849 ~ Internet Withdrawal",
		"SAFEWAY VANCOUVER  BC  CA #1234",
		"Plain grocery run",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}
