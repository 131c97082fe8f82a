package domain

import "fmt"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Income    AccountType = "income"
	Expense   AccountType = "expense"
)

// AccountTypes lists every valid account type in chart-of-accounts order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Income, Expense}

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether a debit increases accounts of this type.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account is an entry in an organization's chart of accounts.
type Account struct {
	AccountID      string      `json:"accountID"`
	OrganizationID string      `json:"organizationID"`
	Code           string      `json:"code"` // e.g. "1001", "3001"
	Name           string      `json:"name"`
	AccountType    AccountType `json:"accountType"`
	AuditFields
}

// Label returns the "{code} - {name}" form used as the report key.
func (a Account) Label() string {
	return AccountLabel(a.Code, a.Name)
}

// AccountLabel formats an account code and name as a report key.
func AccountLabel(code, name string) string {
	return fmt.Sprintf("%s - %s", code, name)
}
