package models

// AccountType is the lowercase account type stored in chart_of_accounts.type.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Income    AccountType = "income"
	Expense   AccountType = "expense"
)

// Account is a row of chart_of_accounts.
type Account struct {
	AccountID      string      `db:"account_id"`
	OrganizationID string      `db:"organization_id"`
	Code           string      `db:"code"`
	Name           string      `db:"name"`
	AccountType    AccountType `db:"type"`
	AuditFields
}
