package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of journal_entries.
type JournalEntry struct {
	EntryID         string    `db:"entry_id"`
	OrganizationID  string    `db:"organization_id"`
	TransactionDate time.Time `db:"transaction_date"`
	Reference       string    `db:"reference"`
	Description     string    `db:"description"`
	AuditFields
}

// JournalLine is a row of journal_lines joined with the account it posts to.
// AccountCode, AccountName and AccountType come from chart_of_accounts and TransactionDate
// from the owning entry.
type JournalLine struct {
	LineID          string          `db:"line_id"`
	EntryID         string          `db:"entry_id"`
	OrganizationID  string          `db:"organization_id"`
	AccountID       string          `db:"account_id"`
	AccountCode     string          `db:"account_code"`
	AccountName     string          `db:"account_name"`
	AccountType     AccountType     `db:"account_type"`
	Debit           decimal.Decimal `db:"debit"`
	Credit          decimal.Decimal `db:"credit"`
	TransactionDate time.Time       `db:"transaction_date"`
}
