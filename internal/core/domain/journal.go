package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is one posting to one account. TransactionDate is the date of the owning
// entry, not the insertion date. Lines are immutable once recorded.
type JournalLine struct {
	LineID          string          `json:"lineID"`
	EntryID         string          `json:"entryID" validate:"required"`
	OrganizationID  string          `json:"organizationID" validate:"required"`
	AccountID       string          `json:"accountID"`
	AccountCode     string          `json:"accountCode"`
	AccountName     string          `json:"accountName" validate:"required"`
	AccountType     AccountType     `json:"accountType" validate:"required,oneof=asset liability equity income expense"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	TransactionDate time.Time       `json:"transactionDate" validate:"required"`
}

// AccountLabel returns the "{code} - {name}" key of the account the line posts to.
func (l JournalLine) AccountLabel() string {
	return AccountLabel(l.AccountCode, l.AccountName)
}

// JournalEntry is a balanced financial event made of two or more lines.
type JournalEntry struct {
	EntryID         string        `json:"entryID"`
	OrganizationID  string        `json:"organizationID"`
	TransactionDate time.Time     `json:"transactionDate"`
	Reference       string        `json:"reference"` // e.g. "CAP-4821", "INV-120394"
	Description     string        `json:"description"`
	Lines           []JournalLine `json:"lines"`
	AuditFields
}

// SamePosting reports whether o records the same financial event as e: same organization,
// date, reference and description, and the same account/debit/credit lines in any order.
func (e JournalEntry) SamePosting(o JournalEntry) bool {
	if e.OrganizationID != o.OrganizationID || e.Reference != o.Reference || e.Description != o.Description {
		return false
	}
	ey, em, ed := e.TransactionDate.UTC().Date()
	oy, om, od := o.TransactionDate.UTC().Date()
	if ey != oy || em != om || ed != od || len(e.Lines) != len(o.Lines) {
		return false
	}

	pending := make(map[string]int, len(e.Lines))
	for _, l := range e.Lines {
		pending[l.postingKey()]++
	}
	for _, l := range o.Lines {
		k := l.postingKey()
		if pending[k] == 0 {
			return false
		}
		pending[k]--
	}
	return true
}

func (l JournalLine) postingKey() string {
	return l.AccountID + "|" + l.Debit.String() + "|" + l.Credit.String()
}

// TotalDebit sums the debit side of the entry.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of the entry.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// HasAccountType reports whether any line of the entry posts to an account of type t.
func (e JournalEntry) HasAccountType(t AccountType) bool {
	for _, l := range e.Lines {
		if l.AccountType == t {
			return true
		}
	}
	return false
}

// LedgerFilter narrows the ledger view to entries touching one kind of account.
type LedgerFilter string

const (
	LedgerFilterAll     LedgerFilter = "ALL"
	LedgerFilterIncome  LedgerFilter = "INCOME"
	LedgerFilterExpense LedgerFilter = "EXPENSE"
	LedgerFilterEquity  LedgerFilter = "EQUITY"
)

// AccountType maps a filter to the account type it selects. ALL (and unknown values) select nothing.
func (f LedgerFilter) AccountType() (AccountType, bool) {
	switch f {
	case LedgerFilterIncome:
		return Income, true
	case LedgerFilterExpense:
		return Expense, true
	case LedgerFilterEquity:
		return Equity, true
	}
	return "", false
}

// Matches reports whether the entry should be shown under the filter.
func (f LedgerFilter) Matches(e JournalEntry) bool {
	t, ok := f.AccountType()
	if !ok {
		return true
	}
	return e.HasAccountType(t)
}
