package accounting

import (
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Snapshot is a validated, tenant-scoped copy of a journal line set. Derived figures shown
// together (dashboard cash, trend, composition) must all be computed from the same Snapshot.
// A Snapshot is never mutated after construction and is safe for concurrent use.
type Snapshot struct {
	organizationID string
	lines          []domain.JournalLine
}

// NewSnapshot validates lines with ValidateLines and copies them.
func NewSnapshot(organizationID string, lines []domain.JournalLine) (*Snapshot, error) {
	if err := ValidateLines(organizationID, lines); err != nil {
		return nil, err
	}
	cp := make([]domain.JournalLine, len(lines))
	copy(cp, lines)
	return &Snapshot{organizationID: organizationID, lines: cp}, nil
}

// OrganizationID returns the tenant the snapshot is scoped to.
func (s *Snapshot) OrganizationID() string { return s.organizationID }

// Len returns the number of lines in the snapshot.
func (s *Snapshot) Len() int { return len(s.lines) }

// CashBalance returns ComputeCashBalance over the snapshot lines.
func (s *Snapshot) CashBalance(keywords ...string) decimal.Decimal {
	return ComputeCashBalance(s.lines, keywords...)
}

// Trend returns the monthly income/expense buckets.
func (s *Snapshot) Trend() []domain.TrendPoint {
	return ComputeTrend(s.lines)
}

// ExpenseComposition returns the positive expense totals per account name.
func (s *Snapshot) ExpenseComposition() []domain.ExpenseShare {
	return ComputeExpenseComposition(s.lines)
}

// AccountBalances returns the signed balance of every account, all dates included.
func (s *Snapshot) AccountBalances() []domain.AccountBalance {
	return ComputeAccountBalances(s.lines)
}

// ProfitAndLoss restricts the lines to p's month.
func (s *Snapshot) ProfitAndLoss(p domain.Period) domain.ProfitAndLoss {
	return ComputeProfitAndLoss(s.lines, p)
}

// BalanceSheet is cumulative up to the end of p's month.
func (s *Snapshot) BalanceSheet(p domain.Period) domain.BalanceSheet {
	return ComputeBalanceSheet(s.lines, p)
}

// TrialBalance is cumulative up to the end of p's month.
func (s *Snapshot) TrialBalance(p domain.Period) domain.TrialBalance {
	return ComputeTrialBalance(s.lines, p)
}
