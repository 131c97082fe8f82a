package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period selects one calendar month. Month is 1-12.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewPeriod validates month and year.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 {
		return Period{}, fmt.Errorf("year must be positive, got %d", year)
	}
	return Period{Month: month, Year: year}, nil
}

// PeriodOf returns the period containing t. Months are calendar months in UTC, the zone
// transaction dates are recorded in.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// Contains reports whether t falls inside the period's month.
func (p Period) Contains(t time.Time) bool {
	return PeriodOf(t) == p
}

// AtOrBeforeEnd reports whether t is at or before the end of the period's month.
// Any earlier year qualifies regardless of month.
func (p Period) AtOrBeforeEnd(t time.Time) bool {
	return !p.Before(PeriodOf(t))
}

// Start returns the first instant of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the period in UTC.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Key returns the sortable "YYYY-MM" form.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Label returns the short display form, e.g. "Mar 2025".
func (p Period) Label() string {
	return p.Start().Format("Jan 2006")
}

// Before reports whether p is an earlier month than o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// AccountBalance is the derived position of one account. It is recomputed on every query.
type AccountBalance struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // signed per account type
}

// Outstanding holds unpaid invoice totals.
type Outstanding struct {
	Payable    decimal.Decimal `json:"payable"`
	Receivable decimal.Decimal `json:"receivable"`
}

// TrendPoint is one monthly bucket of the income/expense series.
type TrendPoint struct {
	Bucket  string          `json:"bucket"` // "YYYY-MM"; empty for the placeholder point
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ExpenseShare is one slice of the expense composition.
type ExpenseShare struct {
	AccountName string          `json:"accountName"`
	Value       decimal.Decimal `json:"value"`
}

// ProfitAndLoss is the flow statement of a single month.
type ProfitAndLoss struct {
	Period           Period                     `json:"period"`
	IncomeByAccount  map[string]decimal.Decimal `json:"incomeByAccount"`
	ExpenseByAccount map[string]decimal.Decimal `json:"expenseByAccount"`
	TotalIncome      decimal.Decimal            `json:"totalIncome"`
	TotalExpense     decimal.Decimal            `json:"totalExpense"`
	NetProfit        decimal.Decimal            `json:"netProfit"`
}

// BalanceSheet is the stock statement cumulative to the end of a month.
// EquityByAccount already includes RetainedEarnings under a synthetic key.
type BalanceSheet struct {
	Period             Period                     `json:"period"`
	AssetByAccount     map[string]decimal.Decimal `json:"assetByAccount"`
	LiabilityByAccount map[string]decimal.Decimal `json:"liabilityByAccount"`
	EquityByAccount    map[string]decimal.Decimal `json:"equityByAccount"`
	RetainedEarnings   decimal.Decimal            `json:"retainedEarnings"`
	TotalAsset         decimal.Decimal            `json:"totalAsset"`
	TotalLiability     decimal.Decimal            `json:"totalLiability"`
	TotalEquity        decimal.Decimal            `json:"totalEquity"`
}

// Difference returns totalAsset - (totalLiability + totalEquity).
func (b BalanceSheet) Difference() decimal.Decimal {
	return b.TotalAsset.Sub(b.TotalLiability.Add(b.TotalEquity))
}

// IsBalanced reports whether assets equal liabilities plus equity.
func (b BalanceSheet) IsBalanced() bool {
	return b.Difference().IsZero()
}

// TrialBalance lists every account's debit/credit totals up to the end of a period.
type TrialBalance struct {
	Period      Period           `json:"period"`
	Rows        []AccountBalance `json:"rows"`
	TotalDebit  decimal.Decimal  `json:"totalDebit"`
	TotalCredit decimal.Decimal  `json:"totalCredit"`
}

// IsBalanced reports whether total debits equal total credits.
func (t TrialBalance) IsBalanced() bool {
	return t.TotalDebit.Equal(t.TotalCredit)
}

// Dashboard bundles the figures shown together on the dashboard; all are derived from one read.
type Dashboard struct {
	CashBalance        decimal.Decimal `json:"cashBalance"`
	Outstanding        Outstanding     `json:"outstanding"`
	Trend              []TrendPoint    `json:"trend"`
	ExpenseComposition []ExpenseShare  `json:"expenseComposition"`
	GeneratedAt        time.Time       `json:"generatedAt"`
}
