package accounting

import (
	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RetainedEarningsKey is the synthetic equity row that carries cumulative net income.
const RetainedEarningsKey = "3999 - Retained Earnings"

func addTo(m map[string]decimal.Decimal, key string, v decimal.Decimal) {
	current, ok := m[key]
	if !ok {
		current = decimal.Zero
	}
	m[key] = current.Add(v)
}

// ComputeProfitAndLoss aggregates income and expense lines dated inside period.
// Maps are keyed "{code} - {name}" and are empty, never nil, when nothing matches.
func ComputeProfitAndLoss(lines []domain.JournalLine, period domain.Period) domain.ProfitAndLoss {
	pl := domain.ProfitAndLoss{
		Period:           period,
		IncomeByAccount:  make(map[string]decimal.Decimal),
		ExpenseByAccount: make(map[string]decimal.Decimal),
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
	}

	for _, l := range lines {
		if !period.Contains(l.TransactionDate) {
			continue
		}
		switch l.AccountType {
		case domain.Income:
			v := signed(l)
			addTo(pl.IncomeByAccount, l.AccountLabel(), v)
			pl.TotalIncome = pl.TotalIncome.Add(v)
		case domain.Expense:
			v := signed(l)
			addTo(pl.ExpenseByAccount, l.AccountLabel(), v)
			pl.TotalExpense = pl.TotalExpense.Add(v)
		}
	}

	pl.NetProfit = pl.TotalIncome.Sub(pl.TotalExpense)
	return pl
}

// ComputeBalanceSheet aggregates every line dated at or before the end of period. Income and
// expense lines are folded into retained earnings, which is added to equity under RetainedEarningsKey
// whenever at least one income or expense line falls before the cutoff.
func ComputeBalanceSheet(lines []domain.JournalLine, period domain.Period) domain.BalanceSheet {
	bs := domain.BalanceSheet{
		Period:             period,
		AssetByAccount:     make(map[string]decimal.Decimal),
		LiabilityByAccount: make(map[string]decimal.Decimal),
		EquityByAccount:    make(map[string]decimal.Decimal),
		RetainedEarnings:   decimal.Zero,
		TotalAsset:         decimal.Zero,
		TotalLiability:     decimal.Zero,
		TotalEquity:        decimal.Zero,
	}

	hasEarnings := false
	for _, l := range lines {
		if !period.AtOrBeforeEnd(l.TransactionDate) {
			continue
		}
		v := signed(l)
		switch l.AccountType {
		case domain.Asset:
			addTo(bs.AssetByAccount, l.AccountLabel(), v)
			bs.TotalAsset = bs.TotalAsset.Add(v)
		case domain.Liability:
			addTo(bs.LiabilityByAccount, l.AccountLabel(), v)
			bs.TotalLiability = bs.TotalLiability.Add(v)
		case domain.Equity:
			addTo(bs.EquityByAccount, l.AccountLabel(), v)
			bs.TotalEquity = bs.TotalEquity.Add(v)
		case domain.Income:
			bs.RetainedEarnings = bs.RetainedEarnings.Add(v)
			hasEarnings = true
		case domain.Expense:
			bs.RetainedEarnings = bs.RetainedEarnings.Sub(v)
			hasEarnings = true
		}
	}

	if hasEarnings {
		addTo(bs.EquityByAccount, RetainedEarningsKey, bs.RetainedEarnings)
		bs.TotalEquity = bs.TotalEquity.Add(bs.RetainedEarnings)
	}
	return bs
}

// CheckBalanceSheet returns an *apperrors.IntegrityWarning when assets differ from liabilities plus equity.
func CheckBalanceSheet(bs domain.BalanceSheet) error {
	if bs.IsBalanced() {
		return nil
	}
	return &apperrors.IntegrityWarning{
		Check:      "balance sheet " + bs.Period.Key(),
		Expected:   bs.TotalLiability.Add(bs.TotalEquity),
		Actual:     bs.TotalAsset,
		Difference: bs.Difference(),
	}
}

// ComputeTrialBalance lists account totals for every line dated at or before the end of period.
func ComputeTrialBalance(lines []domain.JournalLine, period domain.Period) domain.TrialBalance {
	upTo := make([]domain.JournalLine, 0, len(lines))
	for _, l := range lines {
		if period.AtOrBeforeEnd(l.TransactionDate) {
			upTo = append(upTo, l)
		}
	}

	tb := domain.TrialBalance{
		Period:      period,
		Rows:        ComputeAccountBalances(upTo),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, r := range tb.Rows {
		tb.TotalDebit = tb.TotalDebit.Add(r.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(r.Credit)
	}
	return tb
}
