package accounting

import (
	"sort"
	"strings"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultCashKeywords identify cash and bank accounts by name when no structural flag exists.
var DefaultCashKeywords = []string{"kas", "bank"}

// IsCashAccountName reports whether name contains any non-empty keyword, case-insensitively.
func IsCashAccountName(name string, keywords ...string) bool {
	lower := strings.ToLower(name)
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// ComputeCashBalance sums debit - credit over asset lines whose account name matches any of
// the keywords. No keywords or no matching account yields zero.
func ComputeCashBalance(lines []domain.JournalLine, keywords ...string) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.AccountType != domain.Asset || !IsCashAccountName(l.AccountName, keywords...) {
			continue
		}
		total = total.Add(l.Debit.Sub(l.Credit))
	}
	return total
}

// ComputeOutstanding totals unpaid invoices by side. Payroll documents count as PURCHASE.
func ComputeOutstanding(invoices []domain.Invoice) domain.Outstanding {
	out := domain.Outstanding{Payable: decimal.Zero, Receivable: decimal.Zero}
	for _, inv := range invoices {
		if inv.IsPaid() {
			continue
		}
		switch inv.Type.StoredType() {
		case domain.InvoicePurchase:
			out.Payable = out.Payable.Add(inv.TotalAmount)
		case domain.InvoiceSale:
			out.Receivable = out.Receivable.Add(inv.TotalAmount)
		}
	}
	return out
}

// ComputeTrend buckets income and expense by calendar month of the entry date, oldest first.
// Buckets carry the year so that the same month of different years never merges.
// An empty line set yields a single zero placeholder point.
func ComputeTrend(lines []domain.JournalLine) []domain.TrendPoint {
	if len(lines) == 0 {
		return []domain.TrendPoint{{Income: decimal.Zero, Expense: decimal.Zero}}
	}

	buckets := make(map[domain.Period]*domain.TrendPoint)
	for _, l := range lines {
		p := domain.PeriodOf(l.TransactionDate)
		point, ok := buckets[p]
		if !ok {
			point = &domain.TrendPoint{
				Bucket:  p.Key(),
				Label:   p.Label(),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			buckets[p] = point
		}
		switch l.AccountType {
		case domain.Income:
			point.Income = point.Income.Add(l.Credit.Sub(l.Debit))
		case domain.Expense:
			point.Expense = point.Expense.Add(l.Debit.Sub(l.Credit))
		}
	}

	periods := make([]domain.Period, 0, len(buckets))
	for p := range buckets {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	trend := make([]domain.TrendPoint, 0, len(periods))
	for _, p := range periods {
		trend = append(trend, *buckets[p])
	}
	return trend
}

// ComputeExpenseComposition groups expense lines by account name and keeps only positive totals,
// largest first (ties by name).
func ComputeExpenseComposition(lines []domain.JournalLine) []domain.ExpenseShare {
	totals := make(map[string]decimal.Decimal)
	for _, l := range lines {
		if l.AccountType != domain.Expense {
			continue
		}
		current, ok := totals[l.AccountName]
		if !ok {
			current = decimal.Zero
		}
		totals[l.AccountName] = current.Add(l.Debit.Sub(l.Credit))
	}

	shares := make([]domain.ExpenseShare, 0, len(totals))
	for name, v := range totals {
		if !v.IsPositive() {
			continue
		}
		shares = append(shares, domain.ExpenseShare{AccountName: name, Value: v})
	}
	sort.Slice(shares, func(i, j int) bool {
		if c := shares[i].Value.Cmp(shares[j].Value); c != 0 {
			return c > 0
		}
		return shares[i].AccountName < shares[j].AccountName
	})
	return shares
}

// ComputeAccountBalances derives the debit/credit totals and signed balance of every account
// present in lines, ordered by account code then name.
func ComputeAccountBalances(lines []domain.JournalLine) []domain.AccountBalance {
	type key struct {
		t          domain.AccountType
		code, name string
	}
	byAccount := make(map[key]*domain.AccountBalance)
	for _, l := range lines {
		k := key{t: l.AccountType, code: l.AccountCode, name: l.AccountName}
		b, ok := byAccount[k]
		if !ok {
			b = &domain.AccountBalance{
				AccountCode: l.AccountCode,
				AccountName: l.AccountName,
				AccountType: l.AccountType,
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
				Balance:     decimal.Zero,
			}
			byAccount[k] = b
		}
		b.Debit = b.Debit.Add(l.Debit)
		b.Credit = b.Credit.Add(l.Credit)
		b.Balance = b.Balance.Add(signed(l))
	}

	balances := make([]domain.AccountBalance, 0, len(byAccount))
	for _, b := range byAccount {
		balances = append(balances, *b)
	}
	sort.Slice(balances, func(i, j int) bool {
		if balances[i].AccountCode != balances[j].AccountCode {
			return balances[i].AccountCode < balances[j].AccountCode
		}
		if balances[i].AccountName != balances[j].AccountName {
			return balances[i].AccountName < balances[j].AccountName
		}
		return balances[i].AccountType < balances[j].AccountType
	})
	return balances
}
