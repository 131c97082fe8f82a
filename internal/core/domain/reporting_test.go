package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPeriod(t *testing.T) {
	tests := []struct {
		name    string
		month   int
		year    int
		wantErr bool
	}{
		{name: "valid", month: 3, year: 2025},
		{name: "december", month: 12, year: 2024},
		{name: "month zero", month: 0, year: 2025, wantErr: true},
		{name: "month thirteen", month: 13, year: 2025, wantErr: true},
		{name: "year zero", month: 1, year: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.NewPeriod(tt.month, tt.year)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.month, p.Month)
			assert.Equal(t, tt.year, p.Year)
		})
	}
}

func TestPeriod_Bounds(t *testing.T) {
	p := domain.Period{Month: 2, Year: 2024}

	assert.Equal(t, date(2024, time.February, 1), p.Start())
	assert.Equal(t, date(2024, time.February, 29), p.End())
	assert.Equal(t, "2024-02", p.Key())
	assert.Equal(t, "Feb 2024", p.Label())
}

func TestPeriod_ContainsAndCutoff(t *testing.T) {
	p := domain.Period{Month: 3, Year: 2025}

	tests := []struct {
		name         string
		at           time.Time
		wantContains bool
		wantCutoff   bool
	}{
		{name: "inside month", at: date(2025, time.March, 10), wantContains: true, wantCutoff: true},
		{name: "earlier month same year", at: date(2025, time.January, 31), wantContains: false, wantCutoff: true},
		{name: "later month same year", at: date(2025, time.April, 1), wantContains: false, wantCutoff: false},
		{name: "later month earlier year", at: date(2024, time.November, 5), wantContains: false, wantCutoff: true},
		{name: "earlier month later year", at: date(2026, time.January, 5), wantContains: false, wantCutoff: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantContains, p.Contains(tt.at))
			assert.Equal(t, tt.wantCutoff, p.AtOrBeforeEnd(tt.at))
		})
	}
}

func TestPeriod_UsesUTCMonth(t *testing.T) {
	newYork := time.FixedZone("EST", -5*60*60)
	firstOfMarch := date(2025, time.March, 1).In(newYork)
	p := domain.Period{Month: 3, Year: 2025}

	assert.Equal(t, p, domain.PeriodOf(firstOfMarch))
	assert.True(t, p.Contains(firstOfMarch))
	assert.True(t, p.AtOrBeforeEnd(firstOfMarch))
	assert.False(t, domain.Period{Month: 2, Year: 2025}.AtOrBeforeEnd(firstOfMarch))
}

func TestPeriod_Before(t *testing.T) {
	assert.True(t, domain.Period{Month: 12, Year: 2024}.Before(domain.Period{Month: 1, Year: 2025}))
	assert.True(t, domain.Period{Month: 1, Year: 2025}.Before(domain.Period{Month: 2, Year: 2025}))
	assert.False(t, domain.Period{Month: 2, Year: 2025}.Before(domain.Period{Month: 2, Year: 2025}))
}

func TestBalanceSheet_IsBalanced(t *testing.T) {
	bs := domain.BalanceSheet{
		TotalAsset:     decimal.NewFromInt(1500),
		TotalLiability: decimal.NewFromInt(500),
		TotalEquity:    decimal.NewFromInt(1000),
	}
	assert.True(t, bs.IsBalanced())
	assert.True(t, bs.Difference().IsZero())

	bs.TotalEquity = decimal.NewFromInt(900)
	assert.False(t, bs.IsBalanced())
	assert.Equal(t, "100", bs.Difference().String())
}

func TestMemberRole_Satisfies(t *testing.T) {
	assert.True(t, domain.RoleOwner.Satisfies(domain.RoleAdmin))
	assert.True(t, domain.RoleAdmin.Satisfies(domain.RoleMember))
	assert.True(t, domain.RoleMember.Satisfies(domain.RoleReadOnly))
	assert.False(t, domain.RoleReadOnly.Satisfies(domain.RoleMember))
	assert.False(t, domain.MemberRole("removed").Satisfies(domain.RoleReadOnly))
}

func TestLedgerFilter_Matches(t *testing.T) {
	entry := domain.JournalEntry{
		Lines: []domain.JournalLine{
			{AccountType: domain.Asset},
			{AccountType: domain.Equity},
		},
	}

	assert.True(t, domain.LedgerFilterAll.Matches(entry))
	assert.True(t, domain.LedgerFilterEquity.Matches(entry))
	assert.False(t, domain.LedgerFilterIncome.Matches(entry))
	assert.False(t, domain.LedgerFilterExpense.Matches(entry))
}

func TestInvoiceType_StoredTypeAndPrefix(t *testing.T) {
	assert.Equal(t, domain.InvoicePurchase, domain.InvoicePayroll.StoredType())
	assert.Equal(t, domain.InvoiceSale, domain.InvoiceSale.StoredType())
	assert.Equal(t, "PAY-", domain.InvoicePayroll.NumberPrefix())
	assert.Equal(t, "INV-", domain.InvoiceSale.NumberPrefix())
	assert.Equal(t, "BILL-", domain.InvoicePurchase.NumberPrefix())
}

func TestJournalEntry_SamePosting(t *testing.T) {
	at := date(2025, time.March, 14)
	base := func() domain.JournalEntry {
		return domain.JournalEntry{
			EntryID:         "e1",
			OrganizationID:  "org-1",
			TransactionDate: at,
			Reference:       "INV-0001",
			Description:     "Consulting fee",
			Lines: []domain.JournalLine{
				{LineID: "a", AccountID: "bank", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
				{LineID: "b", AccountID: "sales", Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*domain.JournalEntry)
		want   bool
	}{
		{name: "identical", mutate: func(*domain.JournalEntry) {}, want: true},
		{name: "lines reordered with new ids", mutate: func(e *domain.JournalEntry) {
			e.Lines = []domain.JournalLine{
				{LineID: "y", AccountID: "sales", Debit: decimal.Zero, Credit: decimal.RequireFromString("100.00")},
				{LineID: "z", AccountID: "bank", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
			}
		}, want: true},
		{name: "same day in another zone", mutate: func(e *domain.JournalEntry) {
			e.TransactionDate = at.In(time.FixedZone("EST", -5*60*60))
		}, want: true},
		{name: "other organization", mutate: func(e *domain.JournalEntry) { e.OrganizationID = "org-2" }},
		{name: "other amount", mutate: func(e *domain.JournalEntry) {
			e.Lines[0].Debit = decimal.NewFromInt(90)
			e.Lines[1].Credit = decimal.NewFromInt(90)
		}},
		{name: "other account", mutate: func(e *domain.JournalEntry) { e.Lines[0].AccountID = "kas" }},
		{name: "extra line", mutate: func(e *domain.JournalEntry) {
			e.Lines = append(e.Lines, domain.JournalLine{AccountID: "bank", Debit: decimal.Zero, Credit: decimal.Zero})
		}},
		{name: "other reference", mutate: func(e *domain.JournalEntry) { e.Reference = "INV-0002" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base()
			tt.mutate(&other)
			assert.Equal(t, tt.want, base().SamePosting(other))
		})
	}
}
