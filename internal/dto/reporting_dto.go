package dto

import (
	"time"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodParams selects a report month. Zero values default to the current month.
type PeriodParams struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"omitempty,min=1"`
}

// PeriodResponse identifies the reported month.
type PeriodResponse struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Label string `json:"label"`
}

func toPeriodResponse(p domain.Period) PeriodResponse {
	return PeriodResponse{Month: p.Month, Year: p.Year, Label: p.Label()}
}

// TrendPointResponse is one month of the income/expense trend.
type TrendPointResponse struct {
	Bucket  string          `json:"bucket"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ExpenseShareResponse is one slice of the expense composition.
type ExpenseShareResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DashboardResponse represents the dashboard summary response
type DashboardResponse struct {
	CashBalance        decimal.Decimal        `json:"cashBalance"`
	Payable            decimal.Decimal        `json:"payable"`
	Receivable         decimal.Decimal        `json:"receivable"`
	Trend              []TrendPointResponse   `json:"trend"`
	ExpenseComposition []ExpenseShareResponse `json:"expenseComposition"`
	GeneratedAt        time.Time              `json:"generatedAt"`
}

// ProfitAndLossResponse represents the profit and loss report response.
// Account maps are keyed "{code} - {name}".
type ProfitAndLossResponse struct {
	Period  PeriodResponse             `json:"period"`
	Income  map[string]decimal.Decimal `json:"income"`
	Expense map[string]decimal.Decimal `json:"expense"`
	Summary struct {
		TotalIncome  decimal.Decimal `json:"totalIncome"`
		TotalExpense decimal.Decimal `json:"totalExpense"`
		NetProfit    decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	Period      PeriodResponse             `json:"period"`
	Assets      map[string]decimal.Decimal `json:"assets"`
	Liabilities map[string]decimal.Decimal `json:"liabilities"`
	Equity      map[string]decimal.Decimal `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
		IsBalanced       bool            `json:"isBalanced"`
		Difference       decimal.Decimal `json:"difference"`
	} `json:"summary"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode string             `json:"accountCode"`
	AccountName string             `json:"accountName"`
	AccountType domain.AccountType `json:"accountType"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
	Balance     decimal.Decimal    `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Period PeriodResponse            `json:"period"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit      decimal.Decimal `json:"debit"`
		Credit     decimal.Decimal `json:"credit"`
		IsBalanced bool            `json:"isBalanced"`
	} `json:"totals"`
}

// ToDashboardResponse converts a domain dashboard to a DTO response
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	response := DashboardResponse{
		CashBalance:        d.CashBalance,
		Payable:            d.Outstanding.Payable,
		Receivable:         d.Outstanding.Receivable,
		Trend:              make([]TrendPointResponse, len(d.Trend)),
		ExpenseComposition: make([]ExpenseShareResponse, len(d.ExpenseComposition)),
		GeneratedAt:        d.GeneratedAt,
	}
	for i, p := range d.Trend {
		response.Trend[i] = TrendPointResponse{Bucket: p.Bucket, Label: p.Label, Income: p.Income, Expense: p.Expense}
	}
	for i, s := range d.ExpenseComposition {
		response.ExpenseComposition[i] = ExpenseShareResponse{Name: s.AccountName, Value: s.Value}
	}
	return response
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report *domain.ProfitAndLoss) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		Period:  toPeriodResponse(report.Period),
		Income:  report.IncomeByAccount,
		Expense: report.ExpenseByAccount,
	}
	response.Summary.TotalIncome = report.TotalIncome
	response.Summary.TotalExpense = report.TotalExpense
	response.Summary.NetProfit = report.NetProfit
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheet) BalanceSheetResponse {
	response := BalanceSheetResponse{
		Period:      toPeriodResponse(report.Period),
		Assets:      report.AssetByAccount,
		Liabilities: report.LiabilityByAccount,
		Equity:      report.EquityByAccount,
	}
	response.Summary.TotalAssets = report.TotalAsset
	response.Summary.TotalLiabilities = report.TotalLiability
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.RetainedEarnings = report.RetainedEarnings
	response.Summary.IsBalanced = report.IsBalanced()
	response.Summary.Difference = report.Difference()
	return response
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Period: toPeriodResponse(tb.Period),
		Rows:   make([]TrialBalanceRowResponse, len(tb.Rows)),
	}
	for i, row := range tb.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: row.AccountType,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
	}
	response.Totals.Debit = tb.TotalDebit
	response.Totals.Credit = tb.TotalCredit
	response.Totals.IsBalanced = tb.IsBalanced()
	return response
}
