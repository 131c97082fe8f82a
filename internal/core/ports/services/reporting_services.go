package services

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// Dashboard derives cash balance, outstanding invoices, trend and expense composition from one read.
	Dashboard(ctx context.Context, organizationID, userID string) (*domain.Dashboard, error)

	// ProfitAndLoss generates the income statement of one month
	ProfitAndLoss(ctx context.Context, organizationID string, period domain.Period, userID string) (*domain.ProfitAndLoss, error)

	// BalanceSheet generates the cumulative balance sheet at the end of a month
	BalanceSheet(ctx context.Context, organizationID string, period domain.Period, userID string) (*domain.BalanceSheet, error)

	// TrialBalance generates per-account totals at the end of a month
	TrialBalance(ctx context.Context, organizationID string, period domain.Period, userID string) (*domain.TrialBalance, error)
}
