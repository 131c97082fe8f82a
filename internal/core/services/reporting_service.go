package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	cashKeywords  []string
	now           func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingOrganizationAuthorizer sets the organization authorizer for the reporting service.
func WithReportingOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// WithReportingCashKeywords overrides the account-name keywords used for the dashboard cash balance.
func WithReportingCashKeywords(keywords ...string) ReportingServiceOption {
	return func(s *reportingService) {
		s.cashKeywords = keywords
	}
}

// WithReportingClock sets the clock used to stamp generated reports.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		cashKeywords:  accounting.DefaultCashKeywords,
		now:           time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// loadSnapshot performs the single ledger read a report is derived from.
func (s *reportingService) loadSnapshot(ctx context.Context, organizationID string, withOpenInvoices bool) (*accounting.Snapshot, []domain.Invoice, error) {
	data, err := s.reportingRepo.LoadLedger(ctx, organizationID, withOpenInvoices)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger",
			slog.String("organization_id", organizationID))
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	snapshot, err := accounting.NewSnapshot(organizationID, data.Lines)
	if err != nil {
		// Stored lines are written through the same validation, so this is corrupt data, not bad input.
		s.LogError(ctx, err, "Stored ledger failed validation",
			slog.String("organization_id", organizationID),
			slog.Int("line_count", len(data.Lines)))
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "stored ledger failed validation", err)
	}
	return snapshot, data.OpenInvoices, nil
}

func (s *reportingService) checkPeriod(period domain.Period) error {
	if _, err := domain.NewPeriod(period.Month, period.Year); err != nil {
		return apperrors.NewValidationError("", "period", err.Error())
	}
	return nil
}

// Dashboard derives cash balance, outstanding invoices, trend and expense composition from one read.
func (s *reportingService) Dashboard(ctx context.Context, organizationID, userID string) (*domain.Dashboard, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view dashboard",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	snapshot, openInvoices, err := s.loadSnapshot(ctx, organizationID, true)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		CashBalance:        snapshot.CashBalance(s.cashKeywords...),
		Outstanding:        accounting.ComputeOutstanding(openInvoices),
		Trend:              snapshot.Trend(),
		ExpenseComposition: snapshot.ExpenseComposition(),
		GeneratedAt:        s.now().UTC(),
	}

	s.LogInfo(ctx, "Dashboard generated successfully",
		slog.String("organization_id", organizationID),
		slog.Int("line_count", snapshot.Len()),
		slog.Int("open_invoices", len(openInvoices)))
	return dashboard, nil
}

// ProfitAndLoss generates the income statement of one month
func (s *reportingService) ProfitAndLoss(ctx context.Context, organizationID string, period domain.Period, userID string) (*domain.ProfitAndLoss, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view profit and loss report",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if err := s.checkPeriod(period); err != nil {
		return nil, err
	}

	snapshot, _, err := s.loadSnapshot(ctx, organizationID, false)
	if err != nil {
		return nil, err
	}

	report := snapshot.ProfitAndLoss(period)

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("organization_id", organizationID),
		slog.String("period", period.Key()),
		slog.Int("income_accounts", len(report.IncomeByAccount)),
		slog.Int("expense_accounts", len(report.ExpenseByAccount)))
	return &report, nil
}

// BalanceSheet generates the cumulative balance sheet at the end of a month.
// A sheet that does not balance is still returned; the drift is logged as a warning.
func (s *reportingService) BalanceSheet(ctx context.Context, organizationID string, period domain.Period, userID string) (*domain.BalanceSheet, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view balance sheet report",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if err := s.checkPeriod(period); err != nil {
		return nil, err
	}

	snapshot, _, err := s.loadSnapshot(ctx, organizationID, false)
	if err != nil {
		return nil, err
	}

	report := snapshot.BalanceSheet(period)
	if err := accounting.CheckBalanceSheet(report); err != nil {
		var warning *apperrors.IntegrityWarning
		if errors.As(err, &warning) {
			s.LogWarn(ctx, "Balance sheet does not balance",
				slog.String("organization_id", organizationID),
				slog.String("period", period.Key()),
				slog.String("expected", warning.Expected.String()),
				slog.String("actual", warning.Actual.String()),
				slog.String("difference", warning.Difference.String()))
		}
	}

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("organization_id", organizationID),
		slog.String("period", period.Key()),
		slog.Int("asset_accounts", len(report.AssetByAccount)),
		slog.Int("liability_accounts", len(report.LiabilityByAccount)),
		slog.Int("equity_accounts", len(report.EquityByAccount)))
	return &report, nil
}

// TrialBalance generates per-account totals at the end of a month
func (s *reportingService) TrialBalance(ctx context.Context, organizationID string, period domain.Period, userID string) (*domain.TrialBalance, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view trial balance report",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if err := s.checkPeriod(period); err != nil {
		return nil, err
	}

	snapshot, _, err := s.loadSnapshot(ctx, organizationID, false)
	if err != nil {
		return nil, err
	}

	report := snapshot.TrialBalance(period)
	if !report.IsBalanced() {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("organization_id", organizationID),
			slog.String("period", period.Key()),
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("organization_id", organizationID),
		slog.String("period", period.Key()),
		slog.Int("row_count", len(report.Rows)))
	return &report, nil
}
