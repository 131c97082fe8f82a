package services

import (
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Organization service first since every other service authorizes through it
	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	authorizer := container.Organization.(portssvc.OrganizationAuthorizerSvc)

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithAccountOrganizationAuthorizer(authorizer),
		WithAccountCashKeywords(cfg.CashAccountKeywords...),
	)

	container.Journal = NewJournalService(
		repos.JournalRepo,
		repos.AccountRepo,
		container.Account,
		WithJournalOrganizationAuthorizer(authorizer),
		WithCapitalAccountCode(cfg.CapitalAccountCode),
	)

	container.Invoice = NewInvoiceService(
		repos.InvoiceRepo,
		container.Account,
		WithInvoiceOrganizationAuthorizer(authorizer),
	)

	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		WithReportingOrganizationAuthorizer(authorizer),
		WithReportingCashKeywords(cfg.CashAccountKeywords...),
	)

	return container
}
