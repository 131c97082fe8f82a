package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		JournalRepo:      newPgxJournalRepository(dbPool),
		InvoiceRepo:      newPgxInvoiceRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
	}
}
