package repositories

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
)

// LedgerData is one consistent read of an organization's ledger.
type LedgerData struct {
	Lines        []domain.JournalLine
	OpenInvoices []domain.Invoice
}

// ReportingRepository defines operations for retrieving the inputs of financial reports
type ReportingRepository interface {
	// LoadLedger reads every journal line of the organization. When withOpenInvoices is set the
	// unpaid invoices are read in the same snapshot so that figures derived together agree.
	LoadLedger(ctx context.Context, organizationID string, withOpenInvoices bool) (*LedgerData, error)
}
