package repositories

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoices, bills and payroll slips.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice and its items.
	FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices of the stored type, newest first.
	ListInvoices(ctx context.Context, organizationID string, invoiceType domain.InvoiceType) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// SaveInvoice persists an invoice together with its items.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// SettleInvoice records the payment and marks the invoice paid in one transaction.
	// An invoice that is already paid yields apperrors.ErrDuplicate.
	SettleInvoice(ctx context.Context, payment domain.Payment) error

	// DeleteInvoice removes the invoice with its items and payments, and the journal entries whose reference is the invoice number.
	DeleteInvoice(ctx context.Context, organizationID, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
