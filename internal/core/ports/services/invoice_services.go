package services

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// ListInvoices retrieves invoices of one stored type. PURCHASE includes payroll slips.
	ListInvoices(ctx context.Context, organizationID, userID string, invoiceType domain.InvoiceType) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice issues a sale invoice, purchase bill or payroll slip in the sent state.
	CreateInvoice(ctx context.Context, organizationID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)

	// PayInvoice records the full payment of an open invoice and marks it paid.
	PayInvoice(ctx context.Context, organizationID, invoiceID string, req dto.PayInvoiceRequest, userID string) (*domain.Payment, error)

	// DeleteInvoice removes an invoice and the journal entries referencing its number.
	DeleteInvoice(ctx context.Context, organizationID, invoiceID, userID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
