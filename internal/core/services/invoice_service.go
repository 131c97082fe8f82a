package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	accountSvc  portssvc.AccountReaderSvc
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceOrganizationAuthorizer sets the organization authorizer for the invoice service.
func WithInvoiceOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// NewInvoiceService creates a new invoice service with the provided dependencies
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, accountSvc portssvc.AccountReaderSvc, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo: invoiceRepo,
		accountSvc:  accountSvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// ListInvoices retrieves invoices of one stored type. Asking for PAYROLL lists the PURCHASE tab.
func (s *invoiceService) ListInvoices(ctx context.Context, organizationID, userID string, invoiceType domain.InvoiceType) ([]domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	stored := invoiceType.StoredType()
	if stored != domain.InvoiceSale && stored != domain.InvoicePurchase {
		return nil, apperrors.NewValidationError("", "type", "unknown invoice type "+string(invoiceType))
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, organizationID, stored)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices",
			slog.String("organization_id", organizationID),
			slog.String("type", string(stored)))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, nil
}

// CreateInvoice issues a sale invoice, purchase bill or payroll slip in the sent state.
func (s *invoiceService) CreateInvoice(ctx context.Context, organizationID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	switch req.Type {
	case domain.InvoiceSale, domain.InvoicePurchase, domain.InvoicePayroll:
	default:
		return nil, apperrors.NewValidationError("", "type", "unknown invoice type "+string(req.Type))
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("", "amount", "must be positive")
	}
	if strings.TrimSpace(req.ContactID) == "" {
		return nil, apperrors.NewValidationError("", "contactID", "is required")
	}
	if req.Date.IsZero() {
		return nil, apperrors.NewValidationError("", "date", "is required")
	}

	now := time.Now().UTC()
	invoiceID := uuid.NewString()
	y, m, d := req.Date.Date()
	invoice := domain.Invoice{
		InvoiceID:      invoiceID,
		OrganizationID: organizationID,
		ContactID:      req.ContactID,
		InvoiceNumber:  documentNumber(req.Type, invoiceID),
		Date:           time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Type:           req.Type.StoredType(),
		Status:         domain.InvoiceSent,
		TotalAmount:    req.Amount,
		Items: []domain.InvoiceItem{{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: req.Description,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   req.Amount,
			Amount:      req.Amount,
		}},
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice",
			slog.String("organization_id", organizationID),
			slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("organization_id", organizationID),
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("type", string(invoice.Type)))
	return &invoice, nil
}

// PayInvoice records the full payment of an open invoice against a cash account and marks it paid.
func (s *invoiceService) PayInvoice(ctx context.Context, organizationID, invoiceID string, req dto.PayInvoiceRequest, userID string) (*domain.Payment, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, organizationID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice",
				slog.String("organization_id", organizationID),
				slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	if invoice.IsPaid() {
		return nil, apperrors.NewValidationError(invoice.InvoiceNumber, "status", "invoice is already paid")
	}
	if req.PaymentDate.IsZero() {
		return nil, apperrors.NewValidationError("", "paymentDate", "is required")
	}

	account, err := s.accountSvc.GetCashAccount(ctx, organizationID, req.AccountID)
	if err != nil {
		return nil, err
	}

	direction := domain.PaymentOut
	if invoice.Type == domain.InvoiceSale {
		direction = domain.PaymentIn
	}
	reference := req.Reference
	if reference == "" {
		reference = invoice.InvoiceNumber
	}

	y, m, d := req.PaymentDate.Date()
	payment := domain.Payment{
		PaymentID:      uuid.NewString(),
		OrganizationID: organizationID,
		InvoiceID:      invoice.InvoiceID,
		ContactID:      invoice.ContactID,
		PaymentDate:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Amount:         invoice.TotalAmount,
		Direction:      direction,
		AccountID:      account.AccountID,
		Reference:      reference,
		Notes:          req.Notes,
		AuditFields:    domain.NewAuditFields(userID, time.Now().UTC()),
	}

	if err := s.invoiceRepo.SettleInvoice(ctx, payment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError(invoice.InvoiceNumber, "status", "invoice is already paid")
		}
		s.LogError(ctx, err, "Failed to settle invoice",
			slog.String("organization_id", organizationID),
			slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to settle invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice paid",
		slog.String("organization_id", organizationID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("direction", string(direction)),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

// DeleteInvoice removes an invoice and the journal entries referencing its number.
func (s *invoiceService) DeleteInvoice(ctx context.Context, organizationID, invoiceID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, organizationID, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice",
				slog.String("organization_id", organizationID),
				slog.String("invoice_id", invoiceID))
		}
		return err
	}

	s.LogInfo(ctx, "Invoice deleted",
		slog.String("organization_id", organizationID),
		slog.String("invoice_id", invoiceID),
		slog.String("user_id", userID))
	return nil
}

// documentNumber builds e.g. "INV-1F3A9C2E" from the document kind and its id.
func documentNumber(kind domain.InvoiceType, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return kind.NumberPrefix() + suffix
}
