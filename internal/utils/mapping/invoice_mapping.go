package mapping

import (
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/SscSPs/ledger_saas_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice. Items are mapped separately.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		OrganizationID: d.OrganizationID,
		ContactID:      d.ContactID,
		InvoiceNumber:  d.InvoiceNumber,
		Date:           d.Date,
		Type:           string(d.Type.StoredType()),
		Status:         string(d.Status),
		TotalAmount:    d.TotalAmount,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice and its items to a domain Invoice
func ToDomainInvoice(m models.Invoice, items []models.InvoiceItem) domain.Invoice {
	inv := domain.Invoice{
		InvoiceID:      m.InvoiceID,
		OrganizationID: m.OrganizationID,
		ContactID:      m.ContactID,
		InvoiceNumber:  m.InvoiceNumber,
		Date:           m.Date,
		Type:           domain.InvoiceType(m.Type),
		Status:         domain.InvoiceStatus(m.Status),
		TotalAmount:    m.TotalAmount,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	for _, it := range items {
		inv.Items = append(inv.Items, ToDomainInvoiceItem(it))
	}
	return inv
}

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ItemID:      d.ItemID,
		InvoiceID:   d.InvoiceID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Amount:      d.Amount,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ItemID:      m.ItemID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Amount:      m.Amount,
	}
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		OrganizationID: d.OrganizationID,
		InvoiceID:      d.InvoiceID,
		ContactID:      d.ContactID,
		PaymentDate:    d.PaymentDate,
		Amount:         d.Amount,
		Direction:      string(d.Direction),
		AccountID:      d.AccountID,
		Reference:      d.Reference,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}
