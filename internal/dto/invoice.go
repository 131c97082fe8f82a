package dto

import (
	"time"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines a sale invoice, purchase bill or payroll slip with a single item.
type CreateInvoiceRequest struct {
	Type        domain.InvoiceType `json:"type" binding:"required,oneof=SALE PURCHASE PAYROLL"`
	ContactID   string             `json:"contactID" binding:"required"`
	Date        time.Time          `json:"date" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Amount      decimal.Decimal    `json:"amount"`
}

// PayInvoiceRequest defines the settlement of an invoice from or into a cash account.
type PayInvoiceRequest struct {
	PaymentDate time.Time `json:"paymentDate" binding:"required"`
	AccountID   string    `json:"accountID" binding:"required"`
	Reference   string    `json:"reference"`
	Notes       string    `json:"notes"`
}

// ListInvoicesParams defines query parameters for listing invoices. PURCHASE includes payroll.
type ListInvoicesParams struct {
	Type domain.InvoiceType `form:"type,default=SALE" binding:"oneof=SALE PURCHASE"`
}

// InvoiceItemResponse defines the data returned for an invoice item.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	ContactID     string                `json:"contactID"`
	Date          time.Time             `json:"date"`
	Type          domain.InvoiceType    `json:"type"`
	Status        domain.InvoiceStatus  `json:"status"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
}

// PaymentResponse defines the data returned for a recorded payment.
type PaymentResponse struct {
	PaymentID   string                  `json:"paymentID"`
	InvoiceID   string                  `json:"invoiceID"`
	PaymentDate time.Time               `json:"paymentDate"`
	Amount      decimal.Decimal         `json:"amount"`
	Direction   domain.PaymentDirection `json:"direction"`
	AccountID   string                  `json:"accountID"`
	Reference   string                  `json:"reference"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	var items []InvoiceItemResponse
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		ContactID:     inv.ContactID,
		Date:          inv.Date,
		Type:          inv.Type,
		Status:        inv.Status,
		TotalAmount:   inv.TotalAmount,
		Items:         items,
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		InvoiceID:   p.InvoiceID,
		PaymentDate: p.PaymentDate,
		Amount:      p.Amount,
		Direction:   p.Direction,
		AccountID:   p.AccountID,
		Reference:   p.Reference,
	}
}
