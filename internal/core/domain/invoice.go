package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType is the stored type of an invoice.
type InvoiceType string

const (
	InvoiceSale     InvoiceType = "SALE"
	InvoicePurchase InvoiceType = "PURCHASE"
	// InvoicePayroll is accepted on creation only; payroll is stored as PURCHASE.
	InvoicePayroll InvoiceType = "PAYROLL"
)

// StoredType returns the type persisted for a document of kind t.
func (t InvoiceType) StoredType() InvoiceType {
	if t == InvoicePayroll {
		return InvoicePurchase
	}
	return t
}

// NumberPrefix returns the document number prefix for kind t.
func (t InvoiceType) NumberPrefix() string {
	switch t {
	case InvoiceSale:
		return "INV-"
	case InvoicePayroll:
		return "PAY-"
	default:
		return "BILL-"
	}
}

// InvoiceStatus tracks the settlement state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

// Invoice is a sale invoice, purchase bill or payroll slip.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	OrganizationID string          `json:"organizationID"`
	ContactID      string          `json:"contactID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	Date           time.Time       `json:"date"`
	Type           InvoiceType     `json:"type"`
	Status         InvoiceStatus   `json:"status"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Items          []InvoiceItem   `json:"items,omitempty"`
	AuditFields
}

// IsPaid reports whether the invoice reached the terminal paid state.
func (i Invoice) IsPaid() bool {
	return i.Status == InvoicePaid
}

// InvoiceItem is a single billed line.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"`
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentDirection is IN for money received and OUT for money paid.
type PaymentDirection string

const (
	PaymentIn  PaymentDirection = "IN"
	PaymentOut PaymentDirection = "OUT"
)

// Payment settles an invoice from or into a cash account.
type Payment struct {
	PaymentID      string           `json:"paymentID"`
	OrganizationID string           `json:"organizationID"`
	InvoiceID      string           `json:"invoiceID"`
	ContactID      string           `json:"contactID"`
	PaymentDate    time.Time        `json:"paymentDate"`
	Amount         decimal.Decimal  `json:"amount"`
	Direction      PaymentDirection `json:"direction"`
	AccountID      string           `json:"accountID"`
	Reference      string           `json:"reference"`
	Notes          string           `json:"notes"`
	AuditFields
}
