package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of invoices. Type is SALE or PURCHASE; payroll is stored as PURCHASE.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	OrganizationID string          `db:"organization_id"`
	ContactID      string          `db:"contact_id"`
	InvoiceNumber  string          `db:"invoice_number"`
	Date           time.Time       `db:"date"`
	Type           string          `db:"type"`
	Status         string          `db:"status"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	AuditFields
}

// InvoiceItem is a row of invoice_items.
type InvoiceItem struct {
	ItemID      string          `db:"item_id"`
	InvoiceID   string          `db:"invoice_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Amount      decimal.Decimal `db:"amount"`
}

// Payment is a row of payments.
type Payment struct {
	PaymentID      string          `db:"payment_id"`
	OrganizationID string          `db:"organization_id"`
	InvoiceID      string          `db:"invoice_id"`
	ContactID      string          `db:"contact_id"`
	PaymentDate    time.Time       `db:"payment_date"`
	Amount         decimal.Decimal `db:"amount"`
	Direction      string          `db:"direction"`
	AccountID      string          `db:"account_id"`
	Reference      string          `db:"reference"`
	Notes          string          `db:"notes"`
	AuditFields
}
