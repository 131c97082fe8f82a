package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_saas_app/internal/models"
	"github.com/SscSPs/ledger_saas_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	invoiceColumns = `invoice_id, organization_id, contact_id, invoice_number, date, type, status, total_amount,
		created_at, created_by, last_updated_at, last_updated_by`

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices, their items and payments.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.OrganizationID,
		&m.ContactID,
		&m.InvoiceNumber,
		&m.Date,
		&m.Type,
		&m.Status,
		&m.TotalAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// FindInvoiceByID retrieves an invoice of an organization together with its items.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE organization_id = $1 AND invoice_id = $2;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, organizationID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invoice not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice "+invoiceID, err)
	}

	itemsQuery := `
		SELECT item_id, invoice_id, description, quantity, unit_price, amount
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY item_id;
	`
	rows, err := r.Pool.Query(ctx, itemsQuery, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items of invoice "+invoiceID, err)
	}
	defer rows.Close()

	var items []models.InvoiceItem
	for rows.Next() {
		var it models.InvoiceItem
		if err := rows.Scan(&it.ItemID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice item rows", err)
	}

	inv := mapping.ToDomainInvoice(m, items)
	return &inv, nil
}

// ListInvoices retrieves invoices of one stored type, newest first. Items are not loaded.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, organizationID string, invoiceType domain.InvoiceType) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE organization_id = $1 AND type = $2
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, string(invoiceType))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return invoices, nil
}

// SaveInvoice inserts an invoice and its items in one transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (
			invoice_id, organization_id, contact_id, invoice_number, date, type, status, total_amount,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.InvoiceID,
		m.OrganizationID,
		m.ContactID,
		m.InvoiceNumber,
		m.Date,
		m.Type,
		m.Status,
		m.TotalAmount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.ErrDuplicate
		case pgForeignKeyViolation:
			return apperrors.NewValidationError(m.InvoiceID, "contactID", "contact "+m.ContactID+" does not exist")
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO invoice_items (item_id, invoice_id, description, quantity, unit_price, amount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range invoice.Items {
		mi := mapping.ToModelInvoiceItem(item)
		batch.Queue(itemQuery, mi.ItemID, m.InvoiceID, mi.Description, mi.Quantity, mi.UnitPrice, mi.Amount)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert items of invoice "+m.InvoiceID, err)
	}

	return r.Commit(ctx, tx)
}

// SettleInvoice marks the invoice paid and records the payment in one transaction.
func (r *PgxInvoiceRepository) SettleInvoice(ctx context.Context, payment domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPayment(payment)
	tag, err := tx.Exec(ctx, `
		UPDATE invoices
		SET status = 'paid', last_updated_at = $3, last_updated_by = $4
		WHERE organization_id = $1 AND invoice_id = $2 AND status <> 'paid';
	`, m.OrganizationID, m.InvoiceID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark invoice "+m.InvoiceID+" paid", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM invoices WHERE organization_id = $1 AND invoice_id = $2);`,
			m.OrganizationID, m.InvoiceID,
		).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check invoice "+m.InvoiceID, err)
		}
		if !exists {
			return apperrors.NewNotFoundError("invoice not found")
		}
		return apperrors.ErrDuplicate
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO payments (
			payment_id, organization_id, invoice_id, contact_id, payment_date, amount, direction,
			account_id, reference, notes, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`,
		m.PaymentID,
		m.OrganizationID,
		m.InvoiceID,
		m.ContactID,
		m.PaymentDate,
		m.Amount,
		m.Direction,
		m.AccountID,
		m.Reference,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert payment for invoice "+m.InvoiceID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteInvoice removes an invoice, its items and payments, and the journal entries referencing its number.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, organizationID, invoiceID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var number string
	err = tx.QueryRow(ctx,
		`SELECT invoice_number FROM invoices WHERE organization_id = $1 AND invoice_id = $2 FOR UPDATE;`,
		organizationID, invoiceID,
	).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("invoice not found")
		}
		return apperrors.NewAppError(500, "failed to find invoice "+invoiceID, err)
	}

	batch := &pgx.Batch{}
	// Lines go with their entries through ON DELETE CASCADE.
	batch.Queue(`DELETE FROM journal_entries WHERE organization_id = $1 AND reference = $2;`, organizationID, number)
	batch.Queue(`DELETE FROM payments WHERE invoice_id = $1;`, invoiceID)
	batch.Queue(`DELETE FROM invoice_items WHERE invoice_id = $1;`, invoiceID)
	batch.Queue(`DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice "+invoiceID, err)
	}

	return r.Commit(ctx, tx)
}
