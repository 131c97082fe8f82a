package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_saas_app/internal/models"
	"github.com/SscSPs/ledger_saas_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// LoadLedger reads the ledger of an organization inside a single read-only snapshot.
func (r *reportingRepository) LoadLedger(ctx context.Context, organizationID string, withOpenInvoices bool) (*portsrepo.LedgerData, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lines, err := r.loadLines(ctx, tx, organizationID)
	if err != nil {
		return nil, err
	}

	data := &portsrepo.LedgerData{Lines: lines, OpenInvoices: []domain.Invoice{}}
	if withOpenInvoices {
		if data.OpenInvoices, err = r.loadOpenInvoices(ctx, tx, organizationID); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *reportingRepository) loadLines(ctx context.Context, tx pgx.Tx, organizationID string) ([]domain.JournalLine, error) {
	query := lineSelect + `
		WHERE l.organization_id = $1
		ORDER BY e.transaction_date, e.created_at, l.line_id;
	`
	rows, err := tx.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("error querying journal lines: %w", err)
	}
	defer rows.Close()

	var result []models.JournalLine
	for rows.Next() {
		m, err := scanJournalLine(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning journal line: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal lines: %w", err)
	}
	return mapping.ToDomainJournalLineSlice(result), nil
}

func (r *reportingRepository) loadOpenInvoices(ctx context.Context, tx pgx.Tx, organizationID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE organization_id = $1 AND status <> 'paid'
		ORDER BY date, invoice_number;
	`
	rows, err := tx.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("error querying open invoices: %w", err)
	}
	defer rows.Close()

	result := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning open invoice: %w", err)
		}
		result = append(result, mapping.ToDomainInvoice(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating open invoices: %w", err)
	}
	return result, nil
}
