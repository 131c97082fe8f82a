package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_saas_app/internal/models"
	"github.com/SscSPs/ledger_saas_app/internal/utils/mapping"
	"github.com/SscSPs/ledger_saas_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultJournalPageSize = 20

// lineSelect reads journal lines with the account they post to and the date of their entry.
const lineSelect = `
	SELECT l.line_id, l.entry_id, l.organization_id, l.account_id,
	       a.code, a.name, a.type, l.debit, l.credit, e.transaction_date
	FROM journal_lines l
	JOIN journal_entries e ON e.entry_id = l.entry_id
	JOIN chart_of_accounts a ON a.account_id = l.account_id
`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// SaveJournalEntry inserts the entry and its lines in one transaction. An entry id that is
// already stored leaves the database untouched and reports created=false.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (
			entry_id, organization_id, transaction_date, reference, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (entry_id) DO NOTHING;
	`
	tag, err := tx.Exec(ctx, entryQuery,
		m.EntryID,
		m.OrganizationID,
		m.TransactionDate,
		m.Reference,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, organization_id, account_id, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, line := range entry.Lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery, ml.LineID, m.EntryID, m.OrganizationID, ml.AccountID, ml.Debit, ml.Credit)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return false, apperrors.NewAppError(500, "failed to insert lines for journal entry "+m.EntryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

// ListJournalEntries returns a page of entries, newest first, each with all of its lines.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, organizationID string, limit int, nextToken *string, filter domain.LedgerFilter) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = defaultJournalPageSize
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	query := `
		SELECT e.entry_id, e.organization_id, e.transaction_date, e.reference, e.description,
		       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
		FROM journal_entries e
		WHERE e.organization_id = $1`
	args := []any{organizationID}

	if accountType, ok := filter.AccountType(); ok {
		args = append(args, string(accountType))
		query += `
		  AND EXISTS (
			SELECT 1 FROM journal_lines l
			JOIN chart_of_accounts a ON a.account_id = l.account_id
			WHERE l.entry_id = e.entry_id AND a.type = $` + strconv.Itoa(len(args)) + `
		  )`
	}

	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, cursor.TransactionDate, cursor.CreatedAt, cursor.EntryID)
		n := len(args)
		query += ` AND (e.transaction_date, e.created_at, e.entry_id) < ($` + strconv.Itoa(n-2) + `, $` + strconv.Itoa(n-1) + `, $` + strconv.Itoa(n) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY e.transaction_date DESC, e.created_at DESC, e.entry_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries for organization "+organizationID, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.OrganizationID,
			&m.TransactionDate,
			&m.Reference,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{
			TransactionDate: last.TransactionDate,
			CreatedAt:       last.CreatedAt,
			EntryID:         last.EntryID,
		})
		nextTokenVal = &token
		entries = entries[:limit]
	}

	if len(entries) == 0 {
		return []domain.JournalEntry{}, nil, nil
	}

	entryIDs := make([]string, len(entries))
	for i, e := range entries {
		entryIDs[i] = e.EntryID
	}
	linesByEntry, err := r.findLinesByEntryIDs(ctx, organizationID, entryIDs)
	if err != nil {
		return nil, nil, err
	}

	result := make([]domain.JournalEntry, len(entries))
	for i, e := range entries {
		result[i] = mapping.ToDomainJournalEntry(e, linesByEntry[e.EntryID])
	}
	return result, nextTokenVal, nil
}

// FindJournalEntryByID loads an entry by id with its lines. The lookup is not scoped to an
// organization because entry ids are globally unique.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, organization_id, transaction_date, reference, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.OrganizationID,
		&m.TransactionDate,
		&m.Reference,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query journal entry "+entryID, err)
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, m.OrganizationID, []string{m.EntryID})
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(m, linesByEntry[m.EntryID])
	return &entry, nil
}

// findLinesByEntryIDs loads the lines of the given entries grouped by entry id, debits first.
func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, organizationID string, entryIDs []string) (map[string][]models.JournalLine, error) {
	query := lineSelect + `
		WHERE l.organization_id = $1 AND l.entry_id = ANY($2)
		ORDER BY l.entry_id, l.debit DESC, a.code;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	lines := make(map[string][]models.JournalLine, len(entryIDs))
	for rows.Next() {
		m, err := scanJournalLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		lines[m.EntryID] = append(lines[m.EntryID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return lines, nil
}

func scanJournalLine(row pgx.Row) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.OrganizationID,
		&m.AccountID,
		&m.AccountCode,
		&m.AccountName,
		&m.AccountType,
		&m.Debit,
		&m.Credit,
		&m.TransactionDate,
	)
	return m, err
}
