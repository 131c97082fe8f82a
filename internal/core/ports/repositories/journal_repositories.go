package repositories

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// ListJournalEntries retrieves a page of entries with their lines, newest first, using token-based pagination.
	// An entry is returned when the filter matches any of its lines.
	// It returns the entries, a token for the next page, and an error.
	ListJournalEntries(ctx context.Context, organizationID string, limit int, nextToken *string, filter domain.LedgerFilter) ([]domain.JournalEntry, *string, error)
	// FindJournalEntryByID loads an entry with its lines whatever organization owns it.
	// Callers compare OrganizationID before exposing it.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalEntry persists an entry and its lines atomically. Saving an entry id that already
	// exists is a no-op and reports created=false.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) (created bool, err error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
