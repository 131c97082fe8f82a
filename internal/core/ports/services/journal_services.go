package services

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// ListJournalEntries retrieves a page of the ledger, newest first.
	ListJournalEntries(ctx context.Context, organizationID, userID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// PostJournalEntry validates and persists a balanced journal entry.
	PostJournalEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// InjectCapital posts an owner capital contribution: debit a cash account, credit the capital account.
	InjectCapital(ctx context.Context, organizationID string, req dto.CapitalInjectionRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
