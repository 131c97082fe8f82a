package dto

import (
	"time"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one posting of a new journal entry. Exactly one of Debit or Credit is
// normally non-zero; both must be non-negative.
type JournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest defines the data needed to post a balanced journal entry.
// EntryID is optional; supplying one makes retries of the same request idempotent.
type CreateJournalEntryRequest struct {
	EntryID         string               `json:"entryID" binding:"omitempty,uuid"`
	TransactionDate time.Time            `json:"transactionDate" binding:"required"`
	Reference       string               `json:"reference"`
	Description     string               `json:"description" binding:"required"`
	Lines           []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// CapitalInjectionRequest defines an owner capital contribution into a cash or bank account.
type CapitalInjectionRequest struct {
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
	CashAccountID   string          `json:"cashAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

// ListJournalEntriesParams defines query parameters for the ledger view.
type ListJournalEntriesParams struct {
	Limit     int                 `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string             `form:"nextToken"`
	Filter    domain.LedgerFilter `form:"filter,default=ALL" binding:"oneof=ALL INCOME EXPENSE EQUITY"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string             `json:"lineID"`
	AccountID   string             `json:"accountID"`
	AccountCode string             `json:"accountCode"`
	AccountName string             `json:"accountName"`
	AccountType domain.AccountType `json:"accountType"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID         string                `json:"entryID"`
	TransactionDate time.Time             `json:"transactionDate"`
	Reference       string                `json:"reference"`
	Description     string                `json:"description"`
	TotalDebit      decimal.Decimal       `json:"totalDebit"`
	TotalCredit     decimal.Decimal       `json:"totalCredit"`
	Lines           []JournalLineResponse `json:"lines"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:      l.LineID,
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			AccountType: l.AccountType,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return JournalEntryResponse{
		EntryID:         e.EntryID,
		TransactionDate: e.TransactionDate,
		Reference:       e.Reference,
		Description:     e.Description,
		TotalDebit:      e.TotalDebit(),
		TotalCredit:     e.TotalCredit(),
		Lines:           lines,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

// ToListJournalEntriesResponse converts a page of entries to DTO.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	list := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		list[i] = ToJournalEntryResponse(&entries[i])
	}
	return ListJournalEntriesResponse{Entries: list, NextToken: nextToken}
}
