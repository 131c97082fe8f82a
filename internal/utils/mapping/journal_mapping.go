package mapping

import (
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/SscSPs/ledger_saas_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry. Lines are mapped separately.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.EntryID,
		OrganizationID:  d.OrganizationID,
		TransactionDate: d.TransactionDate,
		Reference:       d.Reference,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		OrganizationID:  m.OrganizationID,
		TransactionDate: m.TransactionDate.UTC(),
		Reference:       m.Reference,
		Description:     m.Description,
		Lines:           ToDomainJournalLineSlice(lines),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:          d.LineID,
		EntryID:         d.EntryID,
		OrganizationID:  d.OrganizationID,
		AccountID:       d.AccountID,
		AccountCode:     d.AccountCode,
		AccountName:     d.AccountName,
		AccountType:     models.AccountType(d.AccountType),
		Debit:           d.Debit,
		Credit:          d.Credit,
		TransactionDate: d.TransactionDate,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine.
// pgx scans timestamptz in the local zone; dates are normalised back to UTC.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:          m.LineID,
		EntryID:         m.EntryID,
		OrganizationID:  m.OrganizationID,
		AccountID:       m.AccountID,
		AccountCode:     m.AccountCode,
		AccountName:     m.AccountName,
		AccountType:     domain.AccountType(m.AccountType),
		Debit:           m.Debit,
		Credit:          m.Credit,
		TransactionDate: m.TransactionDate.UTC(),
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to a slice of domain JournalLines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
