package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
	"github.com/SscSPs/ledger_saas_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// DefaultCapitalAccountCode is the chart code of the owner capital account credited by InjectCapital.
const DefaultCapitalAccountCode = "3001"

const capitalReferencePrefix = "CAP-"

// journalService provides journal posting and the ledger view.
type journalService struct {
	BaseService
	journalRepo        portsrepo.JournalRepositoryFacade
	accountRepo        portsrepo.AccountReader
	accountSvc         portssvc.AccountReaderSvc
	capitalAccountCode string
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalOrganizationAuthorizer sets the organization authorizer for the journal service.
func WithJournalOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) JournalServiceOption {
	return func(s *journalService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// WithCapitalAccountCode overrides the chart code of the capital account.
func WithCapitalAccountCode(code string) JournalServiceOption {
	return func(s *journalService) {
		if code != "" {
			s.capitalAccountCode = code
		}
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	accountSvc portssvc.AccountReaderSvc,
	options ...JournalServiceOption,
) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo:        journalRepo,
		accountRepo:        accountRepo,
		accountSvc:         accountSvc,
		capitalAccountCode: DefaultCapitalAccountCode,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostJournalEntry validates and persists a balanced journal entry.
func (s *journalService) PostJournalEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to post journal entries",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	entry, err := s.buildEntry(ctx, organizationID, req, userID)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, entry)
}

// InjectCapital posts an owner capital contribution: debit a cash account, credit the capital account.
func (s *journalService) InjectCapital(ctx context.Context, organizationID string, req dto.CapitalInjectionRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to inject capital",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("", "amount", "must be positive")
	}

	cash, err := s.accountSvc.GetCashAccount(ctx, organizationID, req.CashAccountID)
	if err != nil {
		return nil, err
	}

	capital, err := s.accountRepo.FindAccountByCode(ctx, organizationID, s.capitalAccountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("", "capitalAccount",
				fmt.Sprintf("capital account %s is missing from the chart of accounts", s.capitalAccountCode))
		}
		s.LogError(ctx, err, "Failed to find capital account",
			slog.String("organization_id", organizationID),
			slog.String("code", s.capitalAccountCode))
		return nil, err
	}
	if capital.AccountType != domain.Equity {
		return nil, apperrors.NewValidationError(capital.AccountID, "capitalAccount", "account "+capital.Label()+" is not an equity account")
	}

	entryID := uuid.NewString()
	description := req.Description
	if description == "" {
		description = "Capital injection into " + cash.Name
	}

	entry, err := s.buildEntry(ctx, organizationID, dto.CreateJournalEntryRequest{
		EntryID:         entryID,
		TransactionDate: req.TransactionDate,
		Reference:       capitalReference(entryID),
		Description:     description,
		Lines: []dto.JournalLineRequest{
			{AccountID: cash.AccountID, Debit: req.Amount, Credit: decimal.Zero},
			{AccountID: capital.AccountID, Debit: decimal.Zero, Credit: req.Amount},
		},
	}, userID)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, entry)
}

// ListJournalEntries retrieves a page of the ledger, newest first.
func (s *journalService) ListJournalEntries(ctx context.Context, organizationID, userID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	filter := params.Filter
	if filter == "" {
		filter = domain.LedgerFilterAll
	}
	if _, ok := filter.AccountType(); !ok && filter != domain.LedgerFilterAll {
		return nil, apperrors.NewValidationError("", "filter", "unknown ledger filter "+string(filter))
	}

	entries, nextToken, err := s.journalRepo.ListJournalEntries(ctx, organizationID, params.Limit, params.NextToken, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries",
			slog.String("organization_id", organizationID),
			slog.String("filter", string(filter)))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	s.LogDebug(ctx, "Journal entries listed",
		slog.String("organization_id", organizationID),
		slog.Int("count", len(entries)))
	response := dto.ToListJournalEntriesResponse(entries, nextToken)
	return &response, nil
}

// buildEntry resolves the request lines against the chart of accounts and validates the result.
func (s *journalService) buildEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, userID string) (domain.JournalEntry, error) {
	if len(req.Lines) < 2 {
		return domain.JournalEntry{}, apperrors.NewValidationError("", "lines", "journal must have at least two lines")
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.JournalEntry{}, apperrors.NewValidationError("", "description", "is required")
	}
	if req.TransactionDate.IsZero() {
		return domain.JournalEntry{}, apperrors.NewValidationError("", "transactionDate", "is required")
	}

	accountIDs := make([]string, 0, len(req.Lines))
	seen := make(map[string]bool, len(req.Lines))
	for i, l := range req.Lines {
		ref := fmt.Sprintf("lines[%d]", i)
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return domain.JournalEntry{}, apperrors.NewValidationError(ref, "amount", "must not be negative")
		}
		if l.Debit.IsPositive() == l.Credit.IsPositive() {
			return domain.JournalEntry{}, apperrors.NewValidationError(ref, "amount", "exactly one of debit or credit must be positive")
		}
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			accountIDs = append(accountIDs, l.AccountID)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, organizationID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for journal entry",
			slog.String("organization_id", organizationID))
		return domain.JournalEntry{}, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	entryID := req.EntryID
	if entryID == "" {
		entryID = uuid.NewString()
	}
	y, m, d := req.TransactionDate.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, l := range req.Lines {
		acc, ok := accounts[l.AccountID]
		if !ok {
			return domain.JournalEntry{}, apperrors.NewValidationError(fmt.Sprintf("lines[%d]", i), "accountID", "account not found in organization")
		}
		lines[i] = domain.JournalLine{
			LineID:          uuid.NewString(),
			EntryID:         entryID,
			OrganizationID:  organizationID,
			AccountID:       acc.AccountID,
			AccountCode:     acc.Code,
			AccountName:     acc.Name,
			AccountType:     acc.AccountType,
			Debit:           l.Debit,
			Credit:          l.Credit,
			TransactionDate: date,
		}
	}

	if err := accounting.ValidateJournalBalance(lines); err != nil {
		return domain.JournalEntry{}, apperrors.NewValidationError(entryID, "lines", err.Error())
	}
	if err := accounting.ValidateLines(organizationID, lines); err != nil {
		return domain.JournalEntry{}, err
	}

	return domain.JournalEntry{
		EntryID:         entryID,
		OrganizationID:  organizationID,
		TransactionDate: date,
		Reference:       req.Reference,
		Description:     req.Description,
		Lines:           lines,
		AuditFields:     domain.NewAuditFields(userID, time.Now().UTC()),
	}, nil
}

func (s *journalService) save(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	created, err := s.journalRepo.SaveJournalEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save journal entry",
			slog.String("organization_id", entry.OrganizationID),
			slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	if !created {
		return s.replayed(ctx, entry)
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("organization_id", entry.OrganizationID),
		slog.String("entry_id", entry.EntryID),
		slog.String("reference", entry.Reference),
		slog.String("amount", entry.TotalDebit().String()))
	return &entry, nil
}

// replayed resolves a post whose entry id is already stored. A resend of the same posting
// returns the stored entry; anything else under that id is a conflict.
func (s *journalService) replayed(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	stored, err := s.journalRepo.FindJournalEntryByID(ctx, entry.EntryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load existing journal entry",
			slog.String("organization_id", entry.OrganizationID),
			slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to load existing journal entry: %w", err)
	}

	if !stored.SamePosting(entry) {
		s.LogWarn(ctx, "Journal entry id reused with different content",
			slog.String("organization_id", entry.OrganizationID),
			slog.String("entry_id", entry.EntryID))
		return nil, apperrors.NewAppError(409, "journal entry "+entry.EntryID+" already exists", apperrors.ErrDuplicate)
	}

	s.LogInfo(ctx, "Journal entry already recorded, nothing written",
		slog.String("organization_id", entry.OrganizationID),
		slog.String("entry_id", entry.EntryID))
	return stored, nil
}

// capitalReference derives a short human reference from the entry id, e.g. "CAP-1F3A9C2E".
func capitalReference(entryID string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(entryID, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return capitalReferencePrefix + suffix
}
