package repositories

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
)

// AccountReader defines read operations on an organization's chart of accounts.
type AccountReader interface {
	// FindAccountByID retrieves a specific account of an organization.
	FindAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its chart code (e.g. "3001").
	FindAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by account id. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the chart of accounts ordered by code. A nil accountType lists every type.
	ListAccounts(ctx context.Context, organizationID string, accountType *domain.AccountType) ([]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
}
