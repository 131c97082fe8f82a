package services

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
)

// AccountReaderSvc defines read operations on the chart of accounts
type AccountReaderSvc interface {
	// ListAccounts retrieves the chart of accounts, optionally restricted to one type.
	ListAccounts(ctx context.Context, organizationID, userID string, accountType *domain.AccountType) ([]domain.Account, error)

	// ListCashAccounts retrieves the asset accounts whose name marks them as cash or bank.
	ListCashAccounts(ctx context.Context, organizationID, userID string) ([]domain.Account, error)

	// GetCashAccount retrieves one account and checks that it is a cash or bank account.
	GetCashAccount(ctx context.Context, organizationID, accountID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
}
