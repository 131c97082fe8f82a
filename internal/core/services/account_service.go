package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/utils/accounting"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	cashKeywords []string
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountOrganizationAuthorizer sets the organization authorizer for the account service.
func WithAccountOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) AccountServiceOption {
	return func(s *accountService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// WithAccountCashKeywords overrides the account-name keywords that identify cash accounts.
func WithAccountCashKeywords(keywords ...string) AccountServiceOption {
	return func(s *accountService) {
		s.cashKeywords = keywords
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountReader, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:  repo,
		cashKeywords: accounting.DefaultCashKeywords,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// ListAccounts retrieves the chart of accounts, optionally restricted to one type.
func (s *accountService) ListAccounts(ctx context.Context, organizationID, userID string, accountType *domain.AccountType) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if accountType != nil && !accountType.IsValid() {
		return nil, apperrors.NewValidationError("", "type", "unknown account type "+string(*accountType))
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID, accountType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// ListCashAccounts retrieves the asset accounts whose name marks them as cash or bank.
func (s *accountService) ListCashAccounts(ctx context.Context, organizationID, userID string) ([]domain.Account, error) {
	asset := domain.Asset
	assets, err := s.ListAccounts(ctx, organizationID, userID, &asset)
	if err != nil {
		return nil, err
	}

	cash := make([]domain.Account, 0, len(assets))
	for _, a := range assets {
		if accounting.IsCashAccountName(a.Name, s.cashKeywords...) {
			cash = append(cash, a)
		}
	}

	s.LogDebug(ctx, "Cash accounts listed",
		slog.String("organization_id", organizationID),
		slog.Int("count", len(cash)))
	return cash, nil
}

// GetCashAccount retrieves one account and checks that it is a cash or bank account.
// Callers are expected to have authorized the user already.
func (s *accountService) GetCashAccount(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(accountID, "accountID", "account not found in organization")
		}
		s.LogError(ctx, err, "Failed to find account",
			slog.String("organization_id", organizationID),
			slog.String("account_id", accountID))
		return nil, err
	}

	if account.AccountType != domain.Asset || !accounting.IsCashAccountName(account.Name, s.cashKeywords...) {
		return nil, apperrors.NewValidationError(accountID, "accountID", "account "+account.Label()+" is not a cash or bank account")
	}
	return account, nil
}
