package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockAccountRepository
	mockAuthorizer *MockOrganizationAuthorizer
	service        portssvc.AccountSvcFacade
	organizationID string
	userID         string
	bank           domain.Account
	kas            domain.Account
	receivable     domain.Account
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockAuthorizer = new(MockOrganizationAuthorizer)
	suite.service = services.NewAccountService(suite.mockRepo,
		services.WithAccountOrganizationAuthorizer(suite.mockAuthorizer))

	suite.organizationID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.bank = domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.organizationID, Code: "1002", Name: "Bank BCA", AccountType: domain.Asset}
	suite.kas = domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.organizationID, Code: "1001", Name: "Kas Kecil", AccountType: domain.Asset}
	suite.receivable = domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.organizationID, Code: "1101", Name: "Piutang Usaha", AccountType: domain.Asset}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	accounts := []domain.Account{suite.kas, suite.bank}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, suite.organizationID, (*domain.AccountType)(nil)).Return(accounts, nil).Once()

	result, err := suite.service.ListAccounts(ctx, suite.organizationID, suite.userID, nil)

	suite.Require().NoError(err)
	suite.Equal(accounts, result)
	suite.mockAuthorizer.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, suite.organizationID, mock.Anything).Return(nil, nil).Once()

	result, err := suite.service.ListAccounts(ctx, suite.organizationID, suite.userID, nil)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *AccountServiceTestSuite) TestListAccounts_InvalidType() {
	ctx := context.Background()
	bogus := domain.AccountType("revenue")

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleReadOnly).Return(nil).Once()

	_, err := suite.service.ListAccounts(ctx, suite.organizationID, suite.userID, &bogus)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_Forbidden() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleReadOnly).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.ListAccounts(ctx, suite.organizationID, suite.userID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, suite.organizationID, mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListAccounts(ctx, suite.organizationID, suite.userID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestListCashAccounts_FiltersByKeyword() {
	ctx := context.Background()
	asset := domain.Asset

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, suite.organizationID, &asset).
		Return([]domain.Account{suite.kas, suite.bank, suite.receivable}, nil).Once()

	result, err := suite.service.ListCashAccounts(ctx, suite.organizationID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal([]domain.Account{suite.kas, suite.bank}, result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListCashAccounts_CustomKeywords() {
	ctx := context.Background()
	svc := services.NewAccountService(suite.mockRepo,
		services.WithAccountOrganizationAuthorizer(suite.mockAuthorizer),
		services.WithAccountCashKeywords("piutang"))

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, suite.organizationID, mock.Anything).
		Return([]domain.Account{suite.kas, suite.bank, suite.receivable}, nil).Once()

	result, err := svc.ListCashAccounts(ctx, suite.organizationID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal([]domain.Account{suite.receivable}, result)
}

func (suite *AccountServiceTestSuite) TestGetCashAccount() {
	expense := domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.organizationID, Code: "6001", Name: "Biaya Bank", AccountType: domain.Expense}

	tests := []struct {
		name      string
		account   *domain.Account
		repoErr   error
		wantErrIs error
	}{
		{name: "bank asset", account: &suite.bank},
		{name: "non cash asset", account: &suite.receivable, wantErrIs: apperrors.ErrValidation},
		{name: "expense with bank in name", account: &expense, wantErrIs: apperrors.ErrValidation},
		{name: "not found", repoErr: apperrors.NewNotFoundError("account not found"), wantErrIs: apperrors.ErrValidation},
		{name: "repo failure", repoErr: assert.AnError, wantErrIs: assert.AnError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			ctx := context.Background()
			repo := new(MockAccountRepository)
			svc := services.NewAccountService(repo)
			accountID := uuid.NewString()
			if tt.account != nil {
				accountID = tt.account.AccountID
				repo.On("FindAccountByID", ctx, suite.organizationID, accountID).Return(tt.account, nil).Once()
			} else {
				repo.On("FindAccountByID", ctx, suite.organizationID, accountID).Return(nil, tt.repoErr).Once()
			}

			got, err := svc.GetCashAccount(ctx, suite.organizationID, accountID)

			if tt.wantErrIs != nil {
				suite.Require().Error(err)
				suite.ErrorIs(err, tt.wantErrIs)
				suite.Nil(got)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(tt.account, got)
		})
	}
}

func (suite *AccountServiceTestSuite) TestNoAuthorizerDeniesAccess() {
	svc := services.NewAccountService(suite.mockRepo)

	_, err := svc.ListAccounts(context.Background(), suite.organizationID, suite.userID, nil)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Run Test Suite ---
func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
