package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_saas_app/internal/core/services"
	"github.com/SscSPs/ledger_saas_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewServiceContainer_WiresAuthorizerAndConfig(t *testing.T) {
	ctx := context.Background()
	orgRepo := new(MockOrganizationRepository)
	accountRepo := new(MockAccountRepository)

	cfg := &config.Config{CashAccountKeywords: []string{"giro"}, CapitalAccountCode: "3100"}
	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		JournalRepo:      new(MockJournalRepository),
		InvoiceRepo:      new(MockInvoiceRepository),
		OrganizationRepo: orgRepo,
		ReportingRepo:    new(MockReportingRepository),
	})
	require.NotNil(t, container.Organization)
	require.NotNil(t, container.Account)
	require.NotNil(t, container.Journal)
	require.NotNil(t, container.Invoice)
	require.NotNil(t, container.Reporting)

	orgRepo.On("FindMember", ctx, "user-1", "org-1").
		Return(&domain.OrganizationMember{UserID: "user-1", OrganizationID: "org-1", Role: domain.RoleMember}, nil).Once()
	accountRepo.On("ListAccounts", ctx, "org-1", mock.Anything).Return([]domain.Account{
		{AccountID: "a1", Code: "1001", Name: "Kas Kecil", AccountType: domain.Asset},
		{AccountID: "a2", Code: "1003", Name: "Giro Mandiri", AccountType: domain.Asset},
	}, nil).Once()

	cash, err := container.Account.ListCashAccounts(ctx, "org-1", "user-1")

	require.NoError(t, err)
	require.Len(t, cash, 1)
	assert.Equal(t, "a2", cash[0].AccountID)
	orgRepo.AssertExpectations(t)
}
