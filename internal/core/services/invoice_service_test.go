package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/core/services"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockInvoiceRepository
	mockAccountSvc *MockAccountService
	mockAuthorizer *MockOrganizationAuthorizer
	service        portssvc.InvoiceSvcFacade
	organizationID string
	userID         string
	bankAccount    domain.Account
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockAuthorizer = new(MockOrganizationAuthorizer)
	suite.service = services.NewInvoiceService(suite.mockRepo, suite.mockAccountSvc,
		services.WithInvoiceOrganizationAuthorizer(suite.mockAuthorizer))
	suite.organizationID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.bankAccount = domain.Account{AccountID: uuid.NewString(), OrganizationID: suite.organizationID, Code: "1002", Name: "Bank BCA", AccountType: domain.Asset}
}

func (suite *InvoiceServiceTestSuite) openInvoice(t domain.InvoiceType) *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:      uuid.NewString(),
		OrganizationID: suite.organizationID,
		ContactID:      "contact-1",
		InvoiceNumber:  "INV-ABCDEF12",
		Type:           t,
		Status:         domain.InvoiceSent,
		TotalAmount:    decimal.NewFromInt(750),
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Kinds() {
	tests := []struct {
		kind       domain.InvoiceType
		wantPrefix string
		wantStored domain.InvoiceType
	}{
		{kind: domain.InvoiceSale, wantPrefix: "INV-", wantStored: domain.InvoiceSale},
		{kind: domain.InvoicePurchase, wantPrefix: "BILL-", wantStored: domain.InvoicePurchase},
		{kind: domain.InvoicePayroll, wantPrefix: "PAY-", wantStored: domain.InvoicePurchase},
	}

	for _, tt := range tests {
		suite.Run(string(tt.kind), func() {
			suite.SetupTest()
			ctx := context.Background()
			req := dto.CreateInvoiceRequest{
				Type:        tt.kind,
				ContactID:   "contact-1",
				Date:        time.Date(2025, time.May, 3, 9, 0, 0, 0, time.UTC),
				Description: "May services",
				Amount:      decimal.NewFromInt(1200),
			}
			suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleMember).Return(nil).Once()
			suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

			inv, err := suite.service.CreateInvoice(ctx, suite.organizationID, req, suite.userID)

			suite.Require().NoError(err)
			suite.True(strings.HasPrefix(inv.InvoiceNumber, tt.wantPrefix), inv.InvoiceNumber)
			suite.Equal(tt.wantStored, inv.Type)
			suite.Equal(domain.InvoiceSent, inv.Status)
			suite.Equal(time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC), inv.Date)
			suite.Require().Len(inv.Items, 1)
			suite.Equal("May services", inv.Items[0].Description)
			suite.True(inv.Items[0].Quantity.Equal(decimal.NewFromInt(1)))
			suite.True(inv.TotalAmount.Equal(inv.Items[0].Amount))
			suite.mockRepo.AssertExpectations(suite.T())
		})
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Invalid() {
	base := dto.CreateInvoiceRequest{
		Type:        domain.InvoiceSale,
		ContactID:   "contact-1",
		Date:        time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC),
		Description: "May services",
		Amount:      decimal.NewFromInt(1200),
	}

	tests := []struct {
		name   string
		mutate func(*dto.CreateInvoiceRequest)
	}{
		{name: "zero amount", mutate: func(r *dto.CreateInvoiceRequest) { r.Amount = decimal.Zero }},
		{name: "negative amount", mutate: func(r *dto.CreateInvoiceRequest) { r.Amount = decimal.NewFromInt(-1) }},
		{name: "unknown type", mutate: func(r *dto.CreateInvoiceRequest) { r.Type = "REFUND" }},
		{name: "no contact", mutate: func(r *dto.CreateInvoiceRequest) { r.ContactID = "" }},
		{name: "no date", mutate: func(r *dto.CreateInvoiceRequest) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			ctx := context.Background()
			req := base
			tt.mutate(&req)
			suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleMember).Return(nil).Once()

			_, err := suite.service.CreateInvoice(ctx, suite.organizationID, req, suite.userID)

			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
		})
	}
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_PayrollListsPurchases() {
	ctx := context.Background()
	bills := []domain.Invoice{*suite.openInvoice(domain.InvoicePurchase)}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListInvoices", ctx, suite.organizationID, domain.InvoicePurchase).Return(bills, nil).Once()

	result, err := suite.service.ListInvoices(ctx, suite.organizationID, suite.userID, domain.InvoicePayroll)

	suite.Require().NoError(err)
	suite.Equal(bills, result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_UnknownType() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleReadOnly).Return(nil).Once()

	_, err := suite.service.ListInvoices(ctx, suite.organizationID, suite.userID, "QUOTE")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestPayInvoice_Directions() {
	tests := []struct {
		kind domain.InvoiceType
		want domain.PaymentDirection
	}{
		{kind: domain.InvoiceSale, want: domain.PaymentIn},
		{kind: domain.InvoicePurchase, want: domain.PaymentOut},
	}

	for _, tt := range tests {
		suite.Run(string(tt.kind), func() {
			suite.SetupTest()
			ctx := context.Background()
			inv := suite.openInvoice(tt.kind)
			req := dto.PayInvoiceRequest{
				PaymentDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
				AccountID:   suite.bankAccount.AccountID,
			}

			suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleMember).Return(nil).Once()
			suite.mockRepo.On("FindInvoiceByID", ctx, suite.organizationID, inv.InvoiceID).Return(inv, nil).Once()
			suite.mockAccountSvc.On("GetCashAccount", ctx, suite.organizationID, suite.bankAccount.AccountID).Return(&suite.bankAccount, nil).Once()
			suite.mockRepo.On("SettleInvoice", ctx, mock.MatchedBy(func(p domain.Payment) bool {
				return p.InvoiceID == inv.InvoiceID && p.Direction == tt.want
			})).Return(nil).Once()

			payment, err := suite.service.PayInvoice(ctx, suite.organizationID, inv.InvoiceID, req, suite.userID)

			suite.Require().NoError(err)
			suite.Equal(tt.want, payment.Direction)
			suite.True(payment.Amount.Equal(decimal.NewFromInt(750)))
			suite.Equal(inv.InvoiceNumber, payment.Reference)
			suite.Equal(suite.bankAccount.AccountID, payment.AccountID)
			suite.mockRepo.AssertExpectations(suite.T())
		})
	}
}

func (suite *InvoiceServiceTestSuite) TestPayInvoice_AlreadyPaid() {
	ctx := context.Background()
	inv := suite.openInvoice(domain.InvoiceSale)
	inv.Status = domain.InvoicePaid

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleMember).Return(nil).Once()
	suite.mockRepo.On("FindInvoiceByID", ctx, suite.organizationID, inv.InvoiceID).Return(inv, nil).Once()

	_, err := suite.service.PayInvoice(ctx, suite.organizationID, inv.InvoiceID,
		dto.PayInvoiceRequest{PaymentDate: time.Now(), AccountID: suite.bankAccount.AccountID}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SettleInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestPayInvoice_LostRace() {
	ctx := context.Background()
	inv := suite.openInvoice(domain.InvoiceSale)

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleMember).Return(nil).Once()
	suite.mockRepo.On("FindInvoiceByID", ctx, suite.organizationID, inv.InvoiceID).Return(inv, nil).Once()
	suite.mockAccountSvc.On("GetCashAccount", ctx, suite.organizationID, suite.bankAccount.AccountID).Return(&suite.bankAccount, nil).Once()
	suite.mockRepo.On("SettleInvoice", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.PayInvoice(ctx, suite.organizationID, inv.InvoiceID,
		dto.PayInvoiceRequest{PaymentDate: time.Now(), AccountID: suite.bankAccount.AccountID}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestPayInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleMember).Return(nil).Once()
	suite.mockRepo.On("FindInvoiceByID", ctx, suite.organizationID, invoiceID).Return(nil, apperrors.NewNotFoundError("invoice not found")).Once()

	_, err := suite.service.PayInvoice(ctx, suite.organizationID, invoiceID,
		dto.PayInvoiceRequest{PaymentDate: time.Now(), AccountID: suite.bankAccount.AccountID}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestPayInvoice_NonCashAccount() {
	ctx := context.Background()
	inv := suite.openInvoice(domain.InvoicePurchase)
	accountID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleMember).Return(nil).Once()
	suite.mockRepo.On("FindInvoiceByID", ctx, suite.organizationID, inv.InvoiceID).Return(inv, nil).Once()
	suite.mockAccountSvc.On("GetCashAccount", ctx, suite.organizationID, accountID).
		Return(nil, apperrors.NewValidationError(accountID, "accountID", "not a cash account")).Once()

	_, err := suite.service.PayInvoice(ctx, suite.organizationID, inv.InvoiceID,
		dto.PayInvoiceRequest{PaymentDate: time.Now(), AccountID: accountID}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SettleInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleAdmin).Return(nil).Once()
	suite.mockRepo.On("DeleteInvoice", ctx, suite.organizationID, invoiceID).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, suite.organizationID, invoiceID, suite.userID)

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Errors() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleAdmin).Return(nil).Twice()
	suite.mockRepo.On("DeleteInvoice", ctx, suite.organizationID, invoiceID).Return(apperrors.NewNotFoundError("invoice not found")).Once()
	suite.mockRepo.On("DeleteInvoice", ctx, suite.organizationID, invoiceID).Return(assert.AnError).Once()

	suite.ErrorIs(suite.service.DeleteInvoice(ctx, suite.organizationID, invoiceID, suite.userID), apperrors.ErrNotFound)
	suite.ErrorIs(suite.service.DeleteInvoice(ctx, suite.organizationID, invoiceID, suite.userID), assert.AnError)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_RequiresAdmin() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.organizationID, domain.RoleAdmin).Return(apperrors.ErrForbidden).Once()

	err := suite.service.DeleteInvoice(ctx, suite.organizationID, "inv-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
