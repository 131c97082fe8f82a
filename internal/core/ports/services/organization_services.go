package services

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
)

// OrganizationReaderSvc defines read operations for organization data
type OrganizationReaderSvc interface {
	// FindOrganizationByID retrieves an organization the requesting user is a member of.
	FindOrganizationByID(ctx context.Context, organizationID, requestingUserID string) (*domain.Organization, error)

	// ListUserOrganizations retrieves organizations a user belongs to.
	ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error)
}

// OrganizationAuthorizerSvc defines operations for organization authorization
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for an organization.
	AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.MemberRole) error
}

// OrganizationSvcFacade combines all organization-related service interfaces
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationAuthorizerSvc
}
