package repositories

import (
	"context"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
)

// OrganizationReader defines read operations for organization data
type OrganizationReader interface {
	// FindOrganizationByID retrieves a specific organization by its ID.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListOrganizationsByUserID retrieves all organizations a user belongs to.
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error)
}

// OrganizationMembershipReader defines read operations on memberships. Memberships are provisioned
// by the identity platform; this service only reads them.
type OrganizationMembershipReader interface {
	// FindMember retrieves the membership of a user in an organization.
	FindMember(ctx context.Context, userID, organizationID string) (*domain.OrganizationMember, error)
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationMembershipReader
}
