package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
)

// organizationService implements the OrganizationSvcFacade interface
type organizationService struct {
	BaseService
	organizationRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new organization service with the provided dependencies
func NewOrganizationService(organizationRepo portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationSvcFacade {
	svc := &organizationService{
		organizationRepo: organizationRepo,
	}
	svc.OrganizationAuthorizer = svc
	return svc
}

// Ensure organizationService implements the OrganizationSvcFacade interface
var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// FindOrganizationByID retrieves an organization the requesting user belongs to
func (s *organizationService) FindOrganizationByID(ctx context.Context, organizationID, requestingUserID string) (*domain.Organization, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	organization, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find organization by ID",
				slog.String("organization_id", organizationID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Organization retrieved successfully",
		slog.String("organization_id", organization.OrganizationID))
	return organization, nil
}

// ListUserOrganizations retrieves all organizations a user belongs to
func (s *organizationService) ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error) {
	organizations, err := s.organizationRepo.ListOrganizationsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if organizations == nil {
		return []domain.Organization{}, nil
	}

	s.LogDebug(ctx, "Organizations listed successfully",
		slog.Int("count", len(organizations)),
		slog.String("user_id", userID))
	return organizations, nil
}

// AuthorizeUserAction checks if a user has required permissions for an organization.
// Non-members and members with an insufficient role both get ErrForbidden.
func (s *organizationService) AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.MemberRole) error {
	if userID == "" {
		return apperrors.ErrUnauthorized
	}

	member, err := s.organizationRepo.FindMember(ctx, userID, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of organization",
				slog.String("user_id", userID),
				slog.String("organization_id", organizationID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find organization membership",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return err
	}

	if !member.Role.Satisfies(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID),
			slog.String("user_role", string(member.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}
