package mapping

import (
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/SscSPs/ledger_saas_app/internal/models"
)

// ToDomainOrganization converts a model Organization to a domain Organization
func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Slug:           m.Slug,
		Email:          m.Email,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrganizationMember converts a model OrganizationMember to a domain OrganizationMember
func ToDomainOrganizationMember(m models.OrganizationMember) domain.OrganizationMember {
	return domain.OrganizationMember{
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           domain.MemberRole(m.Role),
		JoinedAt:       m.JoinedAt,
	}
}
