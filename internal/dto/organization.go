package dto

import (
	"time"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
)

// OrganizationResponse defines data returned for an organization.
type OrganizationResponse struct {
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Email          string    `json:"email,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToOrganizationResponse converts domain.Organization to DTO.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: o.OrganizationID,
		Name:           o.Name,
		Slug:           o.Slug,
		Email:          o.Email,
		CreatedAt:      o.CreatedAt,
	}
}

// ListOrganizationsResponse wraps a list of organizations.
type ListOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// ToListOrganizationsResponse converts a slice of domain.Organization to DTO.
func ToListOrganizationsResponse(os []domain.Organization) ListOrganizationsResponse {
	list := make([]OrganizationResponse, len(os))
	for i, o := range os {
		list[i] = ToOrganizationResponse(&o)
	}
	return ListOrganizationsResponse{Organizations: list}
}
