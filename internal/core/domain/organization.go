package domain

import "time"

// Organization is the tenant boundary. All ledger data and aggregation is scoped to one organization.
type Organization struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Email          string `json:"email"`
	AuditFields
}

// MemberRole defines the role a user holds within an organization.
type MemberRole string

const (
	RoleOwner    MemberRole = "owner"
	RoleAdmin    MemberRole = "admin"
	RoleMember   MemberRole = "member"
	RoleReadOnly MemberRole = "readonly"
)

var roleRank = map[MemberRole]int{
	RoleReadOnly: 1,
	RoleMember:   2,
	RoleAdmin:    3,
	RoleOwner:    4,
}

// Satisfies reports whether a member holding r may perform an action requiring required.
func (r MemberRole) Satisfies(required MemberRole) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}

// OrganizationMember represents the membership of a user in an organization.
type OrganizationMember struct {
	UserID         string     `json:"userID"`
	OrganizationID string     `json:"organizationID"`
	Role           MemberRole `json:"role"`
	JoinedAt       time.Time  `json:"joinedAt"`
}
