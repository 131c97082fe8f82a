package models

import "time"

// Organization is a row of organizations.
type Organization struct {
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Slug           string `db:"slug"`
	Email          string `db:"email"`
	AuditFields
}

// OrganizationMember is a row of organization_members.
type OrganizationMember struct {
	UserID         string    `db:"user_id"`
	OrganizationID string    `db:"organization_id"`
	Role           string    `db:"role"`
	JoinedAt       time.Time `db:"joined_at"`
}
