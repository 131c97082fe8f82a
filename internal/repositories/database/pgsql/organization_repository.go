package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_saas_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_saas_app/internal/models"
	"github.com/SscSPs/ledger_saas_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

func (r *PgxOrganizationRepository) getOrganizations(ctx context.Context, filterQuery string, args ...any) ([]domain.Organization, error) {
	query := `
		SELECT o.organization_id, o.name, o.slug, o.email, o.created_at, o.created_by, o.last_updated_at, o.last_updated_by
		FROM organizations o
	` + filterQuery

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query organizations", err)
	}
	defer rows.Close()

	var organizations []domain.Organization
	for rows.Next() {
		var m models.Organization
		if err := rows.Scan(
			&m.OrganizationID,
			&m.Name,
			&m.Slug,
			&m.Email,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan organization row", err)
		}
		organizations = append(organizations, mapping.ToDomainOrganization(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating organization rows", err)
	}
	return organizations, nil
}

// FindOrganizationByID retrieves a specific organization by its ID.
func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	organizations, err := r.getOrganizations(ctx, `WHERE o.organization_id = $1;`, organizationID)
	if err != nil {
		return nil, err
	}
	if len(organizations) == 0 {
		return nil, apperrors.NewNotFoundError("organization not found")
	}
	return &organizations[0], nil
}

// ListOrganizationsByUserID retrieves all organizations a user belongs to, ordered by name.
func (r *PgxOrganizationRepository) ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error) {
	return r.getOrganizations(ctx, `
		JOIN organization_members m ON m.organization_id = o.organization_id
		WHERE m.user_id = $1
		ORDER BY o.name;
	`, userID)
}

// FindMember retrieves the membership of a user in an organization.
func (r *PgxOrganizationRepository) FindMember(ctx context.Context, userID, organizationID string) (*domain.OrganizationMember, error) {
	query := `
		SELECT user_id, organization_id, role, joined_at
		FROM organization_members
		WHERE user_id = $1 AND organization_id = $2;
	`
	var m models.OrganizationMember
	err := r.Pool.QueryRow(ctx, query, userID, organizationID).Scan(
		&m.UserID,
		&m.OrganizationID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("organization membership not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find membership of user "+userID+" in "+organizationID, err)
	}

	member := mapping.ToDomainOrganizationMember(m)
	return &member, nil
}
