package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

const organizationColumns = `id, subdomain, name, status, contact_name, contact_email,
	address, city, country, onboarding_company_done, onboarding_catalog_done,
	onboarding_team_done, created_at, updated_at`

// OrganizationRepo implementación del directorio de organizaciones sobre PostgreSQL.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador del directorio. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una organización nueva. El ID lo asigna la secuencia de la tabla.
// Devuelve domain.ErrDuplicate si el subdominio ya existe.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	query := `
		INSERT INTO organizations (subdomain, name, status, contact_name, contact_email, address, city, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		org.Subdomain, org.Name, org.Status, org.ContactName, org.ContactEmail,
		org.Address, org.City, org.Country,
	).Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID. (nil, nil) si no existe.
func (r *OrganizationRepo) GetByID(ctx context.Context, id int64) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetBySubdomain obtiene una organización por subdominio, sin distinguir mayúsculas.
// (nil, nil) si no existe.
func (r *OrganizationRepo) GetBySubdomain(ctx context.Context, sub string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE subdomain = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, strings.ToLower(sub)))
}

// List lista organizaciones con paginación (solo operaciones de plataforma).
func (r *OrganizationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := scanOrganization(rows, &o); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de ciclo de vida de una organización.
func (r *OrganizationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE organizations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update organization status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrganizationRepo) scanOne(row pgx.Row) (*entity.Organization, error) {
	var o entity.Organization
	if err := scanOrganization(row, &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

func scanOrganization(row pgx.Row, o *entity.Organization) error {
	return row.Scan(
		&o.ID, &o.Subdomain, &o.Name, &o.Status, &o.ContactName, &o.ContactEmail,
		&o.Address, &o.City, &o.Country, &o.OnboardingCompanyDone,
		&o.OnboardingCatalogDone, &o.OnboardingTeamDone, &o.CreatedAt, &o.UpdatedAt,
	)
}
