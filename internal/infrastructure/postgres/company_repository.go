package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, organization_id, name, tax_id, address, phone, email, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx). Toda consulta lleva el predicado de tenant del Scope.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para sedes. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una sede nueva fijada a la organización del scope; la
// organización del payload se ignora salvo contradicción (domain.ErrCrossTenantWrite).
// Devuelve domain.ErrDuplicate si el nombre ya existe en la organización.
func (r *CompanyRepo) Create(ctx context.Context, scope tenancy.Scope, company *entity.Company) error {
	org, err := scope.PinWrite(company.OrganizationID)
	if err != nil {
		return err
	}
	company.OrganizationID = org

	query := `
		INSERT INTO companies (id, organization_id, name, tax_id, address, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		company.ID, company.OrganizationID, company.Name, company.TaxID,
		company.Address, company.Phone, company.Email, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por ID dentro del scope. Una sede de otra
// organización es indistinguible de una inexistente: (nil, nil).
func (r *CompanyRepo) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Company, error) {
	cond, args := scopeFilter(scope, 2)
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND ` + cond
	return r.scanOne(r.q.QueryRow(ctx, query, append([]any{id}, args...)...))
}

// GetByName obtiene una sede por nombre dentro del scope. (nil, nil) si no existe.
func (r *CompanyRepo) GetByName(ctx context.Context, scope tenancy.Scope, name string) (*entity.Company, error) {
	cond, args := scopeFilter(scope, 2)
	query := `SELECT ` + companyColumns + ` FROM companies WHERE name = $1 AND ` + cond
	return r.scanOne(r.q.QueryRow(ctx, query, append([]any{name}, args...)...))
}

// List lista las sedes del scope con paginación.
func (r *CompanyRepo) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Company, error) {
	cond, args := scopeFilter(scope, 3)
	query := `SELECT ` + companyColumns + ` FROM companies WHERE ` + cond + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una sede dentro del scope. Una sede de otra organización se
// reporta como domain.ErrNotFound, igual que una inexistente.
func (r *CompanyRepo) Update(ctx context.Context, scope tenancy.Scope, company *entity.Company) error {
	cond, args := scopeFilter(scope, 7)
	query := `UPDATE companies SET name = $2, tax_id = $3, address = $4, phone = $5, email = $6, updated_at = now()
		WHERE id = $1 AND ` + cond
	cmd, err := r.q.Exec(ctx, query,
		append([]any{company.ID, company.Name, company.TaxID, company.Address, company.Phone, company.Email}, args...)...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una sede dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *CompanyRepo) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	cond, args := scopeFilter(scope, 2)
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1 AND `+cond, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CompanyRepo) scanOne(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	if err := scanCompany(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

func scanCompany(row pgx.Row, c *entity.Company) error {
	return row.Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.TaxID, &c.Address, &c.Phone,
		&c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
}
