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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, organization_id, company_id, name, tax_id, email, phone, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente fijado a la organización del scope.
// Devuelve domain.ErrDuplicate si el nombre ya existe en la organización.
func (r *CustomerRepo) Create(ctx context.Context, scope tenancy.Scope, customer *entity.Customer) error {
	org, err := scope.PinWrite(customer.OrganizationID)
	if err != nil {
		return err
	}
	customer.OrganizationID = org

	query := `
		INSERT INTO customers (id, organization_id, company_id, name, tax_id, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		customer.ID, customer.OrganizationID, customer.CompanyID, customer.Name,
		customer.TaxID, customer.Email, customer.Phone, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID dentro del scope. (nil, nil) si no existe o es ajeno.
func (r *CustomerRepo) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Customer, error) {
	cond, args := scopeFilter(scope, 2)
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND ` + cond
	var c entity.Customer
	if err := scanCustomer(r.q.QueryRow(ctx, query, append([]any{id}, args...)...), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista los clientes del scope con paginación.
func (r *CustomerRepo) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Customer, error) {
	cond, args := scopeFilter(scope, 3)
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + cond + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *CustomerRepo) Update(ctx context.Context, scope tenancy.Scope, customer *entity.Customer) error {
	cond, args := scopeFilter(scope, 7)
	query := `UPDATE customers SET name = $2, tax_id = $3, email = $4, phone = $5, company_id = $6, updated_at = now()
		WHERE id = $1 AND ` + cond
	cmd, err := r.q.Exec(ctx, query,
		append([]any{customer.ID, customer.Name, customer.TaxID, customer.Email, customer.Phone, customer.CompanyID}, args...)...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *CustomerRepo) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	cond, args := scopeFilter(scope, 2)
	cmd, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1 AND `+cond, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row, c *entity.Customer) error {
	return row.Scan(
		&c.ID, &c.OrganizationID, &c.CompanyID, &c.Name, &c.TaxID, &c.Email,
		&c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
}
