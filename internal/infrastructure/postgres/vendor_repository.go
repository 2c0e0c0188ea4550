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

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, organization_id, company_id, name, tax_id, email, phone, created_at, updated_at`

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un proveedor fijado a la organización del scope.
// Devuelve domain.ErrDuplicate si el nombre ya existe en la organización.
func (r *VendorRepo) Create(ctx context.Context, scope tenancy.Scope, vendor *entity.Vendor) error {
	org, err := scope.PinWrite(vendor.OrganizationID)
	if err != nil {
		return err
	}
	vendor.OrganizationID = org

	query := `
		INSERT INTO vendors (id, organization_id, company_id, name, tax_id, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		vendor.ID, vendor.OrganizationID, vendor.CompanyID, vendor.Name,
		vendor.TaxID, vendor.Email, vendor.Phone, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID dentro del scope. (nil, nil) si no existe o es ajeno.
func (r *VendorRepo) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Vendor, error) {
	cond, args := scopeFilter(scope, 2)
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1 AND ` + cond
	var v entity.Vendor
	if err := scanVendor(r.q.QueryRow(ctx, query, append([]any{id}, args...)...), &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// List lista los proveedores del scope con paginación.
func (r *VendorRepo) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Vendor, error) {
	cond, args := scopeFilter(scope, 3)
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE ` + cond + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := scanVendor(rows, &v); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *VendorRepo) Update(ctx context.Context, scope tenancy.Scope, vendor *entity.Vendor) error {
	cond, args := scopeFilter(scope, 7)
	query := `UPDATE vendors SET name = $2, tax_id = $3, email = $4, phone = $5, company_id = $6, updated_at = now()
		WHERE id = $1 AND ` + cond
	cmd, err := r.q.Exec(ctx, query,
		append([]any{vendor.ID, vendor.Name, vendor.TaxID, vendor.Email, vendor.Phone, vendor.CompanyID}, args...)...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *VendorRepo) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	cond, args := scopeFilter(scope, 2)
	cmd, err := r.q.Exec(ctx, `DELETE FROM vendors WHERE id = $1 AND `+cond, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanVendor(row pgx.Row, v *entity.Vendor) error {
	return row.Scan(
		&v.ID, &v.OrganizationID, &v.CompanyID, &v.Name, &v.TaxID, &v.Email,
		&v.Phone, &v.CreatedAt, &v.UpdatedAt,
	)
}
