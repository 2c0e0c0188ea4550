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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, organization_id, vendor_id, sku, name, description,
	price, cost, unit_measure, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto fijado a la organización del scope.
// Devuelve domain.ErrDuplicate si el SKU ya existe en la organización.
func (r *ProductRepo) Create(ctx context.Context, scope tenancy.Scope, product *entity.Product) error {
	org, err := scope.PinWrite(product.OrganizationID)
	if err != nil {
		return err
	}
	product.OrganizationID = org

	query := `
		INSERT INTO products (id, organization_id, vendor_id, sku, name, description, price, cost, unit_measure, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(ctx, query,
		product.ID, product.OrganizationID, product.VendorID, product.SKU, product.Name,
		product.Description, product.Price, product.Cost, product.UnitMeasure,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID dentro del scope. (nil, nil) si no existe o es ajeno.
func (r *ProductRepo) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Product, error) {
	cond, args := scopeFilter(scope, 2)
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND ` + cond
	return r.scanOne(r.q.QueryRow(ctx, query, append([]any{id}, args...)...))
}

// GetBySKU obtiene un producto por SKU dentro del scope. (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, scope tenancy.Scope, sku string) (*entity.Product, error) {
	cond, args := scopeFilter(scope, 2)
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1 AND ` + cond
	return r.scanOne(r.q.QueryRow(ctx, query, append([]any{sku}, args...)...))
}

// List lista los productos del scope con paginación.
func (r *ProductRepo) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Product, error) {
	cond, args := scopeFilter(scope, 3)
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + cond + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *ProductRepo) Update(ctx context.Context, scope tenancy.Scope, product *entity.Product) error {
	cond, args := scopeFilter(scope, 8)
	query := `UPDATE products SET name = $2, description = $3, price = $4, cost = $5, unit_measure = $6, vendor_id = $7, updated_at = now()
		WHERE id = $1 AND ` + cond
	cmd, err := r.q.Exec(ctx, query,
		append([]any{product.ID, product.Name, product.Description, product.Price, product.Cost, product.UnitMeasure, product.VendorID}, args...)...,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *ProductRepo) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	cond, args := scopeFilter(scope, 2)
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1 AND `+cond, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.OrganizationID, &p.VendorID, &p.SKU, &p.Name, &p.Description,
		&p.Price, &p.Cost, &p.UnitMeasure, &p.CreatedAt, &p.UpdatedAt,
	)
}
