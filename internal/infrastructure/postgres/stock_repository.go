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

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, organization_id, product_id, company_id, quantity, created_at, updated_at`

// StockRepo implementación del puerto StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia para existencias. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Upsert crea o actualiza la existencia de un producto en una sede, fijada a la
// organización del scope. El conflicto por (organization_id, product_id, company_id)
// acumula sobre la fila existente.
func (r *StockRepo) Upsert(ctx context.Context, scope tenancy.Scope, stock *entity.Stock) error {
	org, err := scope.PinWrite(stock.OrganizationID)
	if err != nil {
		return err
	}
	stock.OrganizationID = org

	query := `
		INSERT INTO stock (id, organization_id, product_id, company_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organization_id, product_id, company_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(ctx, query,
		stock.ID, stock.OrganizationID, stock.ProductID, stock.CompanyID,
		stock.Quantity, stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // producto o sede inexistente en esta organización
		}
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// GetByID obtiene una existencia por ID dentro del scope. (nil, nil) si no existe o es ajena.
func (r *StockRepo) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Stock, error) {
	cond, args := scopeFilter(scope, 2)
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = $1 AND ` + cond
	var s entity.Stock
	if err := scanStock(r.q.QueryRow(ctx, query, append([]any{id}, args...)...), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// ListByProduct lista las existencias de un producto en todas las sedes del scope.
func (r *StockRepo) ListByProduct(ctx context.Context, scope tenancy.Scope, productID string) ([]*entity.Stock, error) {
	cond, args := scopeFilter(scope, 2)
	query := `SELECT ` + stockColumns + ` FROM stock WHERE product_id = $1 AND ` + cond + ` ORDER BY company_id`
	rows, err := r.q.Query(ctx, query, append([]any{productID}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	return collectStock(rows)
}

// List lista las existencias del scope con paginación.
func (r *StockRepo) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Stock, error) {
	cond, args := scopeFilter(scope, 3)
	query := `SELECT ` + stockColumns + ` FROM stock WHERE ` + cond + `
		ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	return collectStock(rows)
}

// Delete elimina una existencia dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *StockRepo) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	cond, args := scopeFilter(scope, 2)
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock WHERE id = $1 AND `+cond, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectStock(rows pgx.Rows) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := scanStock(rows, &s); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func scanStock(row pgx.Row, s *entity.Stock) error {
	return row.Scan(
		&s.ID, &s.OrganizationID, &s.ProductID, &s.CompanyID, &s.Quantity,
		&s.CreatedAt, &s.UpdatedAt,
	)
}
