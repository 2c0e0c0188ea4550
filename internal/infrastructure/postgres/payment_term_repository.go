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

var _ repository.PaymentTermRepository = (*PaymentTermRepo)(nil)

const paymentTermColumns = `id, organization_id, vendor_id, customer_id, name, days, created_at, updated_at`

// PaymentTermRepo implementación del puerto PaymentTermRepository sobre PostgreSQL (usable con pool o tx).
type PaymentTermRepo struct {
	q Querier
}

// NewPaymentTermRepository construye el adaptador de persistencia para condiciones de pago. Pasar pool o tx (Querier).
func NewPaymentTermRepository(q Querier) *PaymentTermRepo {
	return &PaymentTermRepo{q: q}
}

// Create persiste una condición de pago fijada a la organización del scope.
// Devuelve domain.ErrDuplicate si el nombre ya existe en la organización.
func (r *PaymentTermRepo) Create(ctx context.Context, scope tenancy.Scope, term *entity.PaymentTerm) error {
	org, err := scope.PinWrite(term.OrganizationID)
	if err != nil {
		return err
	}
	term.OrganizationID = org

	query := `
		INSERT INTO payment_terms (id, organization_id, vendor_id, customer_id, name, days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		term.ID, term.OrganizationID, term.VendorID, term.CustomerID,
		term.Name, term.Days, term.CreatedAt, term.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment term: %w", err)
	}
	return nil
}

// GetByID obtiene una condición de pago por ID dentro del scope. (nil, nil) si no existe o es ajena.
func (r *PaymentTermRepo) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.PaymentTerm, error) {
	cond, args := scopeFilter(scope, 2)
	query := `SELECT ` + paymentTermColumns + ` FROM payment_terms WHERE id = $1 AND ` + cond
	var t entity.PaymentTerm
	if err := scanPaymentTerm(r.q.QueryRow(ctx, query, append([]any{id}, args...)...), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment term: %w", err)
	}
	return &t, nil
}

// List lista las condiciones de pago del scope con paginación.
func (r *PaymentTermRepo) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.PaymentTerm, error) {
	cond, args := scopeFilter(scope, 3)
	query := `SELECT ` + paymentTermColumns + ` FROM payment_terms WHERE ` + cond + `
		ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list payment terms: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentTerm
	for rows.Next() {
		var t entity.PaymentTerm
		if err := scanPaymentTerm(rows, &t); err != nil {
			return nil, fmt.Errorf("scan payment term: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina una condición de pago dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *PaymentTermRepo) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	cond, args := scopeFilter(scope, 2)
	cmd, err := r.q.Exec(ctx, `DELETE FROM payment_terms WHERE id = $1 AND `+cond, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete payment term: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPaymentTerm(row pgx.Row, t *entity.PaymentTerm) error {
	return row.Scan(
		&t.ID, &t.OrganizationID, &t.VendorID, &t.CustomerID, &t.Name, &t.Days,
		&t.CreatedAt, &t.UpdatedAt,
	)
}
