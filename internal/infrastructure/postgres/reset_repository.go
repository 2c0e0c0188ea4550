package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/lifecycle"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
)

var _ repository.ResetRepository = (*ResetRepo)(nil)

// deleteByOrg: DELETE de una colección restringido a una organización. El SQL de
// cada colección es estático; una colección fuera del mapa es un error de
// programación, no de datos.
var deleteByOrg = map[lifecycle.Collection]string{
	lifecycle.Notifications: `DELETE FROM notifications WHERE organization_id = $1`,
	lifecycle.Stock:         `DELETE FROM stock WHERE organization_id = $1`,
	lifecycle.PaymentTerms:  `DELETE FROM payment_terms WHERE organization_id = $1`,
	lifecycle.Products:      `DELETE FROM products WHERE organization_id = $1`,
	lifecycle.Customers:     `DELETE FROM customers WHERE organization_id = $1`,
	lifecycle.Vendors:       `DELETE FROM vendors WHERE organization_id = $1`,
	lifecycle.Companies:     `DELETE FROM companies WHERE organization_id = $1`,
	lifecycle.Users:         `DELETE FROM users WHERE organization_id = $1 AND is_platform_admin = FALSE`,
	lifecycle.Organizations: `DELETE FROM organizations WHERE id = $1`,
}

// deleteAll: DELETE de una colección para todas las organizaciones. Los
// administradores de plataforma sobreviven siempre al reset total.
var deleteAll = map[lifecycle.Collection]string{
	lifecycle.Notifications: `DELETE FROM notifications`,
	lifecycle.Stock:         `DELETE FROM stock`,
	lifecycle.PaymentTerms:  `DELETE FROM payment_terms`,
	lifecycle.Products:      `DELETE FROM products`,
	lifecycle.Customers:     `DELETE FROM customers`,
	lifecycle.Vendors:       `DELETE FROM vendors`,
	lifecycle.Companies:     `DELETE FROM companies`,
	lifecycle.Users:         `DELETE FROM users WHERE is_platform_admin = FALSE`,
	lifecycle.Organizations: `DELETE FROM organizations`,
}

// ResetRepo implementación del puerto ResetRepository. Se construye siempre
// sobre la tx del TxRunner: nunca borra fuera de una transacción.
type ResetRepo struct {
	q Querier
}

// NewResetRepository construye el adaptador de borrado masivo sobre una tx (Querier).
func NewResetRepository(q Querier) *ResetRepo {
	return &ResetRepo{q: q}
}

// DeleteByOrganization borra las filas de la colección de una organización y
// devuelve el conteo.
func (r *ResetRepo) DeleteByOrganization(ctx context.Context, col lifecycle.Collection, orgID int64) (int64, error) {
	query, ok := deleteByOrg[col]
	if !ok {
		return 0, fmt.Errorf("%w: colección desconocida %q", domain.ErrInvalidInput, col)
	}
	cmd, err := r.q.Exec(ctx, query, orgID)
	if err != nil {
		return 0, fmt.Errorf("delete %s (org %d): %w", col, orgID, err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteAll borra las filas de la colección de todas las organizaciones y
// devuelve el conteo.
func (r *ResetRepo) DeleteAll(ctx context.Context, col lifecycle.Collection) (int64, error) {
	query, ok := deleteAll[col]
	if !ok {
		return 0, fmt.Errorf("%w: colección desconocida %q", domain.ErrInvalidInput, col)
	}
	cmd, err := r.q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", col, err)
	}
	return cmd.RowsAffected(), nil
}

// ResetOnboarding devuelve los flags de onboarding de la organización a false.
func (r *ResetRepo) ResetOnboarding(ctx context.Context, orgID int64) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE organizations
		SET onboarding_company_done = FALSE,
		    onboarding_catalog_done = FALSE,
		    onboarding_team_done = FALSE,
		    updated_at = now()
		WHERE id = $1`, orgID)
	if err != nil {
		return fmt.Errorf("reset onboarding (org %d): %w", orgID, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
