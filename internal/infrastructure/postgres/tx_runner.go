package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	applifecycle "github.com/jhoicas/multiempresa-api/internal/application/lifecycle"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
)

// Ensure TxRunner implements lifecycle.ResetTxRunner.
var _ applifecycle.ResetTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la única
// vía de mutación multi-colección del sistema: el reset corre entero dentro de
// una tx con aislamiento read-committed o superior, así los lectores
// concurrentes nunca ven un tenant borrado a medias.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReset inicia una transacción, ejecuta fn con el repo de reset atado a la tx
// y hace Commit o Rollback. Si fn devuelve error no se persiste ningún borrado.
func (r *TxRunner) RunReset(ctx context.Context, fn func(reset repository.ResetRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewResetRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
