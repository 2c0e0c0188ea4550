package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// StockRepository define el puerto de persistencia para Stock (DIP),
// siempre bajo el Scope del principal.
type StockRepository interface {
	Upsert(ctx context.Context, scope tenancy.Scope, stock *entity.Stock) error
	GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Stock, error)
	ListByProduct(ctx context.Context, scope tenancy.Scope, productID string) ([]*entity.Stock, error)
	List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Stock, error)
	Delete(ctx context.Context, scope tenancy.Scope, id string) error
}
