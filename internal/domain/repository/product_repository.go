package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// ProductRepository define el puerto de persistencia para Product (DIP),
// siempre bajo el Scope del principal.
type ProductRepository interface {
	Create(ctx context.Context, scope tenancy.Scope, product *entity.Product) error
	GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, scope tenancy.Scope, sku string) (*entity.Product, error)
	List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, scope tenancy.Scope, product *entity.Product) error
	Delete(ctx context.Context, scope tenancy.Scope, id string) error
}
