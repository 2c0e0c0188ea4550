package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP),
// siempre bajo el Scope del principal.
type CustomerRepository interface {
	Create(ctx context.Context, scope tenancy.Scope, customer *entity.Customer) error
	GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Customer, error)
	List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, scope tenancy.Scope, customer *entity.Customer) error
	Delete(ctx context.Context, scope tenancy.Scope, id string) error
}
