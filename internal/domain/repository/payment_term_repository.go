package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// PaymentTermRepository define el puerto de persistencia para PaymentTerm (DIP),
// siempre bajo el Scope del principal.
type PaymentTermRepository interface {
	Create(ctx context.Context, scope tenancy.Scope, term *entity.PaymentTerm) error
	GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.PaymentTerm, error)
	List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.PaymentTerm, error)
	Delete(ctx context.Context, scope tenancy.Scope, id string) error
}
