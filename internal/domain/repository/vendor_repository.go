package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// VendorRepository define el puerto de persistencia para Vendor (DIP),
// siempre bajo el Scope del principal.
type VendorRepository interface {
	Create(ctx context.Context, scope tenancy.Scope, vendor *entity.Vendor) error
	GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Vendor, error)
	List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Vendor, error)
	Update(ctx context.Context, scope tenancy.Scope, vendor *entity.Vendor) error
	Delete(ctx context.Context, scope tenancy.Scope, id string) error
}
