package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Todo método recibe el Scope del principal: la implementación inyecta el
// predicado de organización y jamás devuelve filas de otro tenant.
type CompanyRepository interface {
	Create(ctx context.Context, scope tenancy.Scope, company *entity.Company) error
	GetByID(ctx context.Context, scope tenancy.Scope, id string) (*entity.Company, error)
	GetByName(ctx context.Context, scope tenancy.Scope, name string) (*entity.Company, error)
	List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Company, error)
	Update(ctx context.Context, scope tenancy.Scope, company *entity.Company) error
	Delete(ctx context.Context, scope tenancy.Scope, id string) error
}
