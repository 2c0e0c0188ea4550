package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
)

// OrganizationRepository es el directorio de organizaciones: el único componente
// que consulta filas de Organization directamente. "No existe" es (nil, nil),
// nunca un error; el caller interpreta la ausencia.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id int64) (*entity.Organization, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*entity.Organization, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Organization, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
