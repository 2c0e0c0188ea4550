package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los usuarios no son entidades de tenant puro (organization_id es nullable),
// así que no pasan por el enforcer de scope: los consulta la capa de auth.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByOrganization(ctx context.Context, orgID int64, limit, offset int) ([]*entity.User, error)
}
