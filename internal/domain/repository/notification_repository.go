package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// NotificationRepository define el puerto de persistencia para Notification (DIP),
// siempre bajo el Scope del principal.
type NotificationRepository interface {
	Create(ctx context.Context, scope tenancy.Scope, n *entity.Notification) error
	ListByUser(ctx context.Context, scope tenancy.Scope, userID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, scope tenancy.Scope, id string) error
	Delete(ctx context.Context, scope tenancy.Scope, id string) error
}
