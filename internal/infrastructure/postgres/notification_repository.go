package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación fijada a la organización del scope.
func (r *NotificationRepo) Create(ctx context.Context, scope tenancy.Scope, n *entity.Notification) error {
	org, err := scope.PinWrite(n.OrganizationID)
	if err != nil {
		return err
	}
	n.OrganizationID = org

	query := `
		INSERT INTO notifications (id, organization_id, user_id, title, body, read_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(ctx, query,
		n.ID, n.OrganizationID, n.UserID, n.Title, n.Body, n.ReadAt, n.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // destinatario inexistente
		}
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByUser lista las notificaciones de un usuario dentro del scope, más recientes primero.
func (r *NotificationRepo) ListByUser(ctx context.Context, scope tenancy.Scope, userID string, limit, offset int) ([]*entity.Notification, error) {
	cond, args := scopeFilter(scope, 4)
	query := `SELECT id, organization_id, user_id, title, body, read_at, created_at
		FROM notifications WHERE user_id = $1 AND ` + cond + `
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, append([]any{userID, limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := scanNotification(rows, &n); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una notificación como leída dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *NotificationRepo) MarkRead(ctx context.Context, scope tenancy.Scope, id string) error {
	cond, args := scopeFilter(scope, 2)
	cmd, err := r.q.Exec(ctx,
		`UPDATE notifications SET read_at = now() WHERE id = $1 AND read_at IS NULL AND `+cond,
		append([]any{id}, args...)...,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una notificación dentro del scope. Fuera del scope: domain.ErrNotFound.
func (r *NotificationRepo) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	cond, args := scopeFilter(scope, 2)
	cmd, err := r.q.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND `+cond, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanNotification(row pgx.Row, n *entity.Notification) error {
	return row.Scan(&n.ID, &n.OrganizationID, &n.UserID, &n.Title, &n.Body, &n.ReadAt, &n.CreatedAt)
}
