package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// NotificationUseCase aplica reglas de negocio para avisos a usuarios.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso con el puerto de persistencia.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// Create crea un aviso para un usuario de la organización del scope.
func (uc *NotificationUseCase) Create(ctx context.Context, scope tenancy.Scope, in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	n := &entity.Notification{
		ID:             uuid.New().String(),
		OrganizationID: in.OrganizationID,
		UserID:         in.UserID,
		Title:          in.Title,
		Body:           in.Body,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, scope, n); err != nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// ListByUser lista los avisos de un usuario dentro del scope.
func (uc *NotificationUseCase) ListByUser(ctx context.Context, scope tenancy.Scope, userID string, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByUser(ctx, scope, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{Items: items}, nil
}

// MarkRead marca un aviso del scope como leído.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, scope tenancy.Scope, id string) error {
	return uc.repo.MarkRead(ctx, scope, id)
}

// Delete elimina un aviso del scope.
func (uc *NotificationUseCase) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	return uc.repo.Delete(ctx, scope, id)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:             n.ID,
		OrganizationID: n.OrganizationID,
		UserID:         n.UserID,
		Title:          n.Title,
		Body:           n.Body,
		ReadAt:         n.ReadAt,
		CreatedAt:      n.CreatedAt,
	}
}
