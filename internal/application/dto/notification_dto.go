package dto

import "time"

// CreateNotificationRequest entrada para crear un aviso dirigido a un usuario.
type CreateNotificationRequest struct {
	OrganizationID int64  `json:"organization_id,omitempty"`
	UserID         string `json:"user_id" validate:"required,uuid"`
	Title          string `json:"title" validate:"required,min=1,max=200"`
	Body           string `json:"body"`
}

// NotificationResponse salida de un aviso.
type NotificationResponse struct {
	ID             string     `json:"id"`
	OrganizationID int64      `json:"organization_id"`
	UserID         string     `json:"user_id"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NotificationListResponse lista de avisos de un usuario.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
}
