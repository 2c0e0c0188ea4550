package entity

import "time"

// Notification representa un aviso dirigido a un usuario de la organización.
type Notification struct {
	ID             string
	OrganizationID int64
	UserID         string
	Title          string
	Body           string
	ReadAt         *time.Time
	CreatedAt      time.Time
}

// TenantID implementa tenancy.Owned.
func (n *Notification) TenantID() int64 { return n.OrganizationID }
