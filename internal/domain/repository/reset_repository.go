package repository

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/lifecycle"
)

// ResetRepository es el único puerto autorizado a mutar varias colecciones en
// bloque. Vive siempre dentro de una transacción (ver el TxRunner de
// infraestructura): o se borran todas las colecciones del scope pedido, o ninguna.
type ResetRepository interface {
	// DeleteByOrganization borra las filas de la colección pertenecientes a una
	// organización y devuelve cuántas eliminó.
	DeleteByOrganization(ctx context.Context, col lifecycle.Collection, orgID int64) (int64, error)

	// DeleteAll borra las filas de la colección de todas las organizaciones.
	// Para users excluye siempre a los administradores de plataforma.
	DeleteAll(ctx context.Context, col lifecycle.Collection) (int64, error)

	// ResetOnboarding devuelve los flags de onboarding de la organización a sus
	// valores por defecto.
	ResetOnboarding(ctx context.Context, orgID int64) error
}
