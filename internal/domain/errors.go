package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Errores del núcleo multi-tenant.
var (
	// ErrTenantNotResolved indica que una ruta que exige tenant no pudo resolver
	// la organización (ni header, ni subdominio, ni path). Error de cliente.
	ErrTenantNotResolved = errors.New("no se pudo resolver la organización de la petición")

	// ErrMissingTenantContext indica que una operación con scope se ejecutó sin
	// organización disponible. Violación de contrato interno (error de servidor).
	ErrMissingTenantContext = errors.New("operación sin contexto de organización")

	// ErrCrossTenantWrite indica que una escritura intentó fijar una organización
	// distinta a la del scope del principal.
	ErrCrossTenantWrite = errors.New("escritura fuera de la organización del principal")

	// ErrResetFailed indica que el borrado masivo falló y se revirtió por completo.
	// Nunca se reintenta automáticamente: el caller debe confirmar estado y reinvocar.
	ErrResetFailed = errors.New("reset fallido: la transacción fue revertida")
)
