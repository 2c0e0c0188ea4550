package lifecycle

import (
	"context"
	"fmt"

	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/lifecycle"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
	"github.com/jhoicas/multiempresa-api/pkg/logger"
)

// Scopes admitidos en una petición de reset.
const (
	ScopeOrganization = "organization"
	ScopeAll          = "all"
)

// ResetTxRunner ejecuta un reset completo dentro de una transacción: si fn
// devuelve error no se persiste ningún borrado.
type ResetTxRunner interface {
	RunReset(ctx context.Context, fn func(reset repository.ResetRepository) error) error
}

// ResetUseCase orquesta el reinicio de datos. El orden de borrado se deriva del
// grafo estático de colecciones, nunca se escribe a mano aquí.
type ResetUseCase struct {
	runner ResetTxRunner
	orgs   repository.OrganizationRepository
	log    *logger.Logger
}

// NewResetUseCase construye el caso de uso de reset.
func NewResetUseCase(runner ResetTxRunner, orgs repository.OrganizationRepository, log *logger.Logger) *ResetUseCase {
	return &ResetUseCase{runner: runner, orgs: orgs, log: log}
}

// Reset ejecuta el reinicio pedido por el principal autenticado.
//
// Un administrador de organización sólo puede reiniciar los datos de negocio
// de su propia organización. Un administrador de plataforma puede reiniciar
// cualquier organización (indicando organization_id) o la plataforma completa
// con scope "all". No hay reintentos automáticos: si algo falla, la tx se
// revierte y el caller decide si vuelve a intentar.
func (uc *ResetUseCase) Reset(ctx context.Context, p tenancy.Principal, req dto.ResetRequest) (*dto.ResetResponse, error) {
	switch req.Scope {
	case ScopeOrganization:
		orgID, err := uc.authorizeOrganization(p, req.OrganizationID)
		if err != nil {
			return nil, err
		}
		return uc.resetOrganization(ctx, p, orgID)
	case ScopeAll:
		if !p.IsPlatform() {
			return nil, fmt.Errorf("reset total: %w", domain.ErrForbidden)
		}
		return uc.resetAll(ctx, p)
	default:
		return nil, fmt.Errorf("scope de reset desconocido %q: %w", req.Scope, domain.ErrInvalidInput)
	}
}

// authorizeOrganization resuelve sobre qué organización actúa el reset y valida
// que el principal tenga derecho sobre ella.
func (uc *ResetUseCase) authorizeOrganization(p tenancy.Principal, requested int64) (int64, error) {
	if p.IsPlatform() {
		if requested == 0 {
			return 0, fmt.Errorf("organization_id requerido para reset de organización: %w", domain.ErrInvalidInput)
		}
		return requested, nil
	}
	if p.Role != entity.RoleAdmin {
		return 0, fmt.Errorf("reset de organización: %w", domain.ErrForbidden)
	}
	own := *p.OrganizationID
	if requested != 0 && requested != own {
		return 0, fmt.Errorf("reset de otra organización: %w", domain.ErrForbidden)
	}
	return own, nil
}

// resetOrganization borra los datos de negocio de una organización en orden de
// dependencias, conserva usuarios y organización, y reinicia el onboarding.
func (uc *ResetUseCase) resetOrganization(ctx context.Context, p tenancy.Principal, orgID int64) (*dto.ResetResponse, error) {
	org, err := uc.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, fmt.Errorf("organización %d: %w", orgID, domain.ErrNotFound)
	}

	deleted := make(map[string]int64)
	err = uc.runner.RunReset(ctx, func(reset repository.ResetRepository) error {
		for _, col := range lifecycle.BusinessOrder() {
			n, err := reset.DeleteByOrganization(ctx, col, orgID)
			if err != nil {
				return fmt.Errorf("borrar %s de la organización %d: %w", col, orgID, err)
			}
			deleted[string(col)] = n
		}
		if err := reset.ResetOnboarding(ctx, orgID); err != nil {
			return fmt.Errorf("reiniciar onboarding de la organización %d: %w", orgID, err)
		}
		return nil
	})

	uc.audit(p, ScopeOrganization, orgID, deleted, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrResetFailed, err)
	}
	return &dto.ResetResponse{Success: true, Deleted: deleted}, nil
}

// resetAll vacía todas las colecciones de la plataforma, usuarios y
// organizaciones incluidos (los administradores de plataforma sobreviven).
func (uc *ResetUseCase) resetAll(ctx context.Context, p tenancy.Principal) (*dto.ResetResponse, error) {
	deleted := make(map[string]int64)
	err := uc.runner.RunReset(ctx, func(reset repository.ResetRepository) error {
		for _, col := range lifecycle.FullOrder() {
			n, err := reset.DeleteAll(ctx, col)
			if err != nil {
				return fmt.Errorf("vaciar %s: %w", col, err)
			}
			deleted[string(col)] = n
		}
		return nil
	})

	uc.audit(p, ScopeAll, 0, deleted, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrResetFailed, err)
	}
	return &dto.ResetResponse{Success: true, Deleted: deleted}, nil
}

// audit deja constancia del reset, exitoso o no, con quién lo pidió y cuánto borró.
func (uc *ResetUseCase) audit(p tenancy.Principal, scope string, orgID int64, deleted map[string]int64, err error) {
	ev := uc.log.Audit().
		Str("action", "reset").
		Str("scope", scope).
		Str("principal_id", p.ID).
		Bool("platform_admin", p.IsPlatform()).
		Bool("success", err == nil)
	if orgID != 0 {
		ev = ev.Int64("organization_id", orgID)
	}
	if len(deleted) > 0 {
		ev = ev.Interface("deleted", deleted)
	}
	if err != nil {
		ev = ev.Str("error", err.Error())
	}
	ev.Msg("reset de datos ejecutado")
}
