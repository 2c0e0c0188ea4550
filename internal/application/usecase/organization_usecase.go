package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/pkg/subdomain"
)

// OrganizationCache invalida entradas cacheadas de organizaciones tras una
// mutación. La caché de lectura vive en la capa de resolución de tenant.
type OrganizationCache interface {
	InvalidateOrganization(ctx context.Context, org *entity.Organization)
}

// OrganizationUseCase administra el directorio de organizaciones. Todas las
// operaciones salvo Lookup son de plataforma; el handler exige platform admin.
type OrganizationUseCase struct {
	repo  repository.OrganizationRepository
	cache OrganizationCache // puede ser nil si no hay Redis configurado
}

// NewOrganizationUseCase construye el caso de uso del directorio.
func NewOrganizationUseCase(repo repository.OrganizationRepository, cache OrganizationCache) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo, cache: cache}
}

// Create da de alta una organización en estado trial. El subdominio se
// normaliza (minúsculas, sin acentos); si viene vacío se deriva del nombre.
// Devuelve domain.ErrDuplicate si el subdominio ya está tomado.
func (uc *OrganizationUseCase) Create(ctx context.Context, in dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	sub := in.Subdomain
	if sub == "" {
		sub = in.Name
	}
	sub = subdomain.Normalize(sub)
	if !subdomain.Valid(sub) {
		return nil, fmt.Errorf("subdominio inválido %q: %w", sub, domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetBySubdomain(ctx, sub)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("subdominio %q: %w", sub, domain.ErrDuplicate)
	}
	now := time.Now()
	org := &entity.Organization{
		Subdomain:    sub,
		Name:         in.Name,
		Status:       entity.OrgStatusTrial,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// GetByID obtiene una organización por ID. (nil, ErrNotFound) si no existe.
func (uc *OrganizationUseCase) GetByID(ctx context.Context, id int64) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return toOrganizationResponse(org), nil
}

// Lookup resuelve una organización por subdominio para el acceso público.
// Sólo expone organizaciones en estado active y un subconjunto mínimo de campos.
func (uc *OrganizationUseCase) Lookup(ctx context.Context, sub string) (*dto.PublicOrganizationResponse, error) {
	org, err := uc.repo.GetBySubdomain(ctx, subdomain.Normalize(sub))
	if err != nil {
		return nil, err
	}
	if org == nil || !org.IsActive() {
		return nil, domain.ErrNotFound
	}
	return &dto.PublicOrganizationResponse{
		ID:        org.ID,
		Subdomain: org.Subdomain,
		Name:      org.Name,
	}, nil
}

// List lista organizaciones con paginación.
func (uc *OrganizationUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.OrganizationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrganizationResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrganizationResponse(o))
	}
	return &dto.OrganizationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateStatus cambia el estado de ciclo de vida e invalida la caché para que
// la resolución de tenant vea el cambio de inmediato.
func (uc *OrganizationUseCase) UpdateStatus(ctx context.Context, id int64, in dto.UpdateOrganizationStatusRequest) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(ctx, id, in.Status); err != nil {
		return nil, err
	}
	org.Status = in.Status
	org.UpdatedAt = time.Now()
	if uc.cache != nil {
		uc.cache.InvalidateOrganization(ctx, org)
	}
	return toOrganizationResponse(org), nil
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	if o == nil {
		return nil
	}
	return &dto.OrganizationResponse{
		ID:                    o.ID,
		Subdomain:             o.Subdomain,
		Name:                  o.Name,
		Status:                o.Status,
		ContactName:           o.ContactName,
		ContactEmail:          o.ContactEmail,
		Address:               o.Address,
		City:                  o.City,
		Country:               o.Country,
		OnboardingCompanyDone: o.OnboardingCompanyDone,
		OnboardingCatalogDone: o.OnboardingCatalogDone,
		OnboardingTeamDone:    o.OnboardingTeamDone,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}
