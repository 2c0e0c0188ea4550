package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// CompanyUseCase aplica reglas de negocio para sedes. Todas las operaciones
// reciben el Scope del principal; el aislamiento lo impone el repositorio.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una sede nueva en la organización del scope. Devuelve
// domain.ErrDuplicate si el nombre ya existe en la organización.
func (uc *CompanyUseCase) Create(ctx context.Context, scope tenancy.Scope, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByName(ctx, scope, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:             uuid.New().String(),
		OrganizationID: in.OrganizationID,
		Name:           in.Name,
		TaxID:          in.TaxID,
		Address:        in.Address,
		Phone:          in.Phone,
		Email:          in.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, scope, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una sede del scope. ErrNotFound si no existe o pertenece a
// otra organización.
func (uc *CompanyUseCase) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista las sedes del scope con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, scope tenancy.Scope, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica cambios parciales a una sede del scope.
func (uc *CompanyUseCase) Update(ctx context.Context, scope tenancy.Scope, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.TaxID != nil {
		company.TaxID = *in.TaxID
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina una sede del scope. ErrNotFound si no existe o es de otra organización.
func (uc *CompanyUseCase) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	return uc.repo.Delete(ctx, scope, id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		TaxID:          c.TaxID,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
