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

// CustomerUseCase aplica reglas de negocio para clientes.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	companies repository.CompanyRepository
}

// NewCustomerUseCase construye el caso de uso con sus puertos.
func NewCustomerUseCase(repo repository.CustomerRepository, companies repository.CompanyRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, companies: companies}
}

// Create crea un cliente en la organización del scope. Si referencia una sede,
// ésta debe existir dentro del mismo scope.
func (uc *CustomerUseCase) Create(ctx context.Context, scope tenancy.Scope, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.CompanyID != nil {
		company, err := uc.companies.GetByID(ctx, scope, *in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
		if err := tenancy.EnsureAccess(company, scope); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:             uuid.New().String(),
		OrganizationID: in.OrganizationID,
		CompanyID:      in.CompanyID,
		Name:           in.Name,
		TaxID:          in.TaxID,
		Email:          in.Email,
		Phone:          in.Phone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, scope, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente del scope. ErrNotFound si no existe o es de otra organización.
func (uc *CustomerUseCase) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes del scope con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, scope tenancy.Scope, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica cambios parciales a un cliente del scope.
func (uc *CustomerUseCase) Update(ctx context.Context, scope tenancy.Scope, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.CompanyID != nil {
		company, err := uc.companies.GetByID(ctx, scope, *in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
		if err := tenancy.EnsureAccess(company, scope); err != nil {
			return nil, err
		}
		customer.CompanyID = in.CompanyID
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.TaxID != nil {
		customer.TaxID = *in.TaxID
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente del scope.
func (uc *CustomerUseCase) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	return uc.repo.Delete(ctx, scope, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		CompanyID:      c.CompanyID,
		Name:           c.Name,
		TaxID:          c.TaxID,
		Email:          c.Email,
		Phone:          c.Phone,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
