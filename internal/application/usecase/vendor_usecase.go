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

// VendorUseCase aplica reglas de negocio para proveedores.
type VendorUseCase struct {
	repo      repository.VendorRepository
	companies repository.CompanyRepository
}

// NewVendorUseCase construye el caso de uso con sus puertos.
func NewVendorUseCase(repo repository.VendorRepository, companies repository.CompanyRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo, companies: companies}
}

// Create crea un proveedor en la organización del scope. Si referencia una
// sede, ésta debe existir dentro del mismo scope.
func (uc *VendorUseCase) Create(ctx context.Context, scope tenancy.Scope, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
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
	vendor := &entity.Vendor{
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
	if err := uc.repo.Create(ctx, scope, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor del scope. ErrNotFound si no existe o es de otra organización.
func (uc *VendorUseCase) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return toVendorResponse(vendor), nil
}

// List lista los proveedores del scope con paginación.
func (uc *VendorUseCase) List(ctx context.Context, scope tenancy.Scope, page dto.PageRequest) (*dto.VendorListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	return &dto.VendorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica cambios parciales a un proveedor del scope.
func (uc *VendorUseCase) Update(ctx context.Context, scope tenancy.Scope, id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
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
		vendor.CompanyID = in.CompanyID
	}
	if in.Name != nil {
		vendor.Name = *in.Name
	}
	if in.TaxID != nil {
		vendor.TaxID = *in.TaxID
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Delete elimina un proveedor del scope.
func (uc *VendorUseCase) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	return uc.repo.Delete(ctx, scope, id)
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:             v.ID,
		OrganizationID: v.OrganizationID,
		CompanyID:      v.CompanyID,
		Name:           v.Name,
		TaxID:          v.TaxID,
		Email:          v.Email,
		Phone:          v.Phone,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}
