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

// ProductUseCase aplica reglas de negocio para productos del catálogo.
type ProductUseCase struct {
	repo    repository.ProductRepository
	vendors repository.VendorRepository
}

// NewProductUseCase construye el caso de uso con sus puertos.
func NewProductUseCase(repo repository.ProductRepository, vendors repository.VendorRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, vendors: vendors}
}

// Create crea un producto en la organización del scope. Devuelve
// domain.ErrDuplicate si el SKU ya existe en la organización.
func (uc *ProductUseCase) Create(ctx context.Context, scope tenancy.Scope, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(ctx, scope, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.VendorID != nil {
		vendor, err := uc.vendors.GetByID(ctx, scope, *in.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrNotFound
		}
		if err := tenancy.EnsureAccess(vendor, scope); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		OrganizationID: in.OrganizationID,
		VendorID:       in.VendorID,
		SKU:            in.SKU,
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Cost:           in.Cost,
		UnitMeasure:    in.UnitMeasure,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, scope, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del scope. ErrNotFound si no existe o es de otra organización.
func (uc *ProductUseCase) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por SKU dentro del scope.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, scope tenancy.Scope, sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(ctx, scope, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista los productos del scope con paginación.
func (uc *ProductUseCase) List(ctx context.Context, scope tenancy.Scope, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica cambios parciales a un producto del scope. El SKU es inmutable.
func (uc *ProductUseCase) Update(ctx context.Context, scope tenancy.Scope, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.VendorID != nil {
		vendor, err := uc.vendors.GetByID(ctx, scope, *in.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrNotFound
		}
		if err := tenancy.EnsureAccess(vendor, scope); err != nil {
			return nil, err
		}
		product.VendorID = in.VendorID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.UnitMeasure != nil {
		product.UnitMeasure = *in.UnitMeasure
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del scope.
func (uc *ProductUseCase) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	return uc.repo.Delete(ctx, scope, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		VendorID:       p.VendorID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Cost:           p.Cost,
		UnitMeasure:    p.UnitMeasure,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
