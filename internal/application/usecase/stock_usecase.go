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

// StockUseCase aplica reglas de negocio para existencias por sede.
type StockUseCase struct {
	repo      repository.StockRepository
	products  repository.ProductRepository
	companies repository.CompanyRepository
}

// NewStockUseCase construye el caso de uso con sus puertos.
func NewStockUseCase(repo repository.StockRepository, products repository.ProductRepository, companies repository.CompanyRepository) *StockUseCase {
	return &StockUseCase{repo: repo, products: products, companies: companies}
}

// Upsert fija la existencia de un producto en una sede. Producto y sede deben
// existir dentro del scope; la fila se crea o se actualiza según exista.
func (uc *StockUseCase) Upsert(ctx context.Context, scope tenancy.Scope, in dto.UpsertStockRequest) (*dto.StockResponse, error) {
	product, err := uc.products.GetByID(ctx, scope, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := tenancy.EnsureAccess(product, scope); err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(ctx, scope, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if err := tenancy.EnsureAccess(company, scope); err != nil {
		return nil, err
	}
	now := time.Now()
	stock := &entity.Stock{
		ID:             uuid.New().String(),
		OrganizationID: in.OrganizationID,
		ProductID:      in.ProductID,
		CompanyID:      in.CompanyID,
		Quantity:       in.Quantity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Upsert(ctx, scope, stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// GetByID obtiene una existencia del scope.
func (uc *StockUseCase) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*dto.StockResponse, error) {
	stock, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return toStockResponse(stock), nil
}

// ListByProduct lista las existencias de un producto en todas las sedes del scope.
func (uc *StockUseCase) ListByProduct(ctx context.Context, scope tenancy.Scope, productID string) ([]dto.StockResponse, error) {
	list, err := uc.repo.ListByProduct(ctx, scope, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return items, nil
}

// List lista las existencias del scope con paginación.
func (uc *StockUseCase) List(ctx context.Context, scope tenancy.Scope, page dto.PageRequest) (*dto.StockListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una existencia del scope.
func (uc *StockUseCase) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	return uc.repo.Delete(ctx, scope, id)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		ProductID:      s.ProductID,
		CompanyID:      s.CompanyID,
		Quantity:       s.Quantity,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
