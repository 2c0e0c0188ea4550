package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// PaymentTermUseCase aplica reglas de negocio para condiciones de pago.
type PaymentTermUseCase struct {
	repo      repository.PaymentTermRepository
	vendors   repository.VendorRepository
	customers repository.CustomerRepository
}

// NewPaymentTermUseCase construye el caso de uso con sus puertos.
func NewPaymentTermUseCase(repo repository.PaymentTermRepository, vendors repository.VendorRepository, customers repository.CustomerRepository) *PaymentTermUseCase {
	return &PaymentTermUseCase{repo: repo, vendors: vendors, customers: customers}
}

// Create crea una condición de pago ligada a un proveedor o a un cliente del
// scope (exactamente uno de los dos).
func (uc *PaymentTermUseCase) Create(ctx context.Context, scope tenancy.Scope, in dto.CreatePaymentTermRequest) (*dto.PaymentTermResponse, error) {
	if (in.VendorID == nil) == (in.CustomerID == nil) {
		return nil, fmt.Errorf("la condición de pago debe referir a un proveedor o a un cliente: %w", domain.ErrInvalidInput)
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
	if in.CustomerID != nil {
		customer, err := uc.customers.GetByID(ctx, scope, *in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		if err := tenancy.EnsureAccess(customer, scope); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	term := &entity.PaymentTerm{
		ID:             uuid.New().String(),
		OrganizationID: in.OrganizationID,
		VendorID:       in.VendorID,
		CustomerID:     in.CustomerID,
		Name:           in.Name,
		Days:           in.Days,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, scope, term); err != nil {
		return nil, err
	}
	return toPaymentTermResponse(term), nil
}

// GetByID obtiene una condición de pago del scope.
func (uc *PaymentTermUseCase) GetByID(ctx context.Context, scope tenancy.Scope, id string) (*dto.PaymentTermResponse, error) {
	term, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentTermResponse(term), nil
}

// List lista las condiciones de pago del scope con paginación.
func (uc *PaymentTermUseCase) List(ctx context.Context, scope tenancy.Scope, page dto.PageRequest) (*dto.PaymentTermListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentTermResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toPaymentTermResponse(t))
	}
	return &dto.PaymentTermListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una condición de pago del scope.
func (uc *PaymentTermUseCase) Delete(ctx context.Context, scope tenancy.Scope, id string) error {
	return uc.repo.Delete(ctx, scope, id)
}

func toPaymentTermResponse(t *entity.PaymentTerm) *dto.PaymentTermResponse {
	if t == nil {
		return nil
	}
	return &dto.PaymentTermResponse{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		VendorID:       t.VendorID,
		CustomerID:     t.CustomerID,
		Name:           t.Name,
		Days:           t.Days,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
