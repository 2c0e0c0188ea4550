package rediscache

import (
	"context"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*CachedDirectory)(nil)

// CachedDirectory decora el directorio de organizaciones con la caché Redis:
// las lecturas por ID y subdominio pasan primero por caché, las mutaciones van
// directo al repositorio e invalidan. Un fallo de Redis degrada a miss, nunca
// rompe la petición.
type CachedDirectory struct {
	repo  repository.OrganizationRepository
	cache *OrganizationCache
}

// NewCachedDirectory construye el decorador sobre el repositorio real.
func NewCachedDirectory(repo repository.OrganizationRepository, cache *OrganizationCache) *CachedDirectory {
	return &CachedDirectory{repo: repo, cache: cache}
}

// Create pasa directo al repositorio.
func (d *CachedDirectory) Create(ctx context.Context, org *entity.Organization) error {
	return d.repo.Create(ctx, org)
}

// GetByID lee de caché y, en miss, del repositorio (cacheando el resultado).
func (d *CachedDirectory) GetByID(ctx context.Context, id int64) (*entity.Organization, error) {
	if org, ok := d.cache.Get(ctx, KeyByID(id)); ok {
		return org, nil
	}
	org, err := d.repo.GetByID(ctx, id)
	if err != nil || org == nil {
		return org, err
	}
	d.cache.Set(ctx, KeyByID(org.ID), org)
	d.cache.Set(ctx, KeyBySubdomain(org.Subdomain), org)
	return org, nil
}

// GetBySubdomain lee de caché y, en miss, del repositorio (cacheando el resultado).
func (d *CachedDirectory) GetBySubdomain(ctx context.Context, sub string) (*entity.Organization, error) {
	if org, ok := d.cache.Get(ctx, KeyBySubdomain(sub)); ok {
		return org, nil
	}
	org, err := d.repo.GetBySubdomain(ctx, sub)
	if err != nil || org == nil {
		return org, err
	}
	d.cache.Set(ctx, KeyByID(org.ID), org)
	d.cache.Set(ctx, KeyBySubdomain(org.Subdomain), org)
	return org, nil
}

// List pasa directo al repositorio: los listados de plataforma no se cachean.
func (d *CachedDirectory) List(ctx context.Context, limit, offset int) ([]*entity.Organization, error) {
	return d.repo.List(ctx, limit, offset)
}

// UpdateStatus muta en el repositorio e invalida las entradas de la organización.
func (d *CachedDirectory) UpdateStatus(ctx context.Context, id int64, status string) error {
	if err := d.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	if org, err := d.repo.GetByID(ctx, id); err == nil && org != nil {
		d.cache.InvalidateOrganization(ctx, org)
	} else {
		d.cache.Invalidate(ctx, KeyByID(id))
	}
	return nil
}
