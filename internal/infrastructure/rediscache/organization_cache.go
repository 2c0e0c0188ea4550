package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

// OrganizationCache cachea resoluciones de organización en Redis para no
// golpear el directorio en cada petición. Un fallo de Redis degrada a cache
// miss: la resolución sigue funcionando contra la DB.
type OrganizationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New conecta con Redis a partir de una URL (redis://...) y valida con un ping.
func New(ctx context.Context, url string, ttl time.Duration) (*OrganizationCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OrganizationCache{client: client, ttl: ttl}, nil
}

// KeyByID y KeyBySubdomain construyen las claves de cache de una organización.
func KeyByID(id int64) string          { return fmt.Sprintf("org:id:%d", id) }
func KeyBySubdomain(sub string) string { return "org:sub:" + sub }

// Get devuelve la organización cacheada bajo key, si existe y deserializa bien.
func (c *OrganizationCache) Get(ctx context.Context, key string) (*entity.Organization, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var org entity.Organization
	if err := json.Unmarshal(raw, &org); err != nil {
		// Entrada corrupta: eliminarla y tratar como miss.
		_ = c.client.Del(ctx, key).Err()
		return nil, false
	}
	return &org, true
}

// Set cachea la organización bajo key con el TTL configurado.
func (c *OrganizationCache) Set(ctx context.Context, key string, org *entity.Organization) {
	raw, err := json.Marshal(org)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate elimina una entrada (tras cambios de estado o reset total).
func (c *OrganizationCache) Invalidate(ctx context.Context, key string) {
	_ = c.client.Del(ctx, key).Err()
}

// InvalidateOrganization elimina las dos entradas de una organización,
// por ID y por subdominio.
func (c *OrganizationCache) InvalidateOrganization(ctx context.Context, org *entity.Organization) {
	_ = c.client.Del(ctx, KeyByID(org.ID), KeyBySubdomain(org.Subdomain)).Err()
}

// Close libera la conexión con Redis.
func (c *OrganizationCache) Close() error {
	return c.client.Close()
}
