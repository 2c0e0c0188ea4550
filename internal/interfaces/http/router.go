package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/multiempresa-api/internal/application/auth"
	"github.com/jhoicas/multiempresa-api/internal/application/lifecycle"
	"github.com/jhoicas/multiempresa-api/internal/application/usecase"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganizationUC *usecase.OrganizationUseCase
	CompanyUC      *usecase.CompanyUseCase
	VendorUC       *usecase.VendorUseCase
	CustomerUC     *usecase.CustomerUseCase
	ProductUC      *usecase.ProductUseCase
	StockUC        *usecase.StockUseCase
	PaymentTermUC  *usecase.PaymentTermUseCase
	NotificationUC *usecase.NotificationUseCase
	ResetUC        *lifecycle.ResetUseCase
	AuthUC         *auth.AuthUseCase
	OrgDirectory   repository.OrganizationRepository
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API. Todo /api pasa por el middleware de
// contexto de tenancy; la resolución de organización es opcional en las rutas
// públicas y de plataforma, y obligatoria en las rutas de tenant.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", ContextMiddleware())

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Lookup público de organización por subdominio
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	api.Get("/organizations/lookup/:subdomain", orgHandler.Lookup)

	// Rutas de tenant: Bearer Token + organización resuelta obligatoria.
	// El middleware se monta por recurso para no interceptar /admin ni /platform.
	tenantMW := func(group fiber.Router) fiber.Router {
		group.Use(TenantMiddleware(deps.OrgDirectory, deps.Log, true), AuthMiddleware(deps.JWTSecret))
		return group
	}

	users := tenantMW(api.Group("/users"))
	users.Use(RequireAdmin())
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)

	companies := tenantMW(api.Group("/companies"))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	vendors := tenantMW(api.Group("/vendors"))
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	customers := tenantMW(api.Group("/customers"))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	products := tenantMW(api.Group("/products"))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	stock := tenantMW(api.Group("/stock"))
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Put("/", stockHandler.Upsert)
	stock.Get("/", stockHandler.List)
	stock.Get("/product/:productId", stockHandler.ListByProduct)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Delete("/:id", stockHandler.Delete)

	terms := tenantMW(api.Group("/payment-terms"))
	termHandler := NewPaymentTermHandler(deps.PaymentTermUC)
	terms.Post("/", termHandler.Create)
	terms.Get("/", termHandler.List)
	terms.Get("/:id", termHandler.GetByID)
	terms.Delete("/:id", termHandler.Delete)

	notifications := tenantMW(api.Group("/notifications"))
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/", RequireAdmin(), notificationHandler.Create)
	notifications.Get("/", notificationHandler.ListMine)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Reset de organización: admin del tenant (o plataforma indicando organización)
	resetHandler := NewResetHandler(deps.ResetUC)
	admin := api.Group("/admin",
		TenantMiddleware(deps.OrgDirectory, deps.Log, false),
		AuthMiddleware(deps.JWTSecret),
		RequireAdmin(),
	)
	admin.Post("/reset", resetHandler.ResetOrganization)

	// Rutas de plataforma: sin organización resuelta, platform admin obligatorio
	platform := api.Group("/platform",
		AuthMiddleware(deps.JWTSecret),
		RequirePlatformAdmin(),
	)
	platform.Post("/organizations", orgHandler.Create)
	platform.Get("/organizations", orgHandler.List)
	platform.Get("/organizations/:id", orgHandler.GetByID)
	platform.Put("/organizations/:id/status", orgHandler.UpdateStatus)
	platform.Post("/reset", resetHandler.ResetPlatform)
}
