package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/multiempresa-api/internal/application/auth"
	"github.com/jhoicas/multiempresa-api/internal/application/lifecycle"
	"github.com/jhoicas/multiempresa-api/internal/application/usecase"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/multiempresa-api/internal/infrastructure/rediscache"
	httpRouter "github.com/jhoicas/multiempresa-api/internal/interfaces/http"
	"github.com/jhoicas/multiempresa-api/pkg/config"
	"github.com/jhoicas/multiempresa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	termRepo := postgres.NewPaymentTermRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Directorio de organizaciones: con Redis configurado, las lecturas de la
	// resolución de tenant pasan por caché; sin Redis, directo a PostgreSQL.
	var orgDirectory repository.OrganizationRepository = orgRepo
	var orgCache *rediscache.OrganizationCache
	if cfg.Redis.URL != "" {
		orgCache, err = rediscache.New(ctx, cfg.Redis.URL, time.Duration(cfg.Redis.TTLMinutes)*time.Minute)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, resolución de tenant sin caché")
		} else {
			defer orgCache.Close()
			orgDirectory = rediscache.NewCachedDirectory(orgRepo, orgCache)
		}
	}

	var cacheInvalidator usecase.OrganizationCache
	if orgCache != nil {
		cacheInvalidator = orgCache
	}
	organizationUC := usecase.NewOrganizationUseCase(orgDirectory, cacheInvalidator)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, companyRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, companyRepo)
	productUC := usecase.NewProductUseCase(productRepo, vendorRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo, companyRepo)
	termUC := usecase.NewPaymentTermUseCase(termRepo, vendorRepo, customerRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	resetUC := lifecycle.NewResetUseCase(txRunner, orgRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Multiempresa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrganizationUC: organizationUC,
		CompanyUC:      companyUC,
		VendorUC:       vendorUC,
		CustomerUC:     customerUC,
		ProductUC:      productUC,
		StockUC:        stockUC,
		PaymentTermUC:  termUC,
		NotificationUC: notificationUC,
		ResetUC:        resetUC,
		AuthUC:         authUC,
		OrgDirectory:   orgDirectory,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
