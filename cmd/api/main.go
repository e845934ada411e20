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

	appanalytics "github.com/jcastror/resto-inventario/internal/application/analytics"
	"github.com/jcastror/resto-inventario/internal/application/auth"
	"github.com/jcastror/resto-inventario/internal/application/inventory"
	appkardex "github.com/jcastror/resto-inventario/internal/application/kardex"
	"github.com/jcastror/resto-inventario/internal/application/usecase"
	infraexcel "github.com/jcastror/resto-inventario/internal/infrastructure/excel"
	infrapdf "github.com/jcastror/resto-inventario/internal/infrastructure/pdf"
	"github.com/jcastror/resto-inventario/internal/infrastructure/postgres"
	httpRouter "github.com/jcastror/resto-inventario/internal/interfaces/http"
	"github.com/jcastror/resto-inventario/pkg/config"
	"github.com/jcastror/resto-inventario/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	containerRepo := postgres.NewContainerRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	eventRepo := postgres.NewEventLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, eventRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, stockRepo, eventRepo)
	containerUC := usecase.NewContainerUseCase(containerRepo, stockRepo, eventRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo, userRepo, eventRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo, eventRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, containerRepo, eventRepo)
	kardexUC := appkardex.NewUseCase(productRepo, movementRepo, stockRepo)
	kardexExportUC := appkardex.NewExportUseCase(
		kardexUC,
		infraexcel.NewKardexWorkbookGenerator(),
		infrapdf.NewKardexPDFGenerator(),
	)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

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
		Title:    "Resto Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		ContainerUC:      containerUC,
		RoleUC:           roleUC,
		UserUC:           userUC,
		CatalogUC:        catalogUC,
		RegisterMovement: registerMovementUC,
		KardexUC:         kardexUC,
		KardexExportUC:   kardexExportUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
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
