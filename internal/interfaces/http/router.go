package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jcastror/resto-inventario/internal/application/analytics"
	"github.com/jcastror/resto-inventario/internal/application/auth"
	"github.com/jcastror/resto-inventario/internal/application/inventory"
	appkardex "github.com/jcastror/resto-inventario/internal/application/kardex"
	"github.com/jcastror/resto-inventario/internal/application/usecase"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	ContainerUC      *usecase.ContainerUseCase
	RoleUC           *usecase.RoleUseCase
	UserUC           *usecase.UserUseCase
	CatalogUC        *usecase.CatalogUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	KardexUC         *appkardex.UseCase
	KardexExportUC   *appkardex.ExportUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products + kardex por producto
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	kardexHandler := NewKardexHandler(deps.KardexUC, deps.KardexExportUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/kardex", kardexHandler.Get)
	products.Get("/:id/kardex/export", kardexHandler.ExportXLSX)
	products.Get("/:id/kardex/pdf", kardexHandler.ExportPDF)

	// Containers
	containers := protected.Group("/containers")
	containerHandler := NewContainerHandler(deps.ContainerUC)
	containers.Post("/", containerHandler.Create)
	containers.Get("/", containerHandler.List)
	containers.Get("/:id", containerHandler.GetByID)
	containers.Put("/:id", containerHandler.Update)
	containers.Delete("/:id", containerHandler.Delete)

	// Roles y usuarios (solo administrador)
	adminOnly := RequireRole(entity.RoleAdministrador)

	roles := protected.Group("/roles", adminOnly)
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Catálogos de solo lectura
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/categories", catalogHandler.Categories)
	protected.Get("/units", catalogHandler.Units)
	protected.Get("/movement-reasons", catalogHandler.MovementReasons)

	// Movimientos de inventario
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
