package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attire-api/internal/application/analytics"
	"github.com/jhoicas/attire-api/internal/application/inventory"
	"github.com/jhoicas/attire-api/internal/application/sales"
	"github.com/jhoicas/attire-api/internal/application/session"
	"github.com/jhoicas/attire-api/internal/application/staff"
	"github.com/jhoicas/attire-api/internal/application/timetracking"
	"github.com/jhoicas/attire-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC   *session.UseCase
	InventoryUC *inventory.UseCase
	StaffUC     *staff.UseCase
	TimeUC      *timetracking.UseCase
	SalesUC     *sales.UseCase
	AnalyticsUC *analytics.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.SessionUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren sesión activa)
	protected := api.Group("/", SessionMiddleware(deps.SessionUC))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Catálogo: lectura para cualquier sesión; el caso de uso exige admin en escrituras
	productHandler := NewProductHandler(deps.InventoryUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	categories := protected.Group("/categories")
	categories.Get("/", productHandler.ListCategories)
	categories.Post("/", productHandler.CreateCategory)

	// Fichajes de la sesión activa
	timeHandler := NewTimeHandler(deps.TimeUC)
	timeGroup := protected.Group("/time")
	timeGroup.Post("/clock-in", timeHandler.ClockIn)
	timeGroup.Post("/clock-out", timeHandler.ClockOut)
	timeGroup.Get("/status", timeHandler.Status)
	timeGroup.Get("/entries", timeHandler.Entries)

	// Personal (admin)
	staffHandler := NewStaffHandler(deps.StaffUC, deps.TimeUC)
	staffGroup := protected.Group("/staff", adminOnly)
	staffGroup.Get("/", staffHandler.List)
	staffGroup.Put("/:id/role", staffHandler.ChangeRole)
	staffGroup.Post("/:id/reset-hours", staffHandler.ResetHours)
	staffGroup.Get("/:id/time-entries", staffHandler.Entries)

	// Pedidos
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Put("/:id/status", salesHandler.UpdateStatus)
	salesGroup.Get("/:id/pdf", salesHandler.PDF)

	// Analítica (admin)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/analytics/dashboard", adminOnly, analyticsHandler.Dashboard)
}
