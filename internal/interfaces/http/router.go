package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/laundry-api/internal/application/analytics"
	"github.com/jhoicas/laundry-api/internal/application/auth"
	"github.com/jhoicas/laundry-api/internal/application/receipt"
	"github.com/jhoicas/laundry-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC     *usecase.OrderUseCase
	StaffUC     *usecase.StaffUseCase
	AdminUC     *usecase.AdminUseCase
	ChatUC      *usecase.ChatUseCase
	DashboardUC *analytics.DashboardUseCase
	ReceiptUC   *receipt.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Chat (público: el widget vive en la landing, antes del login)
	chatHandler := NewChatHandler(deps.ChatUC)
	api.Post("/chat", chatHandler.Send)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Staff (protegido)
	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Put("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)

	// Admins (protegido)
	admins := protected.Group("/admins")
	adminHandler := NewAdminHandler(deps.AdminUC)
	admins.Post("/", adminHandler.Create)
	admins.Get("/", adminHandler.List)
	admins.Put("/:id", adminHandler.Update)
	admins.Delete("/:id", adminHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
