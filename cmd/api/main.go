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

	appanalytics "github.com/jhoicas/laundry-api/internal/application/analytics"
	"github.com/jhoicas/laundry-api/internal/application/auth"
	"github.com/jhoicas/laundry-api/internal/application/receipt"
	"github.com/jhoicas/laundry-api/internal/application/usecase"
	infraai "github.com/jhoicas/laundry-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/laundry-api/internal/infrastructure/pdf"
	"github.com/jhoicas/laundry-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/laundry-api/internal/interfaces/http"
	"github.com/jhoicas/laundry-api/pkg/config"
	"github.com/jhoicas/laundry-api/pkg/logger"
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

	orderRepo := postgres.NewOrderRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	orderUC := usecase.NewOrderUseCase(orderRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo)
	adminUC := usecase.NewAdminUseCase(adminRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(orderRepo, staffRepo, adminRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	chatUC := usecase.NewChatUseCase(anthropicSvc)

	// PDF: recibo de orden para el cliente
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := receipt.NewUseCase(orderRepo, receiptGenerator)

	authUC := auth.NewAuthUseCase(userRepo, profileRepo, auth.JWTConfig{
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
		Title:    "Laundry API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:     orderUC,
		StaffUC:     staffUC,
		AdminUC:     adminUC,
		ChatUC:      chatUC,
		DashboardUC: dashboardUC,
		ReceiptUC:   receiptUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
