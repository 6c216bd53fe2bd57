package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	custommiddleware "fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	shutdownTimeout = 10 * time.Second
	seedMonths      = 6
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize ledger store: %v", err)
	}
	defer db.Close()

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	stats := services.NewStatsService()
	transactionService := services.NewTransactionService(transactionRepo, stats, metrics)
	budgetService := services.NewBudgetService(budgetRepo, transactionRepo, metrics)
	dashboardService := services.NewDashboardService(transactionRepo, stats)
	analysisService := services.NewAnalysisService(transactionRepo, stats)
	tokenService := services.NewTokenService(&cfg.Auth)

	if cfg.IsDevelopment() && os.Getenv("SEED_DATA") == "true" {
		seedService := services.NewSeedService(transactionRepo, budgetRepo)
		if err := seedService.Seed(seedMonths); err != nil {
			slog.Warn("Seeding failed", "error", err)
		}
	}

	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	authHandler := handlers.NewAuthHandler(tokenService, metrics)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Auth.RateLimitRPS, cfg.Auth.RateLimitRPS*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", custommiddleware.OwnerAuth(tokenService, cfg.Auth.Enabled))
	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.GET("/transactions", transactionHandler.ListTransactions)
	protected.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	protected.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	protected.PUT("/budgets", budgetHandler.SaveBudget)
	protected.GET("/budgets", budgetHandler.GetOverview)
	protected.GET("/budgets/alerts", budgetHandler.GetAlerts)
	protected.DELETE("/budgets/:category", budgetHandler.DeleteBudget)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/analysis", analysisHandler.GetAnalysis)

	address := cfg.Server.Host + ":" + cfg.Server.Port
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		slog.Info("Starting server",
			"address", address,
			"environment", cfg.Server.Environment,
			"driver", cfg.Database.Driver,
			"auth_enabled", strconv.FormatBool(cfg.Auth.Enabled),
		)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
