package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadtrack-backend/internal/backup"
	"leadtrack-backend/internal/config"
	"leadtrack-backend/internal/db"
	"leadtrack-backend/internal/events"
	"leadtrack-backend/internal/handlers"
	"leadtrack-backend/internal/health"
	apphttp "leadtrack-backend/internal/http"
	"leadtrack-backend/internal/middleware"
	"leadtrack-backend/internal/monitoring"
	"leadtrack-backend/internal/repositories"
	"leadtrack-backend/internal/services"
)

func main() {
	cfg := config.Load()

	client, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("[Mongo] Connection failed: %v", err)
	}
	defer db.Disconnect(client)

	database := client.Database(cfg.Mongo.Database)

	// Repositories
	leadRepo := repositories.NewLeadRepository(database, db.LeadsCollection)
	suggestionFormRepo := repositories.NewSuggestionFormRepository(database, db.SuggestionFormsCollection)
	expenseRepo := repositories.NewExpenseRepository(database, db.ExpensesCollection)
	dashboardRepo := repositories.NewDashboardRepository(database, db.LeadsCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := expenseRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("[Mongo] Index creation failed: %v", err)
	}
	cancel()

	// Optional lead event publisher
	var publisher events.Publisher
	if cfg.AMQP.URL != "" {
		amqpPub, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			log.Printf("[Events] AMQP unavailable, events disabled: %v", err)
		} else {
			publisher = amqpPub
			defer amqpPub.Close()
			log.Printf("[Events] Publishing lead events to exchange %q", cfg.AMQP.Exchange)
		}
	}

	// Services
	leadService := services.NewLeadService(leadRepo, publisher)
	suggestionFormService := services.NewSuggestionFormService(suggestionFormRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)
	reportService := services.NewReportService(dashboardService)

	// Handlers
	leadHandler := handlers.NewLeadHandler(leadService)
	suggestionFormHandler := handlers.NewSuggestionFormHandler(suggestionFormService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(client))

	authMiddleware := middleware.NewAuthMiddleware(cfg)
	if authMiddleware.Enabled() {
		log.Println("[Auth] Bearer token enforcement enabled")
	}

	router := apphttp.NewRouter(
		leadHandler,
		suggestionFormHandler,
		expenseHandler,
		dashboardHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
	)

	// Monitoring server on its own port
	go monitoring.NewMonitoringServer(client, cfg.Mongo.Database, cfg.Server.MonitoringPort).Start()

	// Periodic S3 backups when credentials are configured
	if cfg.Backup.Enabled {
		scheduler := backup.NewScheduler(client, cfg)
		scheduler.Start()
		defer scheduler.Stop()
	}

	cors := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			cors(
				middleware.RequestID(router),
			),
		),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
