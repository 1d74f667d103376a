package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "affiliatehub/docs"
	"affiliatehub/internal/config"
	"affiliatehub/internal/handlers"
	"affiliatehub/internal/repositories"
	"affiliatehub/internal/routes"
	"affiliatehub/internal/services"
	"affiliatehub/internal/utils"
)

func Run() {
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, cleanup, err := Build(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialise application: ", err)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s (store=%s)", srv.Addr, cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed: ", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

// Build wires the store, services and handlers for cfg. The returned cleanup closes
// the store connection.
func Build(ctx context.Context, cfg *config.Config) (*gin.Engine, func(), error) {
	gin.SetMode(cfg.Server.Mode)

	// === Store ===
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// === Services ===
	var notifier services.EmailService
	if cfg.NotificationsEnabled() {
		notifier = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
			cfg.Email.NotifyEmail,
		)
	}
	accountService := services.NewAccountService(store)
	dashboardService := services.NewDashboardService(store, store, cfg.Location())
	leadService := services.NewLeadService(store, notifier)
	contentService, err := services.NewContentService()
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	kvkClient := utils.NewKvkClient(cfg.Kvk.BaseURL, cfg.Kvk.APIKey)
	if !kvkClient.Configured() {
		log.Printf("[kvk] warning: KVK_API_KEY is not set, lookups will answer 503")
	}

	// === Handlers ===
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	leadHandler := handlers.NewLeadHandler(leadService)
	kvkHandler := handlers.NewKvkHandler(kvkClient)
	contentHandler := handlers.NewContentHandler(contentService)
	accountHandler := handlers.NewAccountHandler()

	// === Gin ===
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	routes.SetupRoutes(
		router,
		routes.Options{
			JWTSecret:      cfg.Auth.JWTSecret,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			MetricsEnabled: cfg.MetricsEnabled(),
		},
		accountService,
		dashboardHandler,
		leadHandler,
		kvkHandler,
		contentHandler,
		accountHandler,
	)
	return router, closeStore, nil
}

func openStore(ctx context.Context, cfg *config.Config) (services.Store, func(), error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := repositories.OpenPostgres(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		store := repositories.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return store, closeWith("postgres", store.Close), nil

	case "mongo":
		store, err := repositories.OpenMongo(ctx, cfg.Database.MongoURI, cfg.Database.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return store, closeWith("mongo", store.Close), nil
	}

	store := repositories.NewMemoryStore()
	if cfg.Dashboard.SeedDemo {
		acc := repositories.SeedDemo(store, time.Now())
		log.Printf("[store] memory store seeded with demo account %s (subject %s)", acc.ID, acc.ExternalID)
	}
	return store, func() {}, nil
}

func closeWith(name string, closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			log.Printf("[store] closing %s: %v", name, err)
		}
	}
}
