package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/andrewserrazina/friendly-paws-backend/internal/api/http"
	"github.com/andrewserrazina/friendly-paws-backend/internal/api/http/handlers"
	"github.com/andrewserrazina/friendly-paws-backend/internal/auth"
	"github.com/andrewserrazina/friendly-paws-backend/internal/config"
	"github.com/andrewserrazina/friendly-paws-backend/internal/events"
	"github.com/andrewserrazina/friendly-paws-backend/internal/observability"
	"github.com/andrewserrazina/friendly-paws-backend/internal/persistence"
	"github.com/andrewserrazina/friendly-paws-backend/internal/repository"
	"github.com/andrewserrazina/friendly-paws-backend/internal/service"
	"github.com/andrewserrazina/friendly-paws-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	petRepo := repository.NewPetRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, accountRepo)
	clientService := service.NewClientService(clientRepo, redis, cfg.Redis.CacheTTL(), dispatcher, logger)
	petService := service.NewPetService(petRepo, clientRepo)
	bookingService := service.NewBookingService(service.BookingDependencies{
		BookingRepo: bookingRepo,
		ClientRepo:  clientRepo,
		PetRepo:     petRepo,
		Dispatcher:  dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Clients:        handlers.NewClientsHandler(clientService),
		Pets:           handlers.NewPetsHandler(petService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
