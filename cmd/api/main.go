package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/voyago/tourism-service/internal/api/http"
	"github.com/voyago/tourism-service/internal/api/http/handlers"
	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/config"
	"github.com/voyago/tourism-service/internal/observability"
	"github.com/voyago/tourism-service/internal/persistence"
	"github.com/voyago/tourism-service/internal/repository"
	"github.com/voyago/tourism-service/internal/service"
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
	touristRepo := repository.NewTouristRepository(pool)
	businessAdminRepo := repository.NewBusinessAdminRepository(pool)
	superAdminRepo := repository.NewSuperAdminRepository(pool)
	businessRepo := repository.NewBusinessRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		TouristRepo:       touristRepo,
		BusinessAdminRepo: businessAdminRepo,
		SuperAdminRepo:    superAdminRepo,
	}, logger)
	touristService := service.NewTouristService(touristRepo)
	businessService := service.NewBusinessService(businessRepo)
	reviewService := service.NewReviewService(reviewRepo, businessRepo)
	adminService := service.NewAdminService(businessAdminRepo, businessRepo, cfg.Auth.BcryptCost)

	guard := auth.NewGuard(authService.TokenManager())
	var revalidator *auth.Revalidator
	if cfg.Auth.RevalidateSensitiveOps {
		statusLookup := repository.NewStatusLookup(touristRepo, businessAdminRepo, superAdminRepo)
		revalidator = auth.NewRevalidator(redis.Client, statusLookup, cfg.Auth.RevalidationTTL(), logger)
	}

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:        handlers.NewAuthHandler(authService),
		Tourists:    handlers.NewTouristsHandler(touristService),
		Businesses:  handlers.NewBusinessesHandler(businessService),
		Reviews:     handlers.NewReviewsHandler(reviewService),
		Admins:      handlers.NewAdminsHandler(adminService),
		Guard:       guard,
		Revalidator: revalidator,
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
