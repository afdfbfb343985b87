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

	"github.com/joho/godotenv"
	"github.com/yahya159/bidinsouk-sub002/internal/app/background"
	"github.com/yahya159/bidinsouk-sub002/internal/config"
	"github.com/yahya159/bidinsouk-sub002/internal/delivery/http/handlers"
	"github.com/yahya159/bidinsouk-sub002/internal/delivery/http/routes"
	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/kafka"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/metrics"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/migrate"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/postgres"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/postgres/repository"
	usecase "github.com/yahya159/bidinsouk-sub002/internal/usecase/auction"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if migrationsPath := os.Getenv("MIGRATIONS_PATH"); migrationsPath != "" {
		if err := migrate.RunMigrations(db, migrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher := kafka.NewAuctionEventPublisher(brokers, cfg.KafkaService.Topic)
	defer publisher.Close()

	// Init auction repo
	auctionRepo := repository.NewDefaultAuctionRepository(db)

	// Init auction usecase
	auctionMetrics := metrics.NewAuctionMetrics()
	uc := usecase.NewDefaultAuctionUsecase(
		auctionRepo,
		publisher,
		domain.RealClock{},
		auctionMetrics,
		usecase.EngineSettings{
			ExtendWindow:     cfg.Engine.ExtendWindow,
			MaxExtensions:    cfg.Engine.MaxExtensions,
			MaxTotalDuration: cfg.Engine.MaxTotalDuration,
			BidRetryLimit:    cfg.Engine.BidRetryLimit,
			CancelLockWindow: cfg.Engine.CancelLockWindow,
			SweepBatchSize:   cfg.Engine.SweepBatchSize,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background sweeper
	tasks := background.NewBackgroundTasks(uc, cfg.Engine.SweepInterval)
	tasks.StartAll(ctx)

	// HTTP server
	auctionHandler := handlers.NewAuctionHandler(uc)
	router := routes.SetupRouter(auctionHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		log.Printf("auction service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down auction service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
}
