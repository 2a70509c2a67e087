package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgdb "github.com/sweetloaf/bakeshop/pkg/db"
	"github.com/sweetloaf/bakeshop/pkg/events"
	"github.com/sweetloaf/bakeshop/pkg/logging"
	loggingmw "github.com/sweetloaf/bakeshop/pkg/middleware/logging"

	feedbackcfg "github.com/sweetloaf/bakeshop/services/feedback/internal/config"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/httpserver"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/models"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/repo"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/service"
)

func main() {
	if err := godotenv.Load("services/feedback/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := feedbackcfg.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.FeedbackEntry{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	svc := &service.FeedbackService{Repo: &repo.GormRepo{DB: db}}
	handler := &httpserver.FeedbackHTTP{Svc: svc}

	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers)
		defer producer.Close()
		handler.Producer = producer
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{FeedbackHandler: handler})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("feedback listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("feedback stopped")
}
