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

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/config"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/db"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/events"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/httpserver"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/mail"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/middleware"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/payments"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/repo"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/search"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/service"
)

func main() {
	cfg := config.MustLoad()

	logger := logging.New(cfg.LogLevel).With("service", "nails-backend")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	var index *search.Index
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		index = &search.Index{ES: es, Name: cfg.ESIndex}
	}

	var mailer mail.Sender
	if cfg.SendGridAPIKey != "" {
		mailer = mail.NewSendGridSender(cfg.SendGridAPIKey, cfg.MailFrom, cfg.MailFromName)
	}

	stripeClient := payments.NewClient(
		cfg.StripeSecretKey,
		cfg.StripeWebhookSecret,
		cfg.CheckoutSuccessURL,
		cfg.CheckoutCancelURL,
	)

	store := repo.New(gdb)

	authSvc := &service.AuthService{Repo: store, JWTSecret: cfg.JWTSecret, Producer: producer}
	productSvc := &service.ProductService{Repo: store, Producer: producer, Index: index}
	cartSvc := &service.CartService{Repo: store, Producer: producer}
	orderSvc := &service.OrderService{Repo: store, Producer: producer, Mailer: mailer, AlertEmail: cfg.DeveloperEmail}
	sizeSvc := &service.NailSizeService{Repo: store}
	checkoutSvc := &service.CheckoutService{Repo: store, Payments: stripeClient}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, httpserver.Deps{
		Users:     &httpserver.UserHTTP{Svc: authSvc},
		Products:  &httpserver.ProductHTTP{Svc: productSvc},
		Carts:     &httpserver.CartHTTP{Svc: cartSvc},
		Orders:    &httpserver.OrderHTTP{Svc: orderSvc},
		NailSizes: &httpserver.NailSizeHTTP{Svc: sizeSvc},
		Checkout:  &httpserver.CheckoutHTTP{Svc: checkoutSvc},
		Webhook:   &httpserver.WebhookHTTP{Payments: stripeClient, Orders: orderSvc},
		JWTSecret: cfg.JWTSecret,
		Blocklist: store,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("server_listening", "addr", srv.Addr)
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
	_ = producer.Close()

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server_stopped")
}
