package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abarrotes/pos/internal/auth"
	"github.com/abarrotes/pos/internal/catalog"
	"github.com/abarrotes/pos/internal/config"
	"github.com/abarrotes/pos/internal/export"
	"github.com/abarrotes/pos/internal/payment"
	"github.com/abarrotes/pos/internal/report"
	"github.com/abarrotes/pos/internal/service"
	"github.com/abarrotes/pos/internal/store"

	poshttp "github.com/abarrotes/pos/internal/http"
)

func main() {
	cfg := config.Load()

	credentials, err := auth.NewDemoStore()
	if err != nil {
		log.Fatalf("failed to seed credential store: %v", err)
	}
	authenticator := auth.NewAuthenticator(credentials, cfg.AuthLatency)
	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)

	sessions := store.NewSessionStore(cfg.SessionTTL)
	defer sessions.Close()

	gateway := payment.NewBreakerGateway(
		payment.NewSimulatedGateway(cfg.ChargeLatency, payment.AlwaysApprove{}),
	)

	cat := catalog.NewDemo()
	orders := service.NewOrderService(sessions, cat, authenticator, tokens, gateway, cfg.SuccessDisplay)

	reports := report.NewStaticProvider()
	exporter := export.NewExporter(reports)

	router := poshttp.NewRouter(poshttp.Handlers{
		Auth:    poshttp.NewAuthHandler(orders),
		Cart:    poshttp.NewCartHandler(orders),
		Payment: poshttp.NewPaymentHandler(orders),
		Catalog: poshttp.NewCatalogHandler(cat),
		Report:  poshttp.NewReportHandler(orders, reports, exporter),
	}, tokens, cfg.RequestTimeout, cfg.MaxRequestBodySize)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("POS server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
