package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/bizmate/backend/internal/application/billing"
	financeapp "github.com/bizmate/backend/internal/application/finance"
	integrationapp "github.com/bizmate/backend/internal/application/integration"
	partnerapp "github.com/bizmate/backend/internal/application/partner"
	reportapp "github.com/bizmate/backend/internal/application/report"
	tradeapp "github.com/bizmate/backend/internal/application/trade"
	integrationdomain "github.com/bizmate/backend/internal/domain/integration"
	"github.com/bizmate/backend/internal/infrastructure/config"
	"github.com/bizmate/backend/internal/infrastructure/integration"
	"github.com/bizmate/backend/internal/infrastructure/logger"
	"github.com/bizmate/backend/internal/infrastructure/persistence"
	"github.com/bizmate/backend/internal/infrastructure/storage"
	"github.com/bizmate/backend/internal/interfaces/http/handler"
	"github.com/bizmate/backend/internal/interfaces/http/middleware"
	"github.com/bizmate/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting bizmate backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Document store backing all entity collections
	store, err := storage.NewDocumentStore(cfg.Storage.Path)
	if err != nil {
		log.Fatal("Failed to open document store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing document store", zap.Error(err))
		}
	}()
	log.Info("Document store opened", zap.String("path", cfg.Storage.Path))

	// Entity stores
	companyStore := persistence.NewCompanyStore(store, cfg.Storage.Seed)
	invoiceStore := persistence.NewInvoiceStore(store)
	deliveryStore := persistence.NewDeliveryStore(store)
	creditStore := persistence.NewCreditStore(store)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelLoad()
	if err := companyStore.Load(loadCtx); err != nil {
		log.Fatal("Failed to load companies", zap.Error(err))
	}
	if err := invoiceStore.Load(loadCtx); err != nil {
		log.Fatal("Failed to load invoices", zap.Error(err))
	}
	if err := deliveryStore.Load(loadCtx); err != nil {
		log.Fatal("Failed to load deliveries", zap.Error(err))
	}
	if err := creditStore.Load(loadCtx); err != nil {
		log.Fatal("Failed to load credits", zap.Error(err))
	}
	log.Info("Entity collections loaded",
		zap.Int("companies", len(companyStore.All())),
		zap.Int("invoices", len(invoiceStore.All())),
		zap.Int("deliveries", len(deliveryStore.All())),
		zap.Int("credits", len(creditStore.All())),
	)

	// Address search provider. Without an API key lookups report
	// SEARCH_FAILED instead of blocking startup; production config
	// requires the key.
	var searcher integrationdomain.AddressSearcher
	if cfg.Kakao.APIKey == "" {
		log.Warn("Kakao API key not configured, address search disabled")
		searcher = integration.NewDisabledSearcher()
	} else {
		kakaoAdapter, err := integration.NewKakaoAdapter(&integration.KakaoConfig{
			APIKey:  cfg.Kakao.APIKey,
			BaseURL: cfg.Kakao.BaseURL,
			Timeout: cfg.Kakao.Timeout,
		})
		if err != nil {
			log.Fatal("Failed to configure address search", zap.Error(err))
		}
		searcher = kakaoAdapter
	}

	// Application services
	companyService := partnerapp.NewCompanyService(companyStore)
	invoiceService := billingapp.NewInvoiceService(invoiceStore, companyStore)
	deliveryService := tradeapp.NewDeliveryService(deliveryStore, companyStore)
	creditService := financeapp.NewCreditService(creditStore, companyStore)
	salesService := reportapp.NewSalesAnalyticsService(invoiceStore, companyStore)
	addressService := integrationapp.NewAddressService(searcher)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handler.RegisterValidations(); err != nil {
		log.Fatal("Failed to register validations", zap.Error(err))
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(cfg.App.Name, version))
	r.Register(handler.NewCompanyHandler(companyService))
	r.Register(handler.NewInvoiceHandler(invoiceService))
	r.Register(handler.NewDeliveryHandler(deliveryService))
	r.Register(handler.NewCreditHandler(creditService))
	r.Register(handler.NewReportHandler(salesService))
	r.Register(handler.NewAddressHandler(addressService))
	r.Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
