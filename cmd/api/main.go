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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"laptek/internal/adapter/api"
	"laptek/internal/adapter/api/handler"
	apimiddleware "laptek/internal/adapter/api/middleware"
	"laptek/internal/adapter/api/router"
	"laptek/internal/adapter/repository"
	"laptek/internal/domain/entity"
	"laptek/internal/infrastructure/catalog"
	"laptek/internal/infrastructure/firebase"
	"laptek/internal/infrastructure/gemini"
	"laptek/internal/infrastructure/pricecheck"
	"laptek/internal/infrastructure/ratelimit"
	"laptek/internal/infrastructure/statestore"
	"laptek/internal/infrastructure/storage"
	"laptek/internal/infrastructure/websocket"
	"laptek/internal/usecase"
	"laptek/pkg/config"
	"laptek/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer clients.Close()

	blobs, err := statestore.Open(cfg.StateBackend, cfg.StatePath, clients.Firestore)
	if err != nil {
		log.Fatalf("Failed to open %s state store: %v", cfg.StateBackend, err)
	}
	defer blobs.Close()

	store, err := catalog.Load(cfg.StoreCatalogPath)
	if err != nil {
		log.Fatalf("Failed to load store catalog: %v", err)
	}

	var uploader usecase.ImageUploader
	if cfg.StorageBucket != "" {
		var opts []option.ClientOption
		if opt := firebase.CredentialsOption(cfg); opt != nil {
			opts = append(opts, opt)
		}
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		uploader = storageClient
	} else {
		logger.Warn("STORAGE_BUCKET is not set; product image uploads are disabled")
	}

	var generator usecase.TextGenerator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		generator = geminiClient
	} else {
		logger.Warn("GEMINI_API_KEY is not set; the product assistant runs in demo mode")
	}

	productRepo := repository.NewFirestoreProductRepository(clients.Firestore)
	orderRepo := repository.NewFirestoreOrderRepository(clients.Firestore)
	invoiceRepo := repository.NewFirestoreInvoiceRepository(clients.Firestore)
	userRepo := repository.NewFirestoreUserRepository(clients.Firestore)
	categoryRepo := repository.NewFirestoreCategoryRepository(clients.Firestore)
	marketplaceRepo := repository.NewFirestoreMarketplaceRepository(clients.Firestore)
	carts := repository.NewJSONStateRepositoryFactory[entity.CartState](blobs)
	wishlists := repository.NewJSONStateRepositoryFactory[entity.WishlistState](blobs)

	checker := pricecheck.NewDefaultChecker(cfg.WalmartBaseURL, cfg.BestBuyBaseURL, time.Duration(cfg.PriceCheckTimeoutSeconds)*time.Second)

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, store.Currency())
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, store)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryUseCase, uploader)

	handler.Setup(
		usecase.NewCartUseCase(carts, productRepo, orderRepo, invoiceUseCase, store),
		usecase.NewWishlistUseCase(wishlists, productRepo),
		productUseCase,
		usecase.NewOrderUseCase(orderRepo),
		invoiceUseCase,
		usecase.NewUserUseCase(userRepo, clients.Auth),
		categoryUseCase,
		usecase.NewMarketplaceUseCase(marketplaceRepo, store, checker),
		usecase.NewAssistantUseCase(generator, cfg.GeminiModels),
	)

	hub := websocket.NewHub()
	hub.Start(ctx)
	go func() {
		if err := productUseCase.StreamCatalog(ctx, hub); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Catalog stream stopped: %v", err)
		}
	}()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine(ctx, 10*time.Minute)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e,
		apimiddleware.NewAuthMiddleware(clients.Auth),
		apimiddleware.NewAdminMiddleware(userRepo),
		limiter,
		handler.NewCatalogHandler(hub),
	)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
	<-hub.Done()
}
