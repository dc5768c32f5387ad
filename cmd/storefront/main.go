package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/feirafresca/storefront/internal/cart"
	"github.com/feirafresca/storefront/internal/catalog"
	"github.com/feirafresca/storefront/internal/checkout"
	"github.com/feirafresca/storefront/internal/config"
	"github.com/feirafresca/storefront/internal/events"
	"github.com/feirafresca/storefront/internal/httpserver"
	"github.com/feirafresca/storefront/internal/orders"
	"github.com/feirafresca/storefront/internal/search"
	"github.com/feirafresca/storefront/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := catalog.Open(initCtx)
	cancel()
	if err != nil {
		log.Fatalf("catalog init error: %v", err)
	}

	var notifier cart.Notifier
	var producer *events.Producer
	if cfg.KafkaAddress != "" {
		producer = events.NewProducer([]string{cfg.KafkaAddress})
		notifier = producer
		defer producer.Close()
	}

	cartSvc := &cart.Service{DB: store.DB(), Events: notifier}
	orderSvc := &orders.Service{DB: store.DB()}
	checkoutMgr := checkout.NewManager(checkout.ResetDelay)

	catalogHTTP := &httpserver.CatalogHTTP{Store: store, Index: cfg.ESIndex}
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_, products, err := store.Products(indexCtx, catalog.ProductFilter{})
		if err == nil {
			err = search.IndexProducts(indexCtx, es, cfg.ESIndex, products)
		}
		cancel()
		if err != nil {
			log.Fatalf("elasticsearch index error: %v", err)
		}
		catalogHTTP.ES = es
	}

	cartHTTP := &httpserver.CartHTTP{Svc: cartSvc, Store: store}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := logger.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))
			return next(c)
		}
	})

	httpserver.Register(e, &httpserver.Deps{
		Catalog:  catalogHTTP,
		Cart:     cartHTTP,
		Checkout: &httpserver.CheckoutHTTP{Manager: checkoutMgr, Cart: cartHTTP, Events: notifier},
		Producer: &httpserver.ProducerHTTP{Orders: orderSvc, Store: store},
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
