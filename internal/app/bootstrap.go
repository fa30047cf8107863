package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/coffee_delivery/config"
	cachemem "github.com/Gunvolt24/coffee_delivery/internal/cache/memory"
	"github.com/Gunvolt24/coffee_delivery/internal/catalog"
	"github.com/Gunvolt24/coffee_delivery/internal/checkout"
	"github.com/Gunvolt24/coffee_delivery/internal/confirmation"
	"github.com/Gunvolt24/coffee_delivery/internal/kafka"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
	"github.com/Gunvolt24/coffee_delivery/internal/repo/postgres"
	rest "github.com/Gunvolt24/coffee_delivery/internal/transport/http"
	"github.com/Gunvolt24/coffee_delivery/internal/usecase"
	"github.com/Gunvolt24/coffee_delivery/pkg/logger"
	"github.com/Gunvolt24/coffee_delivery/pkg/metrics"
	"github.com/Gunvolt24/coffee_delivery/pkg/telemetry"
	"github.com/Gunvolt24/coffee_delivery/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // HTTP-сервер витрины
	MetricsServer   *http.Server  // отдельный сервер /metrics (nil — метрики на основном)
	Publisher       io.Closer     // Kafka-публикатор подтверждений (nil — выключен)
	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// LoadCatalog — каталог из источника, заданного конфигурацией.
// Postgres читается один раз при старте, пул сразу закрывается.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Static, error) {
	switch cfg.Catalog.Source {
	case config.CatalogBuiltin, "":
		return catalog.Builtin(), nil
	case config.CatalogFile:
		return catalog.LoadYAMLFile(cfg.Catalog.Path)
	case config.CatalogPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return postgres.NewProductRepository(pool).LoadCatalog(ctx)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Каталог
	products, err := LoadCatalog(ctx, cfg)
	if err != nil {
		logg.Errorf(ctx, "load catalog source=%s: %v", cfg.Catalog.Source, err)
		closeLogger()
		return nil, func() {}, err
	}
	logg.Infof(ctx, "catalog loaded source=%s products=%d", cfg.Catalog.Source, len(products.List()))

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Передача подтверждений: inbox для страницы "успех" + Kafka (опционально).
	inbox := confirmation.NewInbox(cfg.Confirmation.Capacity, cfg.Confirmation.TTL)
	var secondaries []ports.ConfirmationSink
	var publisher *kafka.Publisher
	if kc := cfg.Confirmation.Kafka; kc.Enabled {
		publisher = kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers:      kc.Brokers,
			Topic:        kc.Topic,
			WriteTimeout: kc.WriteTimeout,
			MaxAttempts:  kc.MaxAttempts,
			RetryInitial: kc.RetryInitial,
			RetryMax:     kc.RetryMax,
		}, logg)
		secondaries = append(secondaries, publisher)
		logg.Infof(ctx, "confirmation publisher enabled topic=%s brokers=%v", kc.Topic, kc.Brokers)
	}
	sink := confirmation.NewDispatcher(inbox, logg, secondaries...)

	// Сборка зависимостей доменного слоя.
	sessions := cachemem.NewLRUCacheTTL[*usecase.Session]("sessions", cfg.Session.Capacity, cfg.Session.TTL)
	storefront := usecase.NewStorefront(
		products,
		validate.NewCheckoutValidator(),
		sink,
		inbox,
		sessions,
		logg,
		usecase.WithFlowOptions(checkout.WithDeliveryFee(cfg.Checkout.DeliveryFee)),
	)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(storefront, logg, cfg.HTTP.HandlerTimeout, cfg.Session.TTL)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}
	if publisher != nil {
		app.Publisher = publisher
	}
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		app.MetricsServer = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", err)
			}
		}
		closeLogger()
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	serve := func(name string, srv *http.Server) {
		a.Logger.Infof(ctx, "%s server starting (addr=%s)", name, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}

	go serve("http", a.HTTPServer)
	if a.MetricsServer != nil {
		go serve("metrics", a.MetricsServer)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case runErr = <-errCh:
		a.Logger.Errorf(ctx, "background error: %v", runErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Публикатор закрываем после HTTP: отправки из обработчиков уже завершены.
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka publisher close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
