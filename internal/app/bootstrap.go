package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/party_registry/config"
	cachemem "github.com/Gunvolt24/party_registry/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/party_registry/internal/cache/redis"
	"github.com/Gunvolt24/party_registry/internal/kafka"
	"github.com/Gunvolt24/party_registry/internal/ports"
	repomem "github.com/Gunvolt24/party_registry/internal/repo/memory"
	"github.com/Gunvolt24/party_registry/internal/repo/postgres"
	rest "github.com/Gunvolt24/party_registry/internal/transport/http"
	"github.com/Gunvolt24/party_registry/internal/usecase"
	"github.com/Gunvolt24/party_registry/pkg/logger"
	"github.com/Gunvolt24/party_registry/pkg/metrics"
	"github.com/Gunvolt24/party_registry/pkg/telemetry"
	"github.com/Gunvolt24/party_registry/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер импорта; nil, если импорт выключен
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// closers — стек функций освобождения; выполняется в обратном порядке.
type closers []func()

func (c *closers) add(fn func()) { *c = append(*c, fn) }

func (c closers) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

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

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// При ошибке всё уже открытое закрывается.
func Bootstrap(ctx context.Context, cfg *config.Config) (app *App, cleanup Cleanup, err error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	var cs closers
	cs.add(func() { _ = cleanupLogger() })
	defer func() {
		if err != nil {
			cs.run()
		}
	}()

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		shutdown, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			cs.add(func() {
				if terr := shutdown(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	repo, err := openStorage(ctx, cfg, logg, &cs)
	if err != nil {
		return nil, func() {}, err
	}

	cache, err := openCache(ctx, cfg, logg, &cs)
	if err != nil {
		return nil, func() {}, err
	}

	events := openEvents(ctx, cfg, logg, &cs)

	partyService := usecase.NewPartyService(repo, cache, events, logg, validate.NewPartyValidator())

	// Прогрев кэша
	if n := cfg.Cache.WarmUpN; n > 0 {
		if wErr := partyService.WarmUpCache(ctx, n); wErr != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", wErr)
		}
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	router := rest.NewRouter(rest.NewHandler(partyService, logg, cfg.HTTP.HandlerTimeout), otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app = &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Консьюмер импорта Kafka.
	if cfg.Kafka.ImportEnabled {
		consumer := kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.ImportTopic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, partyService, logg)
		cs.add(func() {
			if cErr := consumer.Close(); cErr != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", cErr)
			}
		})
		app.KafkaConsumer = consumer
	}

	return app, cs.run, nil
}

// openStorage — хранилище по драйверу: postgres (с миграциями при AutoMigrate) или memory.
func openStorage(ctx context.Context, cfg *config.Config, log ports.Logger, cs *closers) (ports.PartyRepository, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case config.DriverMemory:
		log.Warnf(ctx, "storage driver=memory: data is lost on restart")
		return repomem.NewPartyRepository(), nil
	case config.DriverPostgres, "":
		if cfg.Postgres.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, err
		}
		cs.add(pool.Close)
		return postgres.NewPartyRepository(pool), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// openCache — кэш по драйверу: memory (LRU+TTL) или redis.
func openCache(ctx context.Context, cfg *config.Config, log ports.Logger, cs *closers) (ports.PartyCache, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Driver)) {
	case config.DriverMemory, "":
		return cachemem.NewPartyCache(cfg.Cache.Capacity, cfg.Cache.TTL), nil
	case config.DriverRedis:
		client, err := cacheredis.NewClient(ctx, cacheredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		cs.add(func() {
			if cErr := client.Close(); cErr != nil {
				log.Warnf(ctx, "redis close error: %v", cErr)
			}
		})
		return cacheredis.NewPartyCache(client, cfg.Cache.TTL, log), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}

// openEvents — публикатор событий: Kafka или no-op, если публикация выключена.
func openEvents(ctx context.Context, cfg *config.Config, log ports.Logger, cs *closers) ports.PartyEventPublisher {
	if !cfg.Kafka.PublishEnabled {
		return kafka.NoopPublisher{}
	}
	producer := kafka.NewProducer(&kafka.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.EventsTopic,
	})
	cs.add(func() {
		if err := producer.Close(); err != nil {
			log.Warnf(ctx, "kafka producer close error: %v", err)
		}
	})
	return producer
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
