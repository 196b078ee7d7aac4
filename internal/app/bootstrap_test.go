package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/party_registry/config"
	"github.com/Gunvolt24/party_registry/internal/app"
	"github.com/stretchr/testify/require"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// фейковый консьюмер, который ждёт отмены контекста
type fakeConsumer struct {
	runCalls   int32
	closeCalls int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	fc := &fakeConsumer{}
	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    srv,
		KafkaConsumer: fc,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if atomic.LoadInt32(&fc.runCalls) == 0 {
		t.Fatalf("consumer.Run should be called")
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 {
		t.Fatalf("consumer.Close should be called")
	}
}

func TestAppRun_WithoutConsumer(t *testing.T) {
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
}

func memoryConfig(t *testing.T) config.Config {
	t.Helper()
	c, err := config.LoadWithPrefix("PARTY_APP_TEST")
	require.NoError(t, err)
	c.Storage.Driver = config.DriverMemory
	c.Cache.Driver = config.DriverMemory
	c.HTTP.GinMode = "test"
	return c
}

// Сборка целиком в памяти: без Postgres, Redis и Kafka.
func TestBootstrap_MemoryDrivers(t *testing.T) {
	cfg := memoryConfig(t)

	a, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	require.NoError(t, err)
	defer cleanup()

	require.Nil(t, a.KafkaConsumer, "import is disabled by default")

	h := a.HTTPServer.Handler

	req := httptest.NewRequest(http.MethodPost, "/v1/parties", strings.NewReader(`{"code":"PT","name":"Partido","number":13}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.JSONEq(t, `{"id":1,"code":"PT","name":"Partido","number":13}`, w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/parties/1", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/parties", strings.NewReader(`{"code":"XX","name":"Outro Partido","number":13}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusConflict, w.Code)
	require.JSONEq(t, `{"message":"Party number is unavailable"}`, w.Body.String())
}

func TestBootstrap_UnknownDrivers(t *testing.T) {
	t.Run("storage", func(t *testing.T) {
		cfg := memoryConfig(t)
		cfg.Storage.Driver = "mongo"
		_, _, err := app.Bootstrap(context.Background(), &cfg)
		require.ErrorContains(t, err, `unknown storage driver "mongo"`)
	})

	t.Run("cache", func(t *testing.T) {
		cfg := memoryConfig(t)
		cfg.Cache.Driver = "memcached"
		_, _, err := app.Bootstrap(context.Background(), &cfg)
		require.ErrorContains(t, err, `unknown cache driver "memcached"`)
	})
}
