package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Gunvolt24/party_registry/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type recordLogger struct {
	mu    sync.Mutex
	infos []string
	errs  []string
}

func (l *recordLogger) Debugf(context.Context, string, ...any) {}
func (l *recordLogger) Warnf(context.Context, string, ...any)  {}
func (l *recordLogger) Infof(_ context.Context, f string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(f, a...))
}
func (l *recordLogger) Errorf(_ context.Context, f string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, fmt.Sprintf(f, a...))
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := &recordLogger{}

	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/v1/parties/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ping", "/v1/parties/3", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	require.Len(t, log.infos, 1)
	require.Contains(t, log.infos[0], "GET /v1/parties/:id status=200")
	require.Len(t, log.errs, 1)
	require.Contains(t, log.errs[0], "status=500")
}
