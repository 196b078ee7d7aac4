package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports"
	"github.com/Gunvolt24/party_registry/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const msgInternal = "internal server error"

// Handler — HTTP-обработчики реестра партий.
type Handler struct {
	service ports.PartyService
	log     ports.Logger
	timeout time.Duration // 0 — без таймаута на обработчик
}

func NewHandler(service ports.PartyService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — маршруты API и служебные эндпоинты.
// otelServiceName пустой — трейсинг HTTP не подключается.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1/parties")
	v1.GET("", h.getAll)
	v1.POST("", h.create)
	v1.GET("/:id", h.getByID)
	v1.PUT("/:id", h.update)
	v1.DELETE("/:id", h.delete)

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"message": "not found"}) })
	r.NoMethod(func(c *gin.Context) { c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "method not allowed"}) })
	return r
}

func (h *Handler) getAll(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	parties, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if parties == nil {
		parties = []*domain.Party{}
	}
	c.JSON(http.StatusOK, parties)
}

func (h *Handler) create(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	party, err := h.service.Create(ctx, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, party)
}

func (h *Handler) getByID(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		h.writeError(c, domain.ErrInvalidID)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	party, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, party)
}

func (h *Handler) update(c *gin.Context) {
	// некорректный id важнее некорректного тела
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		h.writeError(c, domain.ErrInvalidID)
		return
	}
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	party, err := h.service.Update(ctx, id, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, party)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		h.writeError(c, domain.ErrInvalidID)
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	conf, err := h.service.Delete(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, conf)
}

func (h *Handler) bindInput(c *gin.Context) (*domain.PartyInput, bool) {
	var in domain.PartyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.Infof(c.Request.Context(), "malformed party payload: %v", err)
		h.writeError(c, domain.ErrMalformedInput)
		return nil, false
	}
	return &in, true
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// writeError — доменные ошибки отдаются с их сообщением, прочие — 500 без деталей.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusOf(err)
	msg := msgInternal

	var de *domain.Error
	if status != http.StatusInternalServerError && errors.As(err, &de) {
		msg = de.Message
	} else {
		h.log.Errorf(c.Request.Context(), "request failed path=%s err=%v", c.FullPath(), err)
	}
	c.JSON(status, gin.H{"message": msg})
}

func statusOf(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidID:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		if domain.IsUnavailable(err) {
			return http.StatusConflict
		}
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
