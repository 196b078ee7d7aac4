package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports/mocks"
	rest "github.com/Gunvolt24/party_registry/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newRouter(t *testing.T) (*mocks.MockPartyService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := mocks.NewMockPartyService(gomock.NewController(t))
	return svc, rest.NewRouter(rest.NewHandler(svc, noopLogger{}, time.Second), "")
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Message
}

func num(n int) *int { return &n }

func TestGetAll(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any()).Return([]*domain.Party{{ID: 1, Code: "PT", Name: "Partido", Number: 13}}, nil)

	w := do(r, http.MethodGet, "/v1/parties", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{"id":1,"code":"PT","name":"Partido","number":13}]`, w.Body.String())
}

func TestGetAll_EmptyIsArray(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	w := do(r, http.MethodGet, "/v1/parties", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestCreate(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().
		Create(gomock.Any(), &domain.PartyInput{Code: "PT", Name: "Partido", Number: num(13)}).
		Return(&domain.Party{ID: 5, Code: "PT", Name: "Partido", Number: 13}, nil)

	w := do(r, http.MethodPost, "/v1/parties", `{"code":"PT","name":"Partido","number":13}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":5,"code":"PT","name":"Partido","number":13}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCreate_MissingNumberIsNil(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().
		Create(gomock.Any(), &domain.PartyInput{Code: "PT", Name: "Partido"}).
		Return(nil, domain.ErrNumberRequired)

	w := do(r, http.MethodPost, "/v1/parties", `{"code":"PT","name":"Partido"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Number isRequired!", message(t, w))
}

func TestCreate_MalformedBody(t *testing.T) {
	_, r := newRouter(t) // сервис не вызывается

	for _, body := range []string{`{"code":`, `{"number":"13"}`, ""} {
		w := do(r, http.MethodPost, "/v1/parties", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body=%q", body)
		require.Equal(t, "Malformed party payload", message(t, w))
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"code_required", domain.ErrCodeRequired, http.StatusBadRequest, "Code isRequired!"},
		{"code_taken", domain.ErrCodeUnavailable, http.StatusConflict, "Party code is unavailable"},
		{"number_taken", domain.ErrNumberUnavailable, http.StatusConflict, "Party number is unavailable"},
		{"digits", domain.ErrNumberDigits, http.StatusBadRequest, "The number of a party must be composed of 2 digits"},
		{"short_name", domain.ErrNameTooShort, http.StatusBadRequest, "Name must be at least 5 letters"},
		{"infra", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newRouter(t)
			svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := do(r, http.MethodPost, "/v1/parties", `{"code":"PT","name":"Partido","number":13}`)
			require.Equal(t, tt.wantStatus, w.Code)
			require.Equal(t, tt.wantMsg, message(t, w))
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, r := newRouter(t)
		svc.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&domain.Party{ID: 3, Code: "PT", Name: "Partido", Number: 13}, nil)

		w := do(r, http.MethodGet, "/v1/parties/3", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"id":3,"code":"PT","name":"Partido","number":13}`, w.Body.String())
	})

	t.Run("not_found", func(t *testing.T) {
		svc, r := newRouter(t)
		svc.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, domain.ErrPartyNotFound)

		w := do(r, http.MethodGet, "/v1/parties/9", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "Party not found", message(t, w))
	})

	t.Run("bad_id", func(t *testing.T) {
		_, r := newRouter(t)
		for _, id := range []string{"abc", "0", "-1"} {
			w := do(r, http.MethodGet, "/v1/parties/"+id, "")
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Equal(t, "Invalid id", message(t, w))
		}
	})
}

func TestUpdate(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().
		Update(gomock.Any(), int64(3), &domain.PartyInput{Code: "PT", Name: "Partido Novo", Number: num(14)}).
		Return(&domain.Party{ID: 3, Code: "PT", Name: "Partido Novo", Number: 14}, nil)

	w := do(r, http.MethodPut, "/v1/parties/3", `{"code":"PT","name":"Partido Novo","number":14}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":3,"code":"PT","name":"Partido Novo","number":14}`, w.Body.String())
}

func TestUpdate_BadIDBeforeBody(t *testing.T) {
	_, r := newRouter(t)
	w := do(r, http.MethodPut, "/v1/parties/x", `not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid id", message(t, w))
}

func TestDelete(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Delete(gomock.Any(), int64(3)).Return(&domain.Confirmation{Message: domain.MessagePartyDeleted}, nil)

	w := do(r, http.MethodDelete, "/v1/parties/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Party deleted"}`, w.Body.String())
}

func TestHandlerTimeoutPropagates(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]*domain.Party, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Errorf("handler context must carry a deadline")
		}
		return nil, nil
	})
	do(r, http.MethodGet, "/v1/parties", "")
}

func TestServiceRoutes(t *testing.T) {
	_, r := newRouter(t)

	w := do(r, http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())

	w = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPatch, "/v1/parties/1", "")
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
