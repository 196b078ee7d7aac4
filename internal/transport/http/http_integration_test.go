//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/party_registry/internal/cache/memory"
	"github.com/Gunvolt24/party_registry/internal/domain"
	ikafka "github.com/Gunvolt24/party_registry/internal/kafka"
	pgrepo "github.com/Gunvolt24/party_registry/internal/repo/postgres"
	"github.com/Gunvolt24/party_registry/internal/testutil"
	rest "github.com/Gunvolt24/party_registry/internal/transport/http"
	"github.com/Gunvolt24/party_registry/internal/usecase"
	"github.com/Gunvolt24/party_registry/pkg/logger"
	"github.com/Gunvolt24/party_registry/pkg/validate"
)

func send(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, _ = out.ReadFrom(resp.Body)
	return resp, out.Bytes()
}

// Полный цикл CRUD поверх Postgres.
func TestHTTP_PartyLifecycle_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()
	require.NoError(t, pgrepo.Migrate(ctx, pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	svc := usecase.NewPartyService(
		pgrepo.NewPartyRepository(pg.Pool),
		cachemem.NewPartyCache(100, time.Minute),
		ikafka.NoopPublisher{},
		logg,
		validate.NewPartyValidator(),
	)
	ts := httptest.NewServer(rest.NewRouter(rest.NewHandler(svc, logg, 2*time.Second), ""))
	defer ts.Close()

	// create
	resp, body := send(t, http.MethodPost, ts.URL+"/v1/parties", map[string]any{"code": "PT", "name": "Partido", "number": 13})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created domain.Party
	require.NoError(t, json.Unmarshal(body, &created))
	require.Positive(t, created.ID)

	// duplicate code
	resp, body = send(t, http.MethodPost, ts.URL+"/v1/parties", map[string]any{"code": "PT", "name": "Outro Partido", "number": 14})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.JSONEq(t, `{"message":"Party code is unavailable"}`, string(body))

	// get
	itemURL := fmt.Sprintf("%s/v1/parties/%d", ts.URL, created.ID)
	resp, body = send(t, http.MethodGet, itemURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, string(mustJSON(t, created)), string(body))

	// update keeps own code
	resp, body = send(t, http.MethodPut, itemURL, map[string]any{"code": "PT", "name": "Partido Novo", "number": 15})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	// list
	resp, body = send(t, http.MethodGet, ts.URL+"/v1/parties", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []domain.Party
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	require.Equal(t, 15, list[0].Number)

	// delete, then 404
	resp, body = send(t, http.MethodDelete, itemURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"message":"Party deleted"}`, string(body))

	resp, _ = send(t, http.MethodGet, itemURL, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
