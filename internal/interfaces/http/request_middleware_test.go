package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/facturacion/internal/interfaces/http"
	"github.com/jhoicas/facturacion/pkg/logger"
)

func TestRequestLogger_IDYRegistroSinCuerpo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Output: &buf})
	app := apphttp.NewApp(apphttp.RouterDeps{Credentials: brokenService{}, Log: log})

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"name":"acme","password":"s3creto"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-123"`)
	assert.Contains(t, out, `"path":"/api/login"`)
	assert.Contains(t, out, `"status":500`)
	assert.NotContains(t, out, "s3creto")
}

func TestRequestLogger_GeneraID(t *testing.T) {
	app := buildTestApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36)
}
