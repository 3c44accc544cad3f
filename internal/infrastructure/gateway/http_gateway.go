// Package gateway implementa session.CredentialGateway sobre la API HTTP/JSON del
// servicio de credenciales.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/facturacion/internal/application/dto"
	"github.com/jhoicas/facturacion/internal/application/session"
	"github.com/jhoicas/facturacion/internal/domain"
)

var _ session.CredentialGateway = (*HTTPGateway)(nil)

const maxBodyBytes = 1 << 20

// HTTPGateway cliente del servicio de credenciales.
// Usa net/http de la stdlib, igual que los demás clientes salientes.
type HTTPGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPGateway construye el cliente. timeout <= 0 usa 10 s.
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Register POST /api/register.
func (g *HTTPGateway) Register(ctx context.Context, name, password string) error {
	status, body, err := g.post(ctx, "/api/register", dto.RegisterRequest{Name: name, Password: password})
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusCreated || status == http.StatusOK:
		return nil
	case status == http.StatusConflict:
		return domain.ErrDuplicateName
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrValidation, errorMessage(body, "datos inválidos"))
	default:
		return unexpectedStatus(status, body)
	}
}

// Login POST /api/login. Devuelve el nombre para mostrar.
func (g *HTTPGateway) Login(ctx context.Context, name, password string) (string, error) {
	status, body, err := g.post(ctx, "/api/login", dto.LoginRequest{Name: name, Password: password})
	if err != nil {
		return "", err
	}
	switch {
	case status == http.StatusOK:
		var out dto.LoginResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return "", fmt.Errorf("%w: respuesta de login ilegible: %v", domain.ErrUnreachable, err)
		}
		return out.Name, nil
	case status == http.StatusUnauthorized:
		return "", domain.ErrInvalidCredentials
	case status == http.StatusBadRequest:
		return "", fmt.Errorf("%w: %s", domain.ErrValidation, errorMessage(body, "datos inválidos"))
	default:
		return "", unexpectedStatus(status, body)
	}
}

// post envía payload como JSON. Cualquier fallo de red, timeout o lectura es ErrUnreachable.
func (g *HTTPGateway) post(ctx context.Context, path string, payload any) (int, []byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("gateway: serializar %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrUnreachable, err)
	}
	return resp.StatusCode, body, nil
}

// unexpectedStatus 5xx y códigos no previstos: el servicio no está disponible para atender.
func unexpectedStatus(status int, body []byte) error {
	return fmt.Errorf("%w: HTTP %d: %s", domain.ErrUnreachable, status, errorMessage(body, http.StatusText(status)))
}

func errorMessage(body []byte, fallback string) string {
	var e dto.ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return fallback
}
