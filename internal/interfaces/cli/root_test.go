package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion/pkg/config"
)

func testClientConfig(url string) config.ClientConfig {
	return config.ClientConfig{
		APIBaseURL: url,
		Timeout:    2 * time.Second,
		TaxRate:    decimal.RequireFromString("0.15"),
	}
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(testClientConfig("http://localhost:3000"), nil)
	for _, name := range []string{"shell", "register"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(testClientConfig("http://localhost:3000"), nil)

	api := cmd.PersistentFlags().Lookup("api")
	require.NotNil(t, api)
	assert.Equal(t, "http://localhost:3000", api.DefValue)

	rate := cmd.PersistentFlags().Lookup("tax-rate")
	require.NotNil(t, rate)
	assert.Equal(t, "0.15", rate.DefValue)

	timeout := cmd.PersistentFlags().Lookup("timeout")
	require.NotNil(t, timeout)
	assert.Equal(t, "2s", timeout.DefValue)
}

func TestTaxRateInvalido(t *testing.T) {
	cmd := NewRootCommand(testClientConfig("http://localhost:3000"), nil)
	cmd.SetArgs([]string{"--tax-rate=-0.1", "shell"})
	cmd.SetIn(strings.NewReader("quit\n"))
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tax-rate")
}

func TestRegisterCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/register", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := NewRootCommand(testClientConfig(srv.URL), nil)
	cmd.SetArgs([]string{"register", "--name", "Acme", "--password", "secreto"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Empresa registrada.\n", out.String())
}

func TestRegisterCommand_Duplicado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"el nombre de empresa ya está registrado"}`))
	}))
	defer srv.Close()

	cmd := NewRootCommand(testClientConfig(srv.URL), nil)
	cmd.SetArgs([]string{"register", "--name", "Acme", "--password", "secreto"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, "Ese nombre de empresa ya está registrado.", err.Error())
}

func TestShellCommand_QuitInmediato(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand(testClientConfig("http://127.0.0.1:1"), nil)
	cmd.SetArgs([]string{"shell"})
	cmd.SetIn(strings.NewReader("help\nquit\n"))
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "register <empresa> <contraseña>")
	assert.Contains(t, out.String(), "Hasta luego.")
}
