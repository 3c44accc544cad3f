package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion/internal/application/session"
	"github.com/jhoicas/facturacion/internal/domain"
)

type fakeGateway struct {
	loginName  string
	loginErr   error
	regErr     error
	loginCalls int
	regCalls   int
}

func (f *fakeGateway) Register(context.Context, string, string) error {
	f.regCalls++
	return f.regErr
}

func (f *fakeGateway) Login(context.Context, string, string) (string, error) {
	f.loginCalls++
	return f.loginName, f.loginErr
}

func TestSession_EstadoInicial(t *testing.T) {
	s := session.New(&fakeGateway{})
	assert.Equal(t, session.Unauthenticated, s.State())
	assert.ErrorIs(t, s.RequireAuthenticated(), domain.ErrNotAuthenticated)
}

func TestSession_LoginExitosoYLogout(t *testing.T) {
	gw := &fakeGateway{loginName: "Acme"}
	s := session.New(gw)

	require.NoError(t, s.Login(context.Background(), "acme", "pw"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "Acme", s.DisplayName())
	assert.NoError(t, s.RequireAuthenticated())

	s.Logout()
	assert.Equal(t, session.Unauthenticated, s.State())
	assert.Empty(t, s.DisplayName())
	assert.ErrorIs(t, s.RequireAuthenticated(), domain.ErrNotAuthenticated)

	s.Logout()
	assert.Equal(t, session.Unauthenticated, s.State(), "logout sin sesión no falla")
}

func TestSession_LoginSinNombreDevueltoUsaElIngresado(t *testing.T) {
	s := session.New(&fakeGateway{})
	require.NoError(t, s.Login(context.Background(), " acme ", "pw"))
	assert.Equal(t, "acme", s.DisplayName())
}

func TestSession_LoginFallidoNoAutentica(t *testing.T) {
	for _, gwErr := range []error{domain.ErrInvalidCredentials, domain.ErrUnreachable} {
		s := session.New(&fakeGateway{loginErr: gwErr})
		err := s.Login(context.Background(), "acme", "pw")
		assert.ErrorIs(t, err, gwErr)
		assert.False(t, s.IsAuthenticated())
	}
}

func TestSession_CamposVaciosNoLlamanAlGateway(t *testing.T) {
	gw := &fakeGateway{}
	s := session.New(gw)

	assert.ErrorIs(t, s.Login(context.Background(), "", "pw"), domain.ErrValidation)
	assert.ErrorIs(t, s.Register(context.Background(), "acme", "   "), domain.ErrValidation)
	assert.Zero(t, gw.loginCalls)
	assert.Zero(t, gw.regCalls)
}

func TestSession_RegisterNoCambiaEstado(t *testing.T) {
	gw := &fakeGateway{}
	s := session.New(gw)
	require.NoError(t, s.Register(context.Background(), "acme", "pw"))
	assert.Equal(t, 1, gw.regCalls)
	assert.False(t, s.IsAuthenticated())
}
