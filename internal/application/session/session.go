// Package session mantiene el estado de autenticación del cliente (la "pestaña")
// y define el puerto hacia el servicio de credenciales.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/facturacion/internal/domain"
)

// CredentialGateway puerto de salida hacia el servicio de autenticación externo.
//
// Register falla con domain.ErrDuplicateName, domain.ErrValidation o domain.ErrUnreachable.
// Login falla con domain.ErrInvalidCredentials o domain.ErrUnreachable; nunca distingue
// entre nombre inexistente y contraseña incorrecta.
type CredentialGateway interface {
	Register(ctx context.Context, name, password string) error
	Login(ctx context.Context, name, password string) (displayName string, err error)
}

// State estado de la vista protegida.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Session bandera de autenticación y nombre para mostrar, con vida igual a la del proceso.
// No hay token ni expiración: la bandera es todo el estado de confianza del cliente.
type Session struct {
	gateway     CredentialGateway
	state       State
	displayName string
}

// New crea una sesión en estado Unauthenticated.
func New(gateway CredentialGateway) *Session {
	return &Session{gateway: gateway}
}

// State estado actual.
func (s *Session) State() State { return s.state }

// DisplayName nombre de la empresa autenticada ("" si no hay sesión).
func (s *Session) DisplayName() string { return s.displayName }

// IsAuthenticated atajo de State() == Authenticated.
func (s *Session) IsAuthenticated() bool { return s.state == Authenticated }

// Register registra una empresa. No cambia el estado de la sesión.
func (s *Session) Register(ctx context.Context, name, password string) error {
	name, password = strings.TrimSpace(name), strings.TrimSpace(password)
	if name == "" || password == "" {
		return fmt.Errorf("%w: completa todos los campos", domain.ErrValidation)
	}
	return s.gateway.Register(ctx, name, password)
}

// Login autentica contra el gateway; si tiene éxito pasa a Authenticated.
// El nombre para mostrar es el devuelto por el servicio o, si viene vacío, el ingresado.
func (s *Session) Login(ctx context.Context, name, password string) error {
	name, password = strings.TrimSpace(name), strings.TrimSpace(password)
	if name == "" || password == "" {
		return fmt.Errorf("%w: completa todos los campos", domain.ErrValidation)
	}
	displayName, err := s.gateway.Login(ctx, name, password)
	if err != nil {
		return err
	}
	if displayName == "" {
		displayName = name
	}
	s.state = Authenticated
	s.displayName = displayName
	return nil
}

// Logout vuelve a Unauthenticated sin condiciones.
func (s *Session) Logout() {
	s.state = Unauthenticated
	s.displayName = ""
}

// RequireAuthenticated guarda de la vista de facturación: debe ejecutarse antes que
// cualquier otra lógica de esa vista.
func (s *Session) RequireAuthenticated() error {
	if s.state != Authenticated {
		return domain.ErrNotAuthenticated
	}
	return nil
}
