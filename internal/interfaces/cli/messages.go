package cli

import (
	"errors"

	"github.com/jhoicas/facturacion/internal/domain"
)

// userMessage traduce errores de dominio a mensajes para la terminal. La falta de
// conexión y el rechazo de credenciales siempre se reportan distinto.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnreachable):
		return "No se pudo conectar con el servidor. Verifica la conexión e intenta de nuevo."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Usuario o contraseña incorrectos."
	case errors.Is(err, domain.ErrDuplicateName):
		return "Ese nombre de empresa ya está registrado."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Debes iniciar sesión para facturar."
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return "Esa fila ya no existe; la tabla se volvió a mostrar."
	case errors.Is(err, domain.ErrValidation):
		return "Error: " + err.Error()
	default:
		return "Error inesperado: " + err.Error()
	}
}
