package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// Ledger
	ErrValidation      = errors.New("entrada inválida")
	ErrIndexOutOfRange = errors.New("índice fuera de rango")

	// Credenciales
	ErrDuplicateName      = errors.New("el nombre de empresa ya está registrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrUnreachable        = errors.New("no se pudo conectar con el servidor")

	// Sesión
	ErrNotAuthenticated = errors.New("sesión no iniciada")
)
