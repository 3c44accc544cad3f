package entity

import "time"

// Credential representa una cuenta de empresa en el servicio de autenticación.
type Credential struct {
	ID           string
	Name         string // tal como se registró (recortado)
	NameKey      string // clave normalizada usada para unicidad
	PasswordHash string // bcrypt, nunca la contraseña en claro
	CreatedAt    time.Time
}
